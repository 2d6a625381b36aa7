// Package quotes picks the decorative bean quote shown above the input box
// and holds the short status messages both front-ends display.
package quotes

import (
	"fmt"
	"math/rand"
	"sync"
)

// Defaults are the built-in quotes.
var Defaults = []string{
	"毛豆说：每个字都是一颗饱满的豆子 🌱",
	"今天也要像毛豆一样，颗颗分明！",
	"毛豆小贴士：标点符号也是豆子哦~",
	"青色的毛豆，绿色的希望 💚",
	"毛豆陪你一起数清楚每个字",
	"一颗毛豆一粒字，数着数着就饿了",
	"毛豆：我是蔬菜还是豆类？不重要！",
	"饱满的文字，像成熟的毛豆荚 🫛",
}

// Status messages.
const (
	EmptyPrompt   = "🫘 毛豆提醒：先放点文字进来呀！"
	ExampleLoaded = "🫘 示例已填入（中英混合），点击'数豆子'看看吧"
	Unreadable    = "🫘 毛豆读不懂这个文件，试试别的吧~"
)

// Loaded is the message shown after a file was read.
func Loaded(chars int) string {
	return fmt.Sprintf("🫘 成功倒入 %d 颗文字豆！", chars)
}

// Picker chooses quotes from its own random source. It is safe for
// concurrent use.
type Picker struct {
	mu     sync.Mutex
	rng    *rand.Rand
	quotes []string
}

// NewPicker creates a picker over quotes, falling back to Defaults when
// quotes is empty.
func NewPicker(quotes []string, src rand.Source) *Picker {
	if len(quotes) == 0 {
		quotes = Defaults
	}
	return &Picker{
		rng:    rand.New(src),
		quotes: append([]string(nil), quotes...),
	}
}

// Pick returns one quote.
func (p *Picker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quotes[p.rng.Intn(len(p.quotes))]
}

// Len returns the number of quotes available.
func (p *Picker) Len() int {
	return len(p.quotes)
}
