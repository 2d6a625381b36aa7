// Package report turns textstats results into the labels and sentences shown
// by the web and terminal front-ends.
package report

import (
	"fmt"
	"strings"

	"github.com/f3rmion/maodou/internal/textstats"
	"github.com/mattn/go-runewidth"
)

// labelWidth is the display width detail labels are padded to.
const labelWidth = 25

// narrow measures ambiguous-width runes such as ≈ as one cell, whatever
// the locale says.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

var labels = map[string]string{
	textstats.KeyChineseChars:    "中文字数 🌱",
	textstats.KeyLatinWords:      "英文单词数 🔤",
	textstats.KeyCharsNoSpaces:   "总字符数（不含空格）",
	textstats.KeyCharsWithSpaces: "总字符数（含空格）",
	textstats.KeyAlnumChars:      "纯文字数",
	textstats.KeyDigits:          "数字个数",
	textstats.KeyPunctuation:     "标点符号数",
	textstats.KeyParagraphs:      "段落数",
	textstats.KeySentences:       "句子数",
	textstats.KeyLines:           "行数",
	textstats.KeyBeans:           "≈ 相当于多少颗毛豆 🫘",
}

// Label returns the display label for a field key, or the key itself when
// it is unknown.
func Label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}

// Item is a labelled value ready for display.
type Item struct {
	Key   string
	Label string
	Value int
}

// Headline returns the two featured counters: Chinese characters and Latin
// words, with short labels.
func Headline(s textstats.Stats) []Item {
	return []Item{
		{textstats.KeyChineseChars, "中文字数", s.ChineseChars},
		{textstats.KeyLatinWords, "英文单词数", s.LatinWords},
	}
}

// Columns splits the secondary counters into the left and right columns.
func Columns(s textstats.Stats) (left, right []Item) {
	left = items(s, textstats.KeyCharsWithSpaces, textstats.KeyCharsNoSpaces,
		textstats.KeyAlnumChars, textstats.KeyDigits)
	right = items(s, textstats.KeyPunctuation, textstats.KeyParagraphs,
		textstats.KeySentences, textstats.KeyLines)
	return left, right
}

func items(s textstats.Stats, keys ...string) []Item {
	values := make(map[string]int, len(keys))
	for _, f := range s.Fields() {
		values[f.Key] = f.Value
	}
	out := make([]Item, 0, len(keys))
	for _, k := range keys {
		out = append(out, Item{Key: k, Label: Label(k), Value: values[k]})
	}
	return out
}

// Tone says which palette colour the comment should use.
type Tone int

const (
	ToneNeutral Tone = iota
	ToneChinese
	ToneLatin
	ToneMixed
)

// CommentTone maps the mix label to a colour tone.
func CommentTone(s textstats.Stats) Tone {
	switch textstats.Mix(s) {
	case textstats.MixChineseDominant, textstats.MixChineseOnly:
		return ToneChinese
	case textstats.MixLatinDominant, textstats.MixLatinOnly:
		return ToneLatin
	case textstats.MixBalanced:
		return ToneMixed
	default:
		return ToneNeutral
	}
}

// Comment returns the evaluation sentence, e.g.
// "🌱 纯正中文，像一盘清炒毛豆，共一小撮（2字符）".
func Comment(s textstats.Stats) string {
	chinese, latin := s.ChineseChars, s.LatinWords

	var mix string
	switch textstats.Mix(s) {
	case textstats.MixChineseDominant:
		mix = fmt.Sprintf("🌱 中文为主（%d字），夹杂%d个英文单词", chinese, latin)
	case textstats.MixLatinDominant:
		mix = fmt.Sprintf("🔤 英文为主（%d词），夹杂%d个汉字", latin, chinese)
	case textstats.MixBalanced:
		mix = fmt.Sprintf("🌏 中英混合，中文%d字 + 英文%d词，像毛豆炒肉", chinese, latin)
	case textstats.MixChineseOnly:
		mix = "🌱 纯正中文，像一盘清炒毛豆"
	case textstats.MixLatinOnly:
		mix = "🔤 纯英文文本，毛豆在学外语"
	default:
		mix = "🫘 只有数字和符号，毛豆有点懵"
	}

	return fmt.Sprintf("%s，共%s（%d字符）", mix, SizeName(textstats.Size(s)), s.CharsNoSpaces)
}

// SizeName returns the bean-portion word for a size bucket.
func SizeName(l textstats.SizeLabel) string {
	switch l {
	case textstats.SizeSmall:
		return "一小盘"
	case textstats.SizeLarge:
		return "一大碗"
	case textstats.SizeHuge:
		return "一麻袋"
	default:
		return "一小撮"
	}
}

// BeanLine returns the bean equivalent sentence.
func BeanLine(s textstats.Stats) string {
	return fmt.Sprintf("🫘 这些文字大约相当于 %d 颗毛豆", s.Beans)
}

// DensityLine returns the caption of the density bar.
func DensityLine(s textstats.Stats) string {
	return fmt.Sprintf("文字密度：%d%%", textstats.DensityPercent(s))
}

// Detail renders every counter as an aligned table: the two headline
// counters, a rule, then the rest in field order.
func Detail(s textstats.Stats) string {
	var b strings.Builder
	fields := s.Fields()

	for _, f := range fields[:2] {
		writeRow(&b, f)
	}
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	for _, f := range fields[2:] {
		writeRow(&b, f)
	}

	return b.String()
}

func writeRow(b *strings.Builder, f textstats.Field) {
	fmt.Fprintf(b, "%s: %8d\n", narrow.FillRight(Label(f.Key), labelWidth), f.Value)
}
