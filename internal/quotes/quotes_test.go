package quotes

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickerDefaults(t *testing.T) {
	p := NewPicker(nil, rand.NewSource(1))
	assert.Equal(t, len(Defaults), p.Len())

	for i := 0; i < 20; i++ {
		assert.Contains(t, Defaults, p.Pick())
	}
}

func TestPickerCustom(t *testing.T) {
	custom := []string{"only one"}
	p := NewPicker(custom, rand.NewSource(7))
	custom[0] = "mutated"

	assert.Equal(t, "only one", p.Pick())
}

func TestPickerDeterministic(t *testing.T) {
	a := NewPicker(nil, rand.NewSource(42))
	b := NewPicker(nil, rand.NewSource(42))

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick(), b.Pick())
	}
}

func TestLoaded(t *testing.T) {
	assert.Equal(t, "🫘 成功倒入 12 颗文字豆！", Loaded(12))
}
