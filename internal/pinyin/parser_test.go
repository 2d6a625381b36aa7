package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnotator(t *testing.T) {
	a := NewAnnotator()

	tests := []struct {
		name    string
		char    string
		primary string
	}{
		{"mao", "毛", "máo"},
		{"dou", "豆", "dòu"},
		{"latin", "a", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.primary, a.Primary(tt.char))
		})
	}
}

func TestAnnotatorHeteronym(t *testing.T) {
	a := NewAnnotator()

	readings := a.Readings("中")
	assert.Contains(t, readings, "zhōng")
	assert.Equal(t, "zhōng", readings[0])
}
