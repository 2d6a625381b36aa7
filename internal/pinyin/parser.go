// Package pinyin annotates Chinese characters with their pinyin readings.
package pinyin

import gopinyin "github.com/mozillazg/go-pinyin"

// Annotator converts characters to tone-marked pinyin.
type Annotator struct {
	args gopinyin.Args
}

// NewAnnotator creates a new pinyin annotator.
func NewAnnotator() *Annotator {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng
	args.Heteronym = true      // Return all possible readings
	return &Annotator{args: args}
}

// Readings returns all pinyin readings for a single character.
// Non-Chinese input yields nil.
func (a *Annotator) Readings(char string) []string {
	result := gopinyin.Pinyin(char, a.args)
	if len(result) == 0 || len(result[0]) == 0 {
		return nil
	}
	return result[0]
}

// Primary returns the most common reading, or "" when there is none.
func (a *Annotator) Primary(char string) string {
	readings := a.Readings(char)
	if len(readings) == 0 {
		return ""
	}
	return readings[0]
}
