// Package textstats classifies text into Chinese characters, Latin words,
// digits, punctuation and structural units in a single pass.
//
// Usage:
//
//	s, ok := textstats.Compute("今天天气不错！Nice day!")
//	if !ok {
//		// nothing to count, ask the user for text
//	}
//	fmt.Println(s.ChineseChars, s.LatinWords, s.Sentences)
//
// The classification rules are fixed. Chinese means the CJK Unified
// Ideographs block only (U+4E00-U+9FFF); extension blocks and full-width
// punctuation fall outside it.
package textstats

import (
	"errors"
	"strings"
	"unicode"
)

// ErrEmpty is returned by Require when the text holds nothing but whitespace.
var ErrEmpty = errors.New("text is empty")

// Stats holds the counters for one piece of text.
type Stats struct {
	ChineseChars    int `json:"chinese_char_count"`
	LatinWords      int `json:"latin_word_count"`
	CharsNoSpaces   int `json:"char_count_no_spaces"`
	CharsWithSpaces int `json:"char_count_with_spaces"`
	AlnumChars      int `json:"alnum_char_count"`
	Digits          int `json:"digit_count"` // runs of digits, not single digits
	Punctuation     int `json:"punctuation_count"`
	Paragraphs      int `json:"paragraph_count"`
	Sentences       int `json:"sentence_count"`
	Lines           int `json:"line_count"`
	Beans           int `json:"bean_equivalent"`
}

// Field keys, in the order Fields returns them.
const (
	KeyChineseChars    = "chinese_char_count"
	KeyLatinWords      = "latin_word_count"
	KeyCharsNoSpaces   = "char_count_no_spaces"
	KeyCharsWithSpaces = "char_count_with_spaces"
	KeyAlnumChars      = "alnum_char_count"
	KeyDigits          = "digit_count"
	KeyPunctuation     = "punctuation_count"
	KeyParagraphs      = "paragraph_count"
	KeySentences       = "sentence_count"
	KeyLines           = "line_count"
	KeyBeans           = "bean_equivalent"
)

// Field is one named counter of a Stats record.
type Field struct {
	Key   string
	Value int
}

// Fields returns the counters as an ordered list.
func (s Stats) Fields() []Field {
	return []Field{
		{KeyChineseChars, s.ChineseChars},
		{KeyLatinWords, s.LatinWords},
		{KeyCharsNoSpaces, s.CharsNoSpaces},
		{KeyCharsWithSpaces, s.CharsWithSpaces},
		{KeyAlnumChars, s.AlnumChars},
		{KeyDigits, s.Digits},
		{KeyPunctuation, s.Punctuation},
		{KeyParagraphs, s.Paragraphs},
		{KeySentences, s.Sentences},
		{KeyLines, s.Lines},
		{KeyBeans, s.Beans},
	}
}

// Compute counts text. It reports ok=false when text is empty after trimming
// whitespace; callers should show a prompt instead of results.
func Compute(text string) (Stats, bool) {
	if IsBlank(text) {
		return Stats{}, false
	}

	var (
		s            Stats
		inLatin      bool
		inDigits     bool
		lineText     bool
		sentenceText bool
	)

	for _, r := range text {
		s.CharsWithSpaces++
		if r != ' ' && r != '\n' && r != '\r' {
			s.CharsNoSpaces++
		}

		hanzi := IsHanzi(r)
		space := isSpace(r)

		if hanzi {
			s.ChineseChars++
		}
		if hanzi || isAlnum(r) {
			s.AlnumChars++
		}
		if !hanzi && !space && !isWord(r) {
			s.Punctuation++
		}

		if isASCIILetter(r) {
			if !inLatin {
				s.LatinWords++
			}
			inLatin = true
		} else {
			inLatin = false
		}

		if unicode.IsDigit(r) {
			if !inDigits {
				s.Digits++
			}
			inDigits = true
		} else {
			inDigits = false
		}

		// Only \n ends a line; a lone \r is just whitespace.
		if r == '\n' {
			s.Lines++
			if lineText {
				s.Paragraphs++
			}
			lineText = false
		} else if !space {
			lineText = true
		}

		if isTerminator(r) {
			if sentenceText {
				s.Sentences++
			}
			sentenceText = false
		} else if !space {
			sentenceText = true
		}
	}

	if lineText {
		s.Paragraphs++
	}
	if sentenceText {
		s.Sentences++
	}
	s.Lines++
	s.Beans = (s.CharsNoSpaces + 1) / 2

	return s, true
}

// Require is Compute for callers that prefer an error over a flag.
func Require(text string) (Stats, error) {
	s, ok := Compute(text)
	if !ok {
		return Stats{}, ErrEmpty
	}
	return s, nil
}

// IsBlank reports whether text has no non-whitespace characters.
func IsBlank(text string) bool {
	return strings.TrimFunc(text, isSpace) == ""
}

// IsHanzi reports whether r is in the CJK Unified Ideographs block.
func IsHanzi(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FFF
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isWord(r rune) bool {
	return r == '_' || isAlnum(r)
}

// isSpace treats the information separators U+001C-U+001F as whitespace
// in addition to unicode.IsSpace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

func isTerminator(r rune) bool {
	switch r {
	case '。', '！', '？', '.', '!', '?':
		return true
	}
	return false
}
