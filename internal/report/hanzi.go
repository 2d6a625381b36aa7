package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/f3rmion/maodou/internal/pinyin"
	"github.com/f3rmion/maodou/internal/textstats"
)

// HanziCount is one character of the frequency listing.
type HanziCount struct {
	Char   string `json:"char"`
	Count  int    `json:"count"`
	Pinyin string `json:"pinyin,omitempty"`
}

// TopHanzi returns the n most frequent Chinese characters of text. Ties keep
// the order of first appearance. When a is nil, readings are left empty.
func TopHanzi(text string, n int, a *pinyin.Annotator) []HanziCount {
	if n <= 0 {
		return nil
	}

	counts := make(map[rune]int)
	var order []rune
	for _, r := range text {
		if !textstats.IsHanzi(r) {
			continue
		}
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	out := make([]HanziCount, len(order))
	for i, r := range order {
		out[i] = HanziCount{Char: string(r), Count: counts[r]}
		if a != nil {
			out[i].Pinyin = a.Primary(string(r))
		}
	}
	return out
}

// HanziLine formats a frequency listing, e.g. "毛(máo)×6  豆(dòu)×5".
func HanziLine(top []HanziCount) string {
	parts := make([]string, len(top))
	for i, h := range top {
		if h.Pinyin != "" {
			parts[i] = fmt.Sprintf("%s(%s)×%d", h.Char, h.Pinyin, h.Count)
		} else {
			parts[i] = fmt.Sprintf("%s×%d", h.Char, h.Count)
		}
	}
	return strings.Join(parts, "  ")
}
