package web

import (
	"embed"
	"html/template"
	"io"
	"math/rand"
	"time"

	"github.com/f3rmion/maodou/internal/report"
	"github.com/f3rmion/maodou/internal/textstats"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Comment colours, matching the desktop palette.
var toneColors = map[report.Tone]string{
	report.ToneChinese: "#5a8f5a",
	report.ToneLatin:   "#6b8e9f",
	report.ToneMixed:   "#c4a574",
	report.ToneNeutral: "#b8a89a",
}

// pageData is everything one render of the page needs.
type pageData struct {
	Quote   string
	Text    string
	Notice  string
	Warning string
	Error   string
	Result  *pageResult
}

type pageResult struct {
	Density      int
	DensityLine  string
	Headline     []report.Item
	Left         []report.Item
	Right        []report.Item
	BeanLine     string
	Comment      string
	CommentColor string
	Fields       []report.Item
	TopHanzi     string
}

func newPageResult(s textstats.Stats, top []report.HanziCount) *pageResult {
	left, right := report.Columns(s)

	fields := make([]report.Item, 0, len(s.Fields()))
	for _, f := range s.Fields() {
		fields = append(fields, report.Item{Key: f.Key, Label: report.Label(f.Key), Value: f.Value})
	}

	return &pageResult{
		Density:      textstats.DensityPercent(s),
		DensityLine:  report.DensityLine(s),
		Headline:     report.Headline(s),
		Left:         left,
		Right:        right,
		BeanLine:     report.BeanLine(s),
		Comment:      report.Comment(s),
		CommentColor: toneColors[report.CommentTone(s)],
		Fields:       fields,
		TopHanzi:     report.HanziLine(top),
	}
}

func renderPage(w io.Writer, data pageData) error {
	return pageTemplate.Execute(w, data)
}

func newSource() rand.Source {
	return rand.NewSource(time.Now().UnixNano())
}
