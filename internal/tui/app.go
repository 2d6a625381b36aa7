package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/maodou/internal/clipboard"
	"github.com/f3rmion/maodou/internal/config"
	"github.com/f3rmion/maodou/internal/pinyin"
	"github.com/f3rmion/maodou/internal/quotes"
	"github.com/f3rmion/maodou/internal/report"
	"github.com/f3rmion/maodou/internal/sample"
	"github.com/f3rmion/maodou/internal/textstats"
	"github.com/f3rmion/maodou/internal/tui/bigchar"
	"github.com/f3rmion/maodou/internal/tui/views"
	"github.com/mattn/go-runewidth"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewEditor ViewType = iota
	ViewFilePicker
)

// ErrUnreadable is returned for files that are not valid UTF-8 text.
var ErrUnreadable = errors.New("file is not valid UTF-8")

type statusKind int

const (
	statusNone statusKind = iota
	statusNotice
	statusWarning
	statusError
)

// fileLoadedMsg carries the contents of a file chosen in the picker.
type fileLoadedMsg struct {
	Path string
	Text string
	Err  error
}

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	Err error
}

// Options configure NewApp. Every field is optional.
type Options struct {
	Config *config.Config
	Quotes *quotes.Picker
	Logger *slog.Logger
	// Copy writes to the clipboard. Defaults to clipboard.Write.
	Copy func(string) error
	// Dir is where the file picker starts.
	Dir string
}

// AppModel is the counter TUI model.
type AppModel struct {
	cfg       *config.Config
	quotes    *quotes.Picker
	annotator *pinyin.Annotator
	log       *slog.Logger
	copy      func(string) error

	// Layout state
	width  int
	height int
	ready  bool

	currentView    ViewType
	editor         textarea.Model
	density        progress.Model
	filePickerView views.FilePickerModel

	quote      string
	status     string
	statusKind statusKind

	// source is the text as read from a file or the example. The textarea
	// rewrites tabs and carriage returns, so source is counted instead of
	// the buffer while the buffer still shows it unedited.
	source     string
	sourceView string

	// Last count, nil until a non-blank text was counted
	stats *textstats.Stats
	top   []report.HanziCount

	showHelp bool
}

// NewApp creates the counter TUI.
func NewApp(opts Options) AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	picker := opts.Quotes
	if picker == nil {
		picker = quotes.NewPicker(cfg.Quotes, rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	copyFn := opts.Copy
	if copyFn == nil {
		copyFn = clipboard.Write
	}

	editor := textarea.New()
	editor.Placeholder = "在这里粘贴或输入文字……"
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetHeight(8)
	editor.Focus()

	return AppModel{
		cfg:            cfg,
		quotes:         picker,
		annotator:      pinyin.NewAnnotator(),
		log:            logger,
		copy:           copyFn,
		currentView:    ViewEditor,
		editor:         editor,
		density:        progress.New(progress.WithSolidFill(string(ColorPrimary)), progress.WithoutPercentage()),
		filePickerView: views.NewFilePickerModel(opts.Dir, ".txt"),
		quote:          picker.Pick(),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewFilePicker {
			if msg.String() == "esc" && !m.filePickerView.Filtering() {
				m.currentView = ViewEditor
				return m, m.editor.Focus()
			}
			var cmd tea.Cmd
			m.filePickerView, cmd = m.filePickerView.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = true
			return m, nil
		case "ctrl+s":
			m.count()
			return m, nil
		case "ctrl+o":
			m.currentView = ViewFilePicker
			m.editor.Blur()
			return m, nil
		case "ctrl+e":
			m.setSource(sample.Text())
			m.stats = nil
			m.setStatus(statusNotice, quotes.ExampleLoaded)
			return m, nil
		case "ctrl+l":
			m.editor.Reset()
			m.source, m.sourceView = "", ""
			m.stats = nil
			m.setStatus(statusNone, "")
			return m, nil
		case "ctrl+y":
			if m.stats == nil {
				m.setStatus(statusWarning, quotes.EmptyPrompt)
				return m, nil
			}
			return m, m.copyDetail(report.Detail(*m.stats))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := max(m.width-6, 20)
		m.editor.SetWidth(contentWidth - 2)
		m.editor.SetHeight(max(m.height/4, 5))
		m.density.Width = max(min(contentWidth-20, 60), 10)
		m.filePickerView.SetSize(contentWidth, m.height-2)
		return m, nil

	case views.FileSelectedMsg:
		m.currentView = ViewEditor
		return m, tea.Batch(m.editor.Focus(), loadFile(msg.Path))

	case fileLoadedMsg:
		if msg.Err != nil {
			m.log.Warn("reading file", "path", msg.Path, "err", msg.Err)
			m.stats = nil
			m.setStatus(statusError, quotes.Unreadable)
			return m, nil
		}
		m.log.Debug("file loaded", "path", msg.Path, "bytes", len(msg.Text))
		m.setSource(msg.Text)
		m.count()
		if m.stats != nil {
			m.setStatus(statusNotice, quotes.Loaded(utf8.RuneCountInString(msg.Text)))
		}
		return m, nil

	case copiedMsg:
		if msg.Err != nil {
			m.log.Warn("copying report", "err", msg.Err)
			m.setStatus(statusError, "复制失败："+msg.Err.Error())
		} else {
			m.setStatus(statusNotice, "📋 详细统计已复制到剪贴板")
		}
		return m, nil
	}

	if m.currentView == ViewFilePicker {
		var cmd tea.Cmd
		m.filePickerView, cmd = m.filePickerView.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// count runs the counter on the editor contents. Blank text clears the
// results and shows the empty prompt.
func (m *AppModel) count() {
	text := m.editor.Value()
	if m.sourceView != "" && text == m.sourceView {
		text = m.source
	}
	st, ok := textstats.Compute(text)
	if !ok {
		m.stats = nil
		m.top = nil
		m.setStatus(statusWarning, quotes.EmptyPrompt)
		return
	}

	m.stats = &st
	m.top = report.TopHanzi(text, m.cfg.TopHanzi, m.annotator)
	m.quote = m.quotes.Pick()
	m.setStatus(statusNone, "")
	m.log.Debug("counted", "chinese", st.ChineseChars, "latin", st.LatinWords, "chars", st.CharsWithSpaces)
}

// setSource fills the editor with text and remembers the original for
// counting.
func (m *AppModel) setSource(text string) {
	m.editor.SetValue(text)
	m.source = text
	m.sourceView = m.editor.Value()
}

func (m *AppModel) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

func (m AppModel) copyDetail(detail string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{Err: copyFn(detail)}
	}
}

// loadFile reads path as UTF-8 text with CRLF line breaks normalised.
func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileLoadedMsg{Path: path, Err: fmt.Errorf("reading %s: %w", path, err)}
		}
		if !utf8.Valid(data) {
			return fileLoadedMsg{Path: path, Err: fmt.Errorf("%s: %w", path, ErrUnreadable)}
		}
		// Text mode reading: CRLF line breaks become \n, a lone \r stays.
		text := strings.ReplaceAll(string(data), "\r\n", "\n")
		return fileLoadedMsg{Path: path, Text: text}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.currentView {
	case ViewFilePicker:
		content = m.filePickerView.View()
	default:
		content = m.renderEditor()
	}

	return ContentStyle.
		Width(m.width).
		Render(content)
}

func (m AppModel) renderEditor() string {
	var sections []string

	sections = append(sections,
		TitleStyle.Render("🫘 毛豆字数统计")+"  "+QuoteStyle.Render(m.quote),
		"",
		EditorFocusedStyle.Render(m.editor.View()),
	)

	if line := m.renderStatus(); line != "" {
		sections = append(sections, line)
	}

	if m.stats != nil {
		sections = append(sections, "", m.renderResults(*m.stats))
	}

	sections = append(sections, "", HelpStyle.Render(
		"ctrl+s 数豆子 • ctrl+o 打开文件 • ctrl+e 示例 • ctrl+l 清空 • ctrl+y 复制报告 • f1 帮助 • esc 退出"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m AppModel) renderStatus() string {
	switch m.statusKind {
	case statusNotice:
		return NoticeStyle.Render(m.status)
	case statusWarning:
		return WarningStyle.Render(m.status)
	case statusError:
		return ErrorStyle.Render(m.status)
	}
	return ""
}

func (m AppModel) renderResults(st textstats.Stats) string {
	var rows []string

	rows = append(rows, m.density.ViewAs(textstats.Density(st))+"  "+LabelStyle.Render(report.DensityLine(st)))

	var big []string
	for _, item := range report.Headline(st) {
		big = append(big, renderBigNumber(item), "  ")
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, big...))

	left, right := report.Columns(st)
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
		renderColumn(left), "    ", renderColumn(right)))

	rows = append(rows, "", BeanStyle.Render(report.BeanLine(st)))
	rows = append(rows, CommentStyle.
		Foreground(toneColors[report.CommentTone(st)]).
		Render(report.Comment(st)))

	if len(m.top) > 0 {
		rows = append(rows, LabelStyle.Render("高频汉字  ")+ValueStyle.Render(report.HanziLine(m.top)))
	}

	rows = append(rows, DetailStyle.Render(strings.TrimRight(report.Detail(st), "\n")))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderBigNumber draws a headline counter as block art, or as plain bold
// text when no font is available.
func renderBigNumber(item report.Item) string {
	n := strconv.Itoa(item.Value)
	art := bigchar.Cached(n, 3)
	if art == "" {
		art = ValueStyle.Render(n)
	}
	return BigNumberStyle.Render(art + "\n" + BigLabelStyle.Render(item.Label))
}

func renderColumn(items []report.Item) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = LabelStyle.Render(runewidth.FillRight(item.Label, 22)) +
			ValueStyle.Render(fmt.Sprintf("%8d", item.Value))
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorLatin).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	helpText := titleStyle.Render("🫘 毛豆字数统计") + "\n\n"

	helpText += sectionStyle.Render("编辑") + "\n"
	helpText += keyStyle.Render("ctrl+s") + descStyle.Render("数豆子（统计）") + "\n"
	helpText += keyStyle.Render("ctrl+e") + descStyle.Render("填入示例文本") + "\n"
	helpText += keyStyle.Render("ctrl+l") + descStyle.Render("清空") + "\n"
	helpText += keyStyle.Render("ctrl+o") + descStyle.Render("打开 .txt 文件") + "\n"
	helpText += keyStyle.Render("ctrl+y") + descStyle.Render("复制详细统计") + "\n"
	helpText += keyStyle.Render("esc") + descStyle.Render("退出") + "\n"

	helpText += sectionStyle.Render("文件选择") + "\n"
	helpText += keyStyle.Render("enter") + descStyle.Render("打开文件或目录") + "\n"
	helpText += keyStyle.Render("backspace") + descStyle.Render("上级目录") + "\n"
	helpText += keyStyle.Render("/") + descStyle.Render("按文件名筛选") + "\n"
	helpText += keyStyle.Render("esc") + descStyle.Render("返回编辑") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Render("按任意键关闭")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(50)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(helpText))
}
