package views

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FileSelectedMsg is sent when a file is selected
type FileSelectedMsg struct {
	Path string
}

// File picker styles
var (
	fpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5a8f5a")).
			MarginBottom(1)

	fpPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b8a89a")).
			Italic(true)

	fpDirStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b8e9f")).
			Bold(true)

	fpFileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f5f0e8"))

	fpSelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c4a574")).
			Background(lipgloss.Color("#2f3a2f"))

	fpHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b8a89a")).
			MarginTop(1)

	fpErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0504d")).
			Bold(true)

	fpRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4a5a4a"))
)

// FileEntry represents a file or directory
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// FilePickerModel lists directories and text files and lets the user pick one.
type FilePickerModel struct {
	currentDir string
	all        []FileEntry
	entries    []FileEntry // all, narrowed by the filter
	selected   int
	offset     int // For scrolling

	extensions []string
	filter     textinput.Model

	err error

	width  int
	height int
}

// NewFilePickerModel creates a file picker rooted at dir that shows files
// with the given extensions. An empty dir starts in the working directory.
func NewFilePickerModel(dir string, extensions ...string) FilePickerModel {
	if dir == "" {
		dir, _ = os.Getwd()
	}
	if dir == "" {
		dir, _ = os.UserHomeDir()
	}
	if dir == "" {
		dir = "/"
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "筛选文件名"
	filter.CharLimit = 64

	m := FilePickerModel{
		currentDir: dir,
		extensions: extensions,
		filter:     filter,
	}
	m.loadDir()
	return m
}

// Dir returns the directory being listed.
func (m FilePickerModel) Dir() string {
	return m.currentDir
}

// Entries returns the visible entries.
func (m FilePickerModel) Entries() []FileEntry {
	return m.entries
}

// Filtering reports whether the filter input has focus.
func (m FilePickerModel) Filtering() bool {
	return m.filter.Focused()
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.filter.Width = max(width-8, 10)
}

// loadDir loads the entries from the current directory
func (m *FilePickerModel) loadDir() {
	m.all = nil
	m.err = nil
	m.filter.Reset()
	m.filter.Blur()

	entries, err := os.ReadDir(m.currentDir)
	if err != nil {
		m.err = err
		m.applyFilter()
		return
	}

	if parent := filepath.Dir(m.currentDir); parent != m.currentDir {
		m.all = append(m.all, FileEntry{
			Name:  "..",
			IsDir: true,
			Path:  parent,
		})
	}

	var dirs, files []FileEntry

	for _, entry := range entries {
		// Skip hidden files
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fe := FileEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
			Path:  filepath.Join(m.currentDir, entry.Name()),
		}

		if entry.IsDir() {
			dirs = append(dirs, fe)
		} else if m.matchesExtension(entry.Name()) {
			files = append(files, fe)
		}
	}

	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].Name) < strings.ToLower(dirs[j].Name)
	})
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].Name) < strings.ToLower(files[j].Name)
	})

	// Dirs first, then files
	m.all = append(m.all, dirs...)
	m.all = append(m.all, files...)
	m.applyFilter()
}

func (m *FilePickerModel) applyFilter() {
	m.selected = 0
	m.offset = 0

	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if q == "" {
		m.entries = m.all
		return
	}

	m.entries = nil
	for _, e := range m.all {
		if e.Name == ".." || strings.Contains(strings.ToLower(e.Name), q) {
			m.entries = append(m.entries, e)
		}
	}
}

func (m *FilePickerModel) matchesExtension(name string) bool {
	if len(m.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range m.extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.filter.Focused() {
		switch key.String() {
		case "enter", "esc":
			m.filter.Blur()
			return m, nil
		case "down", "up":
			m.filter.Blur()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return m, cmd
		}
	}

	switch key.String() {
	case "/":
		return m, m.filter.Focus()
	case "j", "down":
		if m.selected < len(m.entries)-1 {
			m.selected++
			m.adjustScroll()
		}
	case "k", "up":
		if m.selected > 0 {
			m.selected--
			m.adjustScroll()
		}
	case "enter", "l", "right":
		if m.selected < len(m.entries) {
			entry := m.entries[m.selected]
			if entry.IsDir {
				m.currentDir = entry.Path
				m.loadDir()
				return m, nil
			}
			return m, func() tea.Msg {
				return FileSelectedMsg{Path: entry.Path}
			}
		}
	case "backspace", "h":
		parent := filepath.Dir(m.currentDir)
		if parent != m.currentDir {
			m.currentDir = parent
			m.loadDir()
		}
	case "~":
		if home, _ := os.UserHomeDir(); home != "" {
			m.currentDir = home
			m.loadDir()
		}
	case "g":
		m.selected = 0
		m.offset = 0
	case "G":
		m.selected = max(len(m.entries)-1, 0)
		m.adjustScroll()
	case "ctrl+d":
		m.selected = min(m.selected+m.visibleHeight()/2, max(len(m.entries)-1, 0))
		m.adjustScroll()
	case "ctrl+u":
		m.selected = max(m.selected-m.visibleHeight()/2, 0)
		m.adjustScroll()
	}

	return m, nil
}

func (m *FilePickerModel) visibleHeight() int {
	return max(m.height-10, 5) // header, path, filter, help
}

func (m *FilePickerModel) adjustScroll() {
	h := m.visibleHeight()
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+h {
		m.offset = m.selected - h + 1
	}
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder

	b.WriteString(fpTitleStyle.Render("选择文本文件 (" + strings.Join(m.extensions, ", ") + ")"))
	b.WriteString("\n")
	b.WriteString(fpPathStyle.Render(m.currentDir))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(fpErrorStyle.Render("无法打开目录：" + m.err.Error()))
		b.WriteString("\n\n")
	}

	rule := fpRuleStyle.Render(strings.Repeat("─", max(min(m.width-4, 60), 10)))
	b.WriteString(rule)
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(fpHelpStyle.Render("  (这里没有文本文件)"))
		b.WriteString("\n")
	}

	h := m.visibleHeight()
	end := min(m.offset+h, len(m.entries))
	for i := m.offset; i < end; i++ {
		entry := m.entries[i]

		icon := "[FILE] "
		if entry.IsDir {
			icon = "[DIR]  "
		}

		var style lipgloss.Style
		switch {
		case i == m.selected:
			style = fpSelectedStyle
		case entry.IsDir:
			style = fpDirStyle
		default:
			style = fpFileStyle
		}

		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}

		b.WriteString(prefix)
		b.WriteString(style.Render(icon + entry.Name))
		b.WriteString("\n")
	}

	if len(m.entries) > h {
		b.WriteString(fpPathStyle.Render(strings.Repeat(" ", 50) + "↕ scroll"))
		b.WriteString("\n")
	}

	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(fpHelpStyle.Render("enter: 打开 • backspace: 上级目录 • ~: 主目录 • /: 筛选 • esc: 返回"))

	return b.String()
}
