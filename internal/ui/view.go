package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tower-picker/internal/menu"
)

const (
	rootFooter        = "↑/↓ move  enter open  ctrl+r roll  esc quit"
	multiSelectFooter = "tab mark  alt+a all  alt+n none  enter apply  esc back"
	teamFooter        = "tab mark  enter copy marked  ctrl+r reroll  esc back"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.menuHeader()
	if m.mode == ModeTeamSizeForm && m.teamSizeForm != nil {
		return m.viewTeamSizeFormWithHeader(styles.Header.Render(header))
	}

	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if summary := m.summaryLine(); summary != "" {
		lines = append(lines, styledLine{text: summary, style: styles.Summary})
	}
	if current := m.currentLevel(); current != nil {
		lines = append(lines, m.itemLines(current)...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: m.footerText(), style: styles.Footer})
	}
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if m.loading && m.pendingLabel != "" {
		statusLine = styledLine{text: fmt.Sprintf("Working: %s…", m.pendingLabel), style: styles.Info}
	}
	lines = append(lines, applyWidth([]styledLine{statusLine}, m.width)...)
	out := renderLines(lines)
	prompt, _ := m.filterPrompt()
	if m.width > 0 && lipgloss.Width(prompt) > m.width {
		prompt = truncate.StringWithTail(prompt, uint(m.width-1), "…")
	}
	return out + "\n" + prompt
}

func (m *Model) itemLines(current *level) []styledLine {
	m.syncViewport(current)
	if len(current.Items) == 0 {
		msg := "(no entries)"
		if current.Filter != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter)
		}
		return []styledLine{{text: msg, style: styles.Info}}
	}
	start := 0
	display := current.Items
	if maxItems := m.maxVisibleItems(); maxItems > 0 && len(display) > maxItems {
		start = max(current.ViewportOffset, 0)
		if start+maxItems > len(display) {
			start = max(len(display)-maxItems, 0)
			current.ViewportOffset = start
		}
		display = display[start : start+maxItems]
	}
	lines := make([]styledLine, 0, len(display))
	for i, item := range display {
		lines = append(lines, m.buildItemLine(item, start+i, current))
	}
	return lines
}

// buildItemLine renders one entry. The selected row is padded to the full
// width so its background spans the screen.
func (m *Model) buildItemLine(item menu.Item, idx int, current *level) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark := ""
	if current.MultiSelect {
		mark = "[ ] "
		if current.IsMarked(item.ID) {
			mark = "[✓] "
		}
	}
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + mark + item.Label
	if m.width > 0 {
		if pad := m.width - lipgloss.Width(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) footerText() string {
	current := m.currentLevel()
	switch {
	case current == nil || len(m.stack) == 1:
		return rootFooter
	case current.ID == menu.IDTeam:
		return teamFooter
	case current.MultiSelect:
		return multiSelectFooter
	default:
		return rootFooter
	}
}

// summaryLine describes the session filters and, on multi-select levels,
// how many entries are marked.
func (m *Model) summaryLine() string {
	if m.manager == nil || m.session == nil {
		return ""
	}
	snap := m.session.Snapshot()
	parts := []string{
		fmt.Sprintf("categories %d/%d", len(snap.Categories), m.manager.Catalog().Len()),
		fmt.Sprintf("towers %d/%d", len(snap.Selected), len(snap.Available)),
		fmt.Sprintf("team size %d", m.teamSize),
	}
	if current := m.currentLevel(); current != nil && current.MultiSelect {
		parts = append(parts, fmt.Sprintf("marked %d/%d", len(current.Marked), len(current.Full)))
	}
	return strings.Join(parts, " · ")
}

func (m *Model) menuHeader() string {
	segments := m.headerSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) headerSegments() []string {
	if len(m.stack) == 0 {
		return nil
	}
	root := strings.TrimSpace(m.rootTitle)
	if root == "" {
		root = defaultRootTitle
	}
	segments := []string{root}
	for _, l := range m.stack[1:] {
		if segment := headerSegmentForLevel(l); segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

func headerSegmentForLevel(l *level) string {
	if l == nil {
		return ""
	}
	candidate := strings.TrimSpace(l.ID)
	if candidate == "" {
		candidate = strings.TrimSpace(l.Title)
	}
	candidate = headerSegmentCleaner.Replace(candidate)
	return strings.Join(strings.Fields(strings.ToLower(candidate)), " ")
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.currentLevel())
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // status line + filter prompt
	if m.menuHeader() != "" {
		used++
	}
	if m.summaryLine() != "" {
		used++
	}
	if m.currentInfo() != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	return max(m.height-used, 1)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.clock.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && !m.clock.Now().Before(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil && text != "" {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText cuts text to width terminal cells, ending in an ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}
	return truncate.StringWithTail(text, uint(width-1), "…")
}
