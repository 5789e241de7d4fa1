package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/math-helper/internal/format/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	panelMinWidth = 40  // below this the panel is drawn under the menu
	panelFraction = 0.6 // share of the total width given to the panel

	panelTitleText    = "Selected Feature"
	noFeatureText     = "No feature selected"
	unknownFeatureMsg = "Unknown feature selected"
	footerText        = "↑/↓ move  enter select  tab calculator  esc back  ctrl+c quit"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text carries its own ANSI styling
}

// hasSidePanel reports whether the feature panel is drawn to the right of the
// menu rather than below it.
func (m *Model) hasSidePanel() bool {
	return m.panelWidth() > 0
}

// panelWidth returns the width of the right-hand panel, or 0 when the
// terminal is too narrow to split.
func (m *Model) panelWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * panelFraction)
	if w < panelMinWidth {
		return 0
	}
	return w
}

func (m *Model) menuColumnWidth() int {
	return m.width - m.panelWidth()
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.menuHeader()
	if m.hasSidePanel() {
		return m.viewSideBySide(header)
	}
	return m.viewVertical(header)
}

// menuLines renders the header, the visible items of the current level and
// the info line, clipped to width.
func (m *Model) menuLines(header string, width int) []styledLine {
	lines := make([]styledLine, 0, 16)
	if header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
		start := 0
		displayItems := current.Items
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(displayItems) > maxItems {
			start = current.ViewportOffset
			if start < 0 {
				start = 0
			}
			if start+maxItems > len(displayItems) {
				start = len(displayItems) - maxItems
				if start < 0 {
					start = 0
				}
				current.ViewportOffset = start
			}
			displayItems = displayItems[start : start+maxItems]
		}
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter)
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			for i, item := range displayItems {
				lines = append(lines, m.buildItemLine(item.ID, item.Label, start+i, current, width))
			}
		}
	}
	return lines
}

func (m *Model) trailerLines() []styledLine {
	lines := make([]styledLine, 0, 4)
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: footerText, style: styles.Footer})
	}
	return lines
}

// bottomBar renders the error line and the filter prompt across the full
// width.
func (m *Model) bottomBar() []styledLine {
	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	lines := []styledLine{statusLine, {text: m.filterPrompt(), raw: true}}
	return applyWidth(lines, m.width)
}

// viewVertical draws the panel below the menu items.
func (m *Model) viewVertical(header string) string {
	lines := m.menuLines(header, m.width)
	lines = append(lines, styledLine{}, styledLine{text: m.panelTitle(), style: styles.PanelTitle})
	for _, line := range m.panelLines(m.width) {
		lines = append(lines, styledLine{text: line, raw: true})
	}
	lines = append(lines, m.trailerLines()...)
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, m.bottomBar()...)
	return renderLines(lines)
}

// viewSideBySide renders the menu on the left and the panel on the right.
func (m *Model) viewSideBySide(header string) string {
	menuW := m.menuColumnWidth()
	panelW := m.panelWidth()
	const bottomBarRows = 2

	contentLines := m.menuLines(header, menuW)
	contentLines = append(contentLines, m.trailerLines()...)

	body := m.panelLines(panelW - 2)
	panelH := m.height - bottomBarRows
	if m.height <= 0 {
		panelH = max(len(contentLines), len(body)+2)
	}
	if panelH < 1 {
		panelH = 1
	}
	if len(contentLines) > panelH {
		contentLines = contentLines[:panelH]
	}
	for len(contentLines) < panelH {
		contentLines = append(contentLines, styledLine{})
	}
	contentLines = applyWidth(contentLines, menuW)
	leftRows := strings.Split(renderLines(contentLines), "\n")
	for i, row := range leftRows {
		leftRows[i] = fitWidth(row, menuW)
	}
	leftStr := strings.Join(leftRows, "\n")
	rightStr := m.renderPanel(body, panelW, panelH)
	topSection := lipgloss.JoinHorizontal(lipgloss.Top, leftStr, rightStr)
	return topSection + "\n" + renderLines(m.bottomBar())
}

// buildItemLine constructs a single styledLine for a menu item. The marked
// item of a level carries a check mark.
func (m *Model) buildItemLine(id, label string, idx int, current *level, width int) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	mark := "  "
	if current.IsMarked(id) {
		mark = "✓ "
	}
	if idx == current.Cursor && m.focus == FocusMenu {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := indicator + " " + mark + label
	if width > 0 {
		if pad := width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) panelTitle() string {
	if feature, ok := m.nav.SelectedFeature(); ok {
		return panelTitleText + ": " + feature
	}
	return panelTitleText
}

// panelLines renders the body of the feature panel. width bounds button rows;
// 0 leaves them unwrapped.
func (m *Model) panelLines(width int) []string {
	if _, ok := m.nav.SelectedFeature(); !ok {
		return []string{renderStyled(styles.Info, noFeatureText)}
	}
	if !m.hasCalculator() {
		return []string{renderStyled(styles.Info, unknownFeatureMsg)}
	}
	return m.calculatorLines(width)
}

func (m *Model) calculatorLines(width int) []string {
	var modes, results, constants, inserts []string
	var inputRows [][]string
	var evaluate string
	for i, w := range m.panel.widgets {
		switch w.kind {
		case widgetMode:
			modes = append(modes, m.renderButton(i, w, m.engine.Mode() == w.mode))
		case widgetInput:
			inputRows = append(inputRows, []string{
				renderStyled(styles.Label, w.label()),
				m.renderInput(i, w),
			})
		case widgetEvaluate:
			evaluate = m.renderButton(i, w, false)
		case widgetInsertResult:
			results = append(results, m.renderButton(i, w, false))
		case widgetConstant:
			constants = append(constants, m.renderButton(i, w, m.engine.Constant() == w.constant))
		case widgetInsertConstant:
			inserts = append(inserts, m.renderButton(i, w, false))
		}
	}
	constants = append(constants, renderStyled(styles.Label, "Selected: "+m.engine.Constant().String()))

	lines := []string{renderStyled(styles.Label, "Select Mode:")}
	lines = append(lines, wrapRow(modes, width)...)
	lines = append(lines, renderStyled(styles.Label, "Current mode: "+m.engine.Mode().String()))
	lines = append(lines, "", renderStyled(styles.Label, "Inputs:"))
	lines = append(lines, table.Format(inputRows, nil)...)
	lines = append(lines, "", renderStyled(styles.Label, "Result:"))
	lines = append(lines, evaluate+"  "+renderStyled(styles.Result, m.engine.Result()))
	lines = append(lines, wrapRow(results, width)...)
	lines = append(lines, "", renderStyled(styles.Label, "Special Numbers:"))
	lines = append(lines, wrapRow(constants, width)...)
	lines = append(lines, wrapRow(inserts, width)...)
	return lines
}

func (m *Model) calculatorFocused(idx int) bool {
	return m.focus == FocusCalculator && m.panel.focus == idx
}

func (m *Model) renderButton(idx int, w widget, active bool) string {
	style := styles.Button
	switch {
	case m.calculatorFocused(idx):
		style = styles.ButtonFocused
	case active:
		style = styles.ButtonActive
	}
	return renderStyled(style, "["+w.label()+"]")
}

func (m *Model) renderInput(idx int, w widget) string {
	left, right := "[", "]"
	if m.calculatorFocused(idx) {
		left, right = ">", "<"
	}
	return left + m.panel.inputs[w.slot].View() + right
}

// wrapRow joins parts with a space, starting a new row whenever the next
// part would overflow width.
func wrapRow(parts []string, width int) []string {
	if len(parts) == 0 {
		return nil
	}
	rows := make([]string, 0, 2)
	row := parts[0]
	for _, part := range parts[1:] {
		if width > 0 && lipgloss.Width(row)+1+lipgloss.Width(part) > width {
			rows = append(rows, row)
			row = part
			continue
		}
		row += " " + part
	}
	return append(rows, row)
}

// renderPanel draws the bordered feature panel with exactly height rows and
// totalWidth columns.
func (m *Model) renderPanel(body []string, totalWidth, height int) string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := max(totalWidth-2, 1)
	innerH := max(height-2, 1)

	titleSeg := " " + m.panelTitle() + " "
	dashes := totalWidth - 4 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = " … "
		dashes = max(totalWidth-4-lipgloss.Width(titleSeg), 0)
	}
	topLine := renderStyled(styles.PanelBorder, tlc+hz) +
		renderStyled(styles.PanelTitle, titleSeg) +
		renderStyled(styles.PanelBorder, strings.Repeat(hz, dashes)+hz+trc)
	bottomLine := renderStyled(styles.PanelBorder, blc+strings.Repeat(hz, innerW)+brc)

	rows := make([]string, 0, height)
	rows = append(rows, topLine)
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(body) {
			content = body[i]
		}
		rows = append(rows, renderStyled(styles.PanelBorder, vt)+fitWidth(content, innerW)+renderStyled(styles.PanelBorder, vt))
	}
	rows = append(rows, bottomLine)
	return strings.Join(rows, "\n")
}

// fitWidth pads or truncates an ANSI-styled row to exactly width cells.
func fitWidth(row string, width int) string {
	w := lipgloss.Width(row)
	if w > width {
		row = truncate.StringWithTail(row, uint(max(width, 0)), "…")
		w = lipgloss.Width(row)
	}
	if w < width {
		row += strings.Repeat(" ", width-w)
	}
	return row
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
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
	segments := make([]string, 0, len(m.stack))
	for _, l := range m.stack {
		if title := strings.TrimSpace(l.Title); title != "" {
			segments = append(segments, title)
		}
	}
	if len(segments) == 0 {
		return []string{defaultRootTitle}
	}
	return segments
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
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // bottom bar: error/status + filter prompt
	if header := m.menuHeader(); header != "" {
		used++
	}
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	if !m.hasSidePanel() {
		used += 2 + len(m.panelLines(m.width))
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
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
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
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
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
