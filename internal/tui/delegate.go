package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/issuekit/internal/domain"
)

type templateItem struct {
	template *domain.Template
}

func (t templateItem) FilterValue() string {
	return t.template.Name
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type templateDelegate struct {
	styles Styles
}

func newTemplateDelegate(styles Styles) templateDelegate {
	return templateDelegate{styles: styles}
}

func (d templateDelegate) Height() int {
	return 2
}

func (d templateDelegate) Spacing() int {
	return 1
}

func (d templateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d templateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(templateItem)
	if !ok {
		return
	}
	tpl := ti.template
	selected := index == m.Index()

	cursor := " "
	if selected {
		cursor = ">"
	}

	badge := fmt.Sprintf("%-4s", FormatBadge(tpl.Format))

	var labelsStr string
	for _, l := range tpl.Labels {
		labelsStr += "[" + l + "] "
	}

	name := tpl.Name
	if name == "" {
		name = "(unnamed)"
	}
	listWidth := m.Width()
	prefixWidth := 9 + runewidth.StringWidth(labelsStr)
	maxNameLen := listWidth - prefixWidth - 2
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if runewidth.StringWidth(name) > maxNameLen {
		name = runewidth.Truncate(name, maxNameLen-3, "...")
	}

	nameStyle := d.styles.ItemNormal
	cursorStyle := d.styles.CursorNormal
	badgeStyle := d.styles.FormatStyle(tpl.Format)
	if selected {
		nameStyle = d.styles.ItemSelected
		cursorStyle = d.styles.CursorSelected
		badgeStyle = badgeStyle.Bold(true)
	}

	line := "  " + cursorStyle.Render(cursor) + " " + badgeStyle.Render(badge) + " "
	if labelsStr != "" {
		line += d.styles.ItemLabels.Render(labelsStr)
	}
	line += nameStyle.Render(name)
	_, _ = fmt.Fprintln(w, line)

	descLine := "         "
	if about := tpl.DisplayAbout(); about != "" {
		desc := escapeNewlines(about)
		maxDescLen := listWidth - 11
		if maxDescLen < 10 {
			maxDescLen = 10
		}
		if runewidth.StringWidth(desc) > maxDescLen {
			desc = runewidth.Truncate(desc, maxDescLen-3, "...")
		}
		descLine += desc
	}
	descStyle := d.styles.ItemDesc
	if selected {
		descStyle = d.styles.ItemDescSelected
	}
	_, _ = fmt.Fprint(w, descStyle.Render(descLine))
}
