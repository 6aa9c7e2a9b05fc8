// Package tui implements the interactive template browser.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/runoshun/issuekit/internal/domain"
	"github.com/runoshun/issuekit/internal/usecase"
)

// viewState is the current screen of the browser.
type viewState int

const (
	stateList viewState = iota
	statePreview
)

// Messages.
type templatesLoadedMsg struct {
	templates []*domain.Template
	dir       string
}

type previewReadyMsg struct {
	title   string
	content string
}

type errMsg struct {
	err error
}

// Model is the root bubbletea model of the template browser.
type Model struct {
	listUC   *usecase.ListTemplates
	renderUC *usecase.RenderIssue

	state    viewState
	list     list.Model
	preview  viewport.Model
	help     help.Model
	keys     KeyMap
	styles   Styles
	dir      string
	rawMode  bool
	selected *domain.Template
	err      error
	width    int
	height   int
}

// New creates the template browser model.
func New(listUC *usecase.ListTemplates, renderUC *usecase.RenderIssue) Model {
	styles := DefaultStyles()

	l := list.New(nil, newTemplateDelegate(styles), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	return Model{
		listUC:   listUC,
		renderUC: renderUC,
		state:    stateList,
		list:     l,
		preview:  viewport.New(0, 0),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		styles:   styles,
	}
}

// Init loads the templates.
func (m Model) Init() tea.Cmd {
	return m.loadTemplates
}

// loadTemplates fetches the template list from the repository.
func (m Model) loadTemplates() tea.Msg {
	out, err := m.listUC.Execute(context.Background(), usecase.ListTemplatesInput{})
	if err != nil {
		return errMsg{err}
	}
	return templatesLoadedMsg{templates: out.Templates, dir: out.Dir}
}

// renderPreview renders the selected template into the preview pane.
func (m Model) renderPreview(tpl *domain.Template, raw bool) tea.Cmd {
	return func() tea.Msg {
		if raw {
			return previewReadyMsg{title: tpl.Path, content: tpl.Raw}
		}

		out, err := m.renderUC.Execute(context.Background(), usecase.RenderIssueInput{Name: tpl.Name})
		if err != nil {
			return errMsg{err}
		}

		width := m.width - 8
		if width < 20 {
			width = 80
		}
		rendered := out.Body
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
		if err == nil {
			if styled, rerr := r.Render(out.Body); rerr == nil {
				rendered = styled
			}
		}

		title := tpl.Name
		if out.Title != "" {
			title = out.Title
		}
		return previewReadyMsg{title: title, content: rendered}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-6)
		m.preview.Width = msg.Width - 6
		m.preview.Height = msg.Height - 8
		return m, nil

	case templatesLoadedMsg:
		m.dir = msg.dir
		items := make([]list.Item, 0, len(msg.templates))
		for _, tpl := range msg.templates {
			items = append(items, templateItem{template: tpl})
		}
		m.err = nil
		return m, m.list.SetItems(items)

	case previewReadyMsg:
		m.state = statePreview
		m.preview.SetContent(msg.content)
		m.preview.GotoTop()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateChildren(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		if m.state == statePreview {
			m.state = stateList
			m.rawMode = false
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		if m.state == stateList {
			return m, m.loadTemplates
		}

	case key.Matches(msg, m.keys.Enter):
		if m.state == stateList {
			if item, ok := m.list.SelectedItem().(templateItem); ok {
				m.selected = item.template
				m.rawMode = false
				return m, m.renderPreview(item.template, false)
			}
		}

	case key.Matches(msg, m.keys.Raw):
		if m.state == statePreview && m.selected != nil {
			m.rawMode = !m.rawMode
			return m, m.renderPreview(m.selected, m.rawMode)
		}
	}

	return m.updateChildren(msg)
}

func (m Model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case statePreview:
		m.preview, cmd = m.preview.Update(msg)
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string {
	header := m.styles.Header.Render("issuekit · issue templates")
	if m.dir != "" {
		header = m.styles.Header.Render(fmt.Sprintf("issuekit · %s", m.dir))
	}

	var body string
	switch m.state {
	case statePreview:
		title := ""
		if m.selected != nil {
			title = m.styles.PreviewTitle.Render(m.selected.Name) + "\n"
		}
		body = title + m.styles.Preview.Render(m.preview.View())
	default:
		if len(m.list.Items()) == 0 {
			body = m.styles.ItemDesc.Render("No issue templates found. Run `issuekit init` to scaffold a starter set.")
		} else {
			body = m.list.View()
		}
	}

	footer := m.styles.Footer.Render(m.help.View(m.keys))
	if m.err != nil {
		footer = m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n" + footer
	}

	return m.styles.App.Render(header + "\n" + body + "\n" + footer)
}
