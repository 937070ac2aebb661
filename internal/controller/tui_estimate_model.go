package controller

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Simple delegate for pool list items.
type estimateDelegate struct {
	offset int
}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }
func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pool, ok := item.(poolItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var labelStyle, countStyle, previewStyle lipgloss.Style

	// count (6) + label (20) + spacing (4)
	width := m.Width() - 30

	preview := candidatesPreview(pool.candidates, 1<<16)

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		labelStyle = selected.Width(20)
		countStyle = selected.Width(6).Align(lipgloss.Right)
		previewStyle = selected

		preview = animateScroll(preview, width, d.offset)
	} else {
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(20)
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
		previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

		preview = truncateToWidth(preview, width)
	}

	line := fmt.Sprintf("%s  %s  %s",
		countStyle.Render(fmt.Sprintf("%d", pool.mutations)),
		labelStyle.Render(fmt.Sprintf("%d. %s x%d", pool.index, pool.category, pool.length)),
		previewStyle.Render(preview),
	)
	_, _ = fmt.Fprint(w, line)
}

// estimateModel is used for listing candidate pools without running tests.
type estimateModel struct {
	width        int
	height       int
	poolList     list.Model
	delegate     estimateDelegate
	seedLen      int
	total        int
	planned      int
	err          error
	rendered     bool
	animOffset   int
	lastSelected int
}

func newEstimateModel() estimateModel {
	delegate := estimateDelegate{}
	poolList := list.New([]list.Item{}, delegate, 80, 20)
	poolList.SetShowPagination(false)
	poolList.SetShowFilter(true)
	poolList.SetShowHelp(false)
	poolList.SetShowTitle(false)
	poolList.SetShowStatusBar(false)
	poolList.FilterInput.Placeholder = "Filter by category…"

	return estimateModel{
		width:        80,
		height:       24,
		poolList:     poolList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m estimateModel) Init() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.poolList.SetWidth(m.width)

	case tickMsg:
		if m.poolList.FilterState() != list.Filtering && m.rendered {
			m.animOffset++
			m.delegate.offset = m.animOffset
			m.poolList.SetDelegate(m.delegate)
		}

		return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			var newList list.Model

			newList, cmd = m.poolList.Update(msg)
			m.poolList = newList

			// Detect selection change to reset animation
			if m.poolList.Index() != m.lastSelected {
				m.lastSelected = m.poolList.Index()
				m.animOffset = 0
				m.delegate.offset = 0
				m.poolList.SetDelegate(m.delegate)
			}

			return m, cmd
		}

	case estimationMsg:
		m = m.handleEstimationMsg(msg)
	}

	return m, cmd
}

func (m estimateModel) handleEstimationMsg(msg estimationMsg) estimateModel {
	m.rendered = true
	m.err = msg.err

	if msg.err != nil {
		return m
	}

	est := msg.estimation
	m.seedLen = len(est.Seed)
	m.total = est.Total
	m.planned = est.Planned

	items := make([]list.Item, 0, len(est.Pools))
	for i, pool := range est.Pools {
		mutations := 0
		if i < len(est.PerPool) {
			mutations = est.PerPool[i]
		}

		items = append(items, poolItem{
			index:      i + 1,
			category:   string(pool.Spec.Charset.Category),
			length:     pool.Spec.Length,
			mutations:  mutations,
			candidates: pool.Candidates,
		})
	}

	m.poolList.SetItems(items)

	if len(items) > 0 && m.lastSelected == -1 {
		m.lastSelected = 0
	}

	return m
}

func (m estimateModel) View() string {
	if !m.rendered {
		return "Loading candidate pools…\n"
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	title := titleStyle.Render("stdinfuzz estimate")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 0, 1, 2)

		return lipgloss.JoinVertical(lipgloss.Left, title, errStyle.Render(fmt.Sprintf("estimation error: %v", m.err)))
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Seed: %s bytes   Mutations: %s   Planned tests: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.seedLen)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		accentStyle.Render(fmt.Sprintf("%d", m.planned)),
	))

	table := m.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (m estimateModel) renderTable() string {
	// Title (2), summary (2), footer (1), border (2), headers (2)
	listHeight := max(m.height-9, 5)

	// Margin (2), border (2), padding (2)
	listWidth := m.width - 6

	m.poolList.SetHeight(listHeight)
	m.poolList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %-20s  %s", "Count", "Pool", "Candidates"))

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.poolList.View(),
		),
	)
}
