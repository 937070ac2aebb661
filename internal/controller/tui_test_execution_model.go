package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	model "github.com/mouse-blink/stdinfuzz/internal/model"
)

const statusError = "error"

// testResult holds information about one executed test.
type testResult struct {
	number   int
	position int
	category string
	status   string
	exitCode int
	input    string
	output   string
}

// Implement list.Item interface for testResult.
func (r testResult) FilterValue() string {
	return fmt.Sprintf("%d %s %s %s", r.number, r.category, r.status, r.input)
}

// testResultDelegate is the delegate for rendering test results in the list.
type testResultDelegate struct {
	offset int
}

func (d testResultDelegate) Height() int  { return 1 }
func (d testResultDelegate) Spacing() int { return 0 }
func (d testResultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d testResultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(testResult)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	// Reserve space for number, status, exit code and category columns
	inputWidth := m.Width() - 40

	numberStyle, statusStyle, categoryStyle, inputStyle, displayInput := d.getStylesAndInput(result, isSelected, inputWidth)

	line := fmt.Sprintf("%s  %s  %s  %s",
		numberStyle.Render(fmt.Sprintf("%4d", result.number)),
		statusStyle.Render(fmt.Sprintf("%-6s %4d", result.status, result.exitCode)),
		categoryStyle.Render(result.category),
		inputStyle.Render(displayInput),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d testResultDelegate) getStylesAndInput(result testResult, isSelected bool, width int) (lipgloss.Style, lipgloss.Style, lipgloss.Style, lipgloss.Style, string) {
	quoted := oneLine(result.input, 1<<16)

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		return selected.Width(6),
			selected.Width(13),
			selected.Width(12),
			selected,
			animateScroll(quoted, width, d.offset)
	}

	statusColorMap := map[string]lipgloss.Color{
		model.Passed.String(): lipgloss.Color("2"), // Green
		model.Failed.String(): lipgloss.Color("1"), // Red
		statusError:           lipgloss.Color("1"), // Red
	}

	statusColor, ok := statusColorMap[result.status]
	if !ok {
		statusColor = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Width(6),
		lipgloss.NewStyle().Foreground(statusColor).Bold(true).Width(13),
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(12),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		truncateToWidth(quoted, width)
}

// testExecutionModel handles the TUI display during a fuzzing run and of a
// stored report.
type testExecutionModel struct {
	width           int
	height          int
	progressBar     progress.Model
	command         string
	dir             string
	seed            string
	randSeed        uint64
	totalTests      int
	completedCount  int
	progressPercent float64
	current         startTestMsg
	running         bool
	rendered        bool
	testingFinished bool
	report          model.Report
	results         []testResult
	resultsList     list.Model
	delegate        testResultDelegate
	animOffset      int
	lastSelected    int
	showDetail      bool
}

func newTestExecutionModel() testExecutionModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := testResultDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return testExecutionModel{
		width:        80,
		height:       24,
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		lastSelected: -1,
	}
}

func (m testExecutionModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m testExecutionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case targetMsg:
		m.command = msg.command
		m.dir = msg.dir
		m.seed = msg.seed
		m.randSeed = msg.randSeed
		m.rendered = true

	case upcomingMsg:
		m.totalTests = msg.count
		m.completedCount = 0
		m.progressPercent = 0
		m.rendered = true

	case startTestMsg:
		m = m.handleStartTest(msg)

	case completedTestMsg:
		m = m.handleCompletedTest(msg)

	case reportMsg:
		m = m.handleReport(msg)
	}

	return m, cmd
}

func (m testExecutionModel) View() string {
	if !m.rendered {
		return "Initializing test execution…\n"
	}

	if m.testingFinished {
		return m.viewResults()
	}

	return m.viewProgress()
}

func (m testExecutionModel) viewProgress() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("stdinfuzz")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Command: %s  •  Random seed: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", m.totalTests)),
		accentStyle.Render(truncateToWidth(m.command, 30)),
		accentStyle.Render(fmt.Sprintf("%d", m.randSeed)),
	))

	progressStyle := lipgloss.NewStyle().
		Padding(0, 2)

	progressView := progressStyle.Render(m.progressBar.ViewAs(m.progressPercent))

	currentBox := m.renderCurrentBox(accentColor)

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("Press q to stop")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		currentBox,
		footer,
	)
}

func (m testExecutionModel) renderCurrentBox(accentColor lipgloss.Color) string {
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(m.width - 4)

	// Width - border (2) - padding (2)
	availableWidth := m.width - 4 - 2 - 2

	if !m.running {
		return contentStyle.Render("idle")
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	header := labelStyle.Render(fmt.Sprintf("Test %d  position %d  %s", m.current.number, m.current.position, m.current.category))
	candidate := labelStyle.Render("Candidate: ") + valueStyle.Render(oneLine(m.current.candidate, max(availableWidth-11, 10)))

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, candidate))
}

func (m testExecutionModel) viewResults() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("stdinfuzz results")

	summary := summaryStyle.Render(fmt.Sprintf(
		"Verdict: %s  •  Executed: %s / %s  •  Passed: %s  •  Failed: %s",
		verdictStyle(m.report.Verdict).Render(string(m.report.Verdict)),
		accentStyle.Render(fmt.Sprintf("%d", m.report.Executed)),
		accentStyle.Render(fmt.Sprintf("%d", m.report.Total)),
		accentStyle.Render(fmt.Sprintf("%d", m.countStatus(model.Passed.String()))),
		accentStyle.Render(fmt.Sprintf("%d", m.countStatus(model.Failed.String())+m.countStatus(statusError))),
	))

	targetStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(0, 0, 1, 2)

	target := targetStyle.Render(truncateToWidth(fmt.Sprintf(
		"Command: %s  •  Dir: %s  •  Seed: %s  •  Random seed: %d",
		m.command, m.dir, oneLine(m.seed, 40), m.randSeed,
	), max(m.width-4, 10)))

	sections := []string{title, summary, target}

	if m.report.Error != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Padding(0, 0, 1, 2)
		sections = append(sections, errStyle.Render(truncateToWidth(m.report.Error, max(m.width-4, 10))))
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • enter/space/click details • q quit")

	sections = append(sections, m.renderResultsBox(accentColor), footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func verdictStyle(verdict model.Verdict) lipgloss.Style {
	switch verdict {
	case model.VerdictPassed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	case model.VerdictFailed, model.VerdictError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}
}

func (m testExecutionModel) renderResultsBox(accentColor lipgloss.Color) string {
	listWidth := m.width - 4
	detailHeight := m.detailBoxHeight()

	listHeight := max(m.height-9-detailHeight, 5)

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%6s  %-13s  %-12s  %s", "Test", "Status  Exit", "Category", "Input"))

	resultsStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1)

	resultsBox := resultsStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.resultsList.View(),
		),
	)

	detailBox := m.renderDetailBox(accentColor, listWidth)
	if detailBox == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, detailBox)
}

func (m testExecutionModel) countStatus(status string) int {
	count := 0

	for _, result := range m.results {
		if result.status == status {
			count++
		}
	}

	return count
}

func (m testExecutionModel) handleStartTest(msg startTestMsg) testExecutionModel {
	m.current = msg
	m.running = true
	m.rendered = true

	return m
}

func (m testExecutionModel) handleCompletedTest(msg completedTestMsg) testExecutionModel {
	m.completedCount++
	m.running = false

	m = m.appendResult(testResult{
		number:   msg.number,
		position: msg.position,
		category: msg.category,
		status:   msg.status,
		exitCode: msg.exitCode,
		input:    msg.input,
		output:   msg.output,
	})

	if m.totalTests > 0 {
		m.progressPercent = float64(m.completedCount) / float64(m.totalTests)
	}

	return m
}

func (m testExecutionModel) appendResult(result testResult) testExecutionModel {
	m.results = append(m.results, result)

	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)

	return m
}

// handleReport switches to the results view. The failing test is added when
// it never completed (harness error) or was never streamed (stored report).
func (m testExecutionModel) handleReport(msg reportMsg) testExecutionModel {
	report := msg.report

	m.report = report
	m.testingFinished = true
	m.running = false
	m.rendered = true

	if m.command == "" {
		m.command = report.Command
		m.dir = string(report.Dir)
		m.seed = report.Seed
		m.randSeed = report.RandSeed
	}

	failure := report.Failure
	if failure == nil {
		return m
	}

	if !m.hasResult(failure.Number) {
		status := failure.Status.String()
		if report.Verdict == model.VerdictError {
			status = statusError
		}

		m = m.appendResult(testResult{
			number:   failure.Number,
			position: failure.Mutation.Position,
			category: string(failure.Mutation.Category),
			status:   status,
			exitCode: failure.Outcome.ExitCode,
			input:    failure.Mutation.Input,
			output:   failure.Outcome.Output,
		})
	}

	m.resultsList.Select(len(m.results) - 1)
	m.lastSelected = len(m.results) - 1
	m.showDetail = true

	return m
}

func (m testExecutionModel) hasResult(number int) bool {
	for _, r := range m.results {
		if r.number == number {
			return true
		}
	}

	return false
}

func (m testExecutionModel) handleKeyMsg(msg tea.KeyMsg) (testExecutionModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	default:
		if m.testingFinished {
			if msg.String() == "enter" || msg.String() == " " {
				m.showDetail = !m.showDetail
				return m, nil
			}

			var newList list.Model

			newList, cmd = m.resultsList.Update(msg)
			m.resultsList = newList

			m = m.trackSelection()

			return m, cmd
		}
	}

	return m, nil
}

func (m testExecutionModel) handleMouseMsg(msg tea.MouseMsg) (testExecutionModel, tea.Cmd) {
	var cmd tea.Cmd

	if !m.testingFinished {
		return m, nil
	}

	var newList list.Model

	newList, cmd = m.resultsList.Update(msg)
	m.resultsList = newList

	m = m.trackSelection()

	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease && m.resultsList.FilterState() != list.Filtering {
		m.showDetail = !m.showDetail
	}

	return m, cmd
}

// trackSelection resets the scroll animation when the selection moves.
func (m testExecutionModel) trackSelection() testExecutionModel {
	if m.resultsList.Index() != m.lastSelected {
		m.lastSelected = m.resultsList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.resultsList.SetDelegate(m.delegate)
		m.showDetail = false
	}

	return m
}

func (m testExecutionModel) selectedResult() (testResult, bool) {
	result, ok := m.resultsList.SelectedItem().(testResult)

	return result, ok
}

func (m testExecutionModel) detailMaxLines() int {
	return min(max(m.height/3, 6), 20)
}

func (m testExecutionModel) detailLines(width int) []string {
	result, ok := m.selectedResult()
	if !ok {
		return nil
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true)
	inputStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	outputStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	lines := []string{
		labelStyle.Render(fmt.Sprintf("Test %d • position %d • %s • exit code %d",
			result.number, result.position, result.category, result.exitCode)),
		labelStyle.Render("Input: ") + inputStyle.Render(oneLine(result.input, max(width-7, 10))),
		labelStyle.Render("Output:"),
	}

	output := strings.Split(strings.TrimSuffix(result.output, "\n"), "\n")
	room := m.detailMaxLines() - len(lines)

	if len(output) > room {
		output = append(output[:room-1], "…")
	}

	for _, line := range output {
		lines = append(lines, outputStyle.Render(truncateToWidth(line, width)))
	}

	return lines
}

func (m testExecutionModel) detailBoxHeight() int {
	if !m.showDetail {
		return 0
	}

	lines := m.detailLines(m.width - 8)
	if len(lines) == 0 {
		return 0
	}

	return len(lines) + 2
}

func (m testExecutionModel) renderDetailBox(accentColor lipgloss.Color, width int) string {
	if !m.showDetail {
		return ""
	}

	contentWidth := max(width-4, 10)

	lines := m.detailLines(contentWidth)
	if len(lines) == 0 {
		return ""
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m testExecutionModel) handleWindowSize(msg tea.WindowSizeMsg) testExecutionModel {
	m.width = msg.Width
	m.height = msg.Height

	m.progressBar.Width = max(m.width-8, 20)

	return m
}

func (m testExecutionModel) handleTickMsg(_ tickMsg) (testExecutionModel, tea.Cmd) {
	if m.testingFinished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
