package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/structman/internal/verification"
	"github.com/dustin/go-humanize"
)

const (
	maxLogLines    = 100
	maxResultLines = 50
	timeLayout     = "15:04:05"
)

//nolint:gochecknoglobals
var (
	// titleStyle defines the style for a panel's title.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	// borderStyle defines the style for a panel's borders.
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4"))

	// infoStyle defines the style for a panel's text.
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	// helpStyle defines the style for the help panel's text.
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Padding(0, 1)
)

// tickMsg refreshes the elapsed time while the verification is running.
type tickMsg time.Time

// TeaModel is the principal [tea.Model] for the command-line user interface.
type TeaModel struct {
	width  int
	height int

	uiHandler *Handler

	fullWidthWithBorders  int
	leftWidthWithBorders  int
	rightWidthWithBorders int

	startTime  time.Time
	finishTime time.Time
	now        time.Time

	current  string
	total    int
	finished int
	failed   int
	totals   verification.Report
	runErr   error
	done     bool

	results []string

	rootsProgress progress.Model
	logsViewport  viewport.Model
	logs          []string

	ready bool
}

// NewTeaModel returns an initial new [TeaModel].
//
//nolint:mnd
func NewTeaModel(uiHandler *Handler) TeaModel {
	rootsProgress := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(80),
	)

	logsViewport := viewport.New(80, 20)

	return TeaModel{
		uiHandler:     uiHandler,
		rootsProgress: rootsProgress,
		logsViewport:  logsViewport,
		logs:          make([]string, 0, maxLogLines),
		results:       make([]string, 0, maxResultLines),
		startTime:     time.Now(),
		now:           time.Now(),
		ready:         false,
	}
}

// Init initializes the model within a [tea.Program].
func (m TeaModel) Init() tea.Cmd {
	m.uiHandler.Initialized.Store(true)

	return tea.Batch(
		tea.EnterAltScreen,
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg { //nolint:mnd
		return tickMsg(t)
	})
}

// Update is the principal message handling method of the model.
// It sets the internal state of the model, for later rendering.
//
//nolint:mnd,funlen,ireturn,cyclop
func (m TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.uiHandler.Interrupted.Store(true)

			return m, tea.Quit
		case "q":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.fullWidthWithBorders = m.width - 2
		m.leftWidthWithBorders = (m.width / 3) - 2
		m.rightWidthWithBorders = m.width - (m.width / 3) - 2

		m.rootsProgress.Width = m.leftWidthWithBorders

		// Upper panels take about 40% of the height.
		upperHeight := m.height * 2 / 5
		lowerHeight := m.height - upperHeight

		// Lower section minus borders and title.
		m.logsViewport.Width = m.fullWidthWithBorders
		m.logsViewport.Height = lowerHeight - 3

		m.refreshLogs()

		if !m.ready {
			m.ready = true
			m.uiHandler.Ready.Store(true)
		}

	case tickMsg:
		m.now = time.Time(msg)
		if !m.done {
			cmds = append(cmds, tick())
		}

	case RootStartedMsg:
		m.current = msg.Kind.String()
		m.total = msg.Total

	case RootFinishedMsg:
		m.finished++
		m.current = ""

		if msg.Result != nil {
			m.addResult(msg.Result)
		}

		if m.total > 0 {
			cmds = append(cmds, m.rootsProgress.SetPercent(float64(m.finished)/float64(m.total)))
		}

	case RunFinishedMsg:
		m.done = true
		m.current = ""
		m.runErr = msg.Err
		m.finishTime = time.Now()
		cmds = append(cmds, m.rootsProgress.SetPercent(1))

	case LogMsg:
		if len(m.logs) >= maxLogLines {
			m.logs = m.logs[1:]
		}

		m.logs = append(m.logs, string(msg))
		m.refreshLogs()

	case progress.FrameMsg:
		updated, cmd := m.rootsProgress.Update(msg)
		if progressModel, ok := updated.(progress.Model); ok {
			m.rootsProgress = progressModel
		}
		cmds = append(cmds, cmd)
	}

	m.logsViewport, cmd = m.logsViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *TeaModel) refreshLogs() {
	if len(m.logs) == 0 {
		return
	}

	logs := lipgloss.NewStyle().
		Width(m.logsViewport.Width).
		Render(strings.TrimSuffix(strings.Join(m.logs, ""), "\n"))

	m.logsViewport.SetContent(logs)
	m.logsViewport.GotoBottom()
}

func (m *TeaModel) addResult(result *verification.Result) {
	var line string

	if result.Err != nil {
		m.failed++
		line = failStyle.Render("✗ "+result.Kind.String()) + " " + result.Err.Error()
	} else {
		line = okStyle.Render("✓ "+result.Kind.String()) + " " + result.Path
		if result.Report.Created() {
			line += fmt.Sprintf(" (%s created)", humanize.Comma(int64(len(result.Report.DirsCreated))))
		}
	}

	if result.Report != nil {
		m.totals.DirsCreated = append(m.totals.DirsCreated, result.Report.DirsCreated...)
		m.totals.DirsChecked += result.Report.DirsChecked
		m.totals.FilesChecked += result.Report.FilesChecked
	}

	if len(m.results) >= maxResultLines {
		m.results = m.results[1:]
	}

	m.results = append(m.results, line)
}

// View is the principal rendering function of the model.
func (m TeaModel) View() string {
	if !m.ready {
		return "Loading the GUI..."
	}

	var s strings.Builder

	progressSection := lipgloss.JoinHorizontal(
		lipgloss.Top,
		borderStyle.Width(m.leftWidthWithBorders).Render(m.progressView()),
		borderStyle.Width(m.rightWidthWithBorders).Render(m.resultsView()),
	)

	logsSection := borderStyle.
		Width(m.fullWidthWithBorders).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Left,
				titleStyle.Width(m.fullWidthWithBorders).Render("Process Information"),
				lipgloss.NewStyle().Width(m.fullWidthWithBorders).Render(m.logsViewport.View()),
			),
		)

	helpSection := helpStyle.
		Width(m.fullWidthWithBorders).
		Render("q: quit gui • ctrl+c: quit program")

	s.WriteString(lipgloss.JoinVertical(
		lipgloss.Left,
		progressSection,
		logsSection,
		helpSection,
	))

	return s.String()
}

func (m TeaModel) progressView() string {
	var status string

	switch {
	case m.done && m.runErr != nil:
		status = failStyle.Render("Failed")
	case m.done:
		status = okStyle.Render("Finished")
	case m.current != "":
		status = "Verifying " + m.current
	default:
		status = "Waiting"
	}

	var timing string
	if m.done {
		timing = fmt.Sprintf("Time: Started=%v, Finished=%v",
			m.startTime.Format(timeLayout),
			m.finishTime.Format(timeLayout),
		)
	} else {
		timing = fmt.Sprintf("Time: Started=%v (%s)",
			m.startTime.Format(timeLayout),
			humanize.RelTime(m.startTime, m.now, "ago", "from now"),
		)
	}

	details := fmt.Sprintf(
		"Status: %s\n"+
			"Directories: %d/%d, Failed=%d\n"+
			"Checked: Dirs=%s, Files=%s\n"+
			"Created: Dirs=%s\n"+
			"%s\n",
		status,
		m.finished, m.total, m.failed,
		humanize.Comma(int64(m.totals.DirsChecked)),
		humanize.Comma(int64(m.totals.FilesChecked)),
		humanize.Comma(int64(len(m.totals.DirsCreated))),
		timing,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.leftWidthWithBorders).Render("Verification"),
		"", // Empty line for spacing.
		m.rootsProgress.View(),
		"", // Empty line for spacing.
		infoStyle.Width(m.leftWidthWithBorders).Render(details),
	)
}

func (m TeaModel) resultsView() string {
	body := "No directories verified yet."
	if len(m.results) > 0 {
		body = strings.Join(m.results, "\n")
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Width(m.rightWidthWithBorders).Render("Directories"),
		"", // Empty line for spacing.
		infoStyle.Width(m.rightWidthWithBorders).Render(body),
	)
}
