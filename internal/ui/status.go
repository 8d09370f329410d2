package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minicex/minicex/cli/internal/config"
	"github.com/minicex/minicex/cli/internal/health"
	"github.com/minicex/minicex/cli/internal/session"
	"github.com/minicex/minicex/cli/internal/ui/components"
)

// HealthIndicatorID is the board id the status screen probes into.
const HealthIndicatorID = "api-status"

// --- Messages ---

type healthCheckedMsg struct {
	result health.Result
	err    error
}

// --- Status Model ---

// StatusModel shows the stored session and the API health indicator.
type StatusModel struct {
	cfg      *config.Config
	sess     session.Session
	prober   *health.Prober
	board    *components.Board
	checking bool
	last     *health.Result
	errText  string
	width    int
}

// NewStatusModel builds the status screen. The first probe starts on Init.
func NewStatusModel(cfg *config.Config, sess session.Session, prober *health.Prober, board *components.Board) StatusModel {
	return StatusModel{
		cfg:      cfg,
		sess:     sess,
		prober:   prober,
		board:    board,
		checking: true,
	}
}

func (m StatusModel) Init() tea.Cmd {
	return m.pingCmd()
}

func (m StatusModel) pingCmd() tea.Cmd {
	prober := m.prober
	return func() tea.Msg {
		res, err := prober.PingHealth(context.Background(), HealthIndicatorID)
		return healthCheckedMsg{result: res, err: err}
	}
}

func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case healthCheckedMsg:
		m.checking = false
		if msg.err != nil {
			m.errText = msg.err.Error()
			m.last = nil
			return m, nil
		}
		m.errText = ""
		res := msg.result
		m.last = &res
		return m, nil

	case tea.KeyMsg:
		switch {
		case isQuit(msg):
			return m, tea.Quit
		case isRefresh(msg):
			if m.checking {
				return m, nil
			}
			m.checking = true
			return m, m.pingCmd()
		}
	}
	return m, nil
}

func (m StatusModel) View() string {
	var b strings.Builder
	b.WriteString(RenderBanner())
	b.WriteString("\n")
	b.WriteString(components.Indent(components.Table("Session", m.sessionRows(), m.width), 1))
	b.WriteString("\n\n")
	b.WriteString(components.Indent(m.renderHealth(), 2))
	b.WriteString("\n")
	b.WriteString(components.StatusBar([]string{
		components.Hint("r", "Refresh"),
		components.Hint("q", "Quit"),
	}, m.width))
	return b.String()
}

func (m StatusModel) sessionRows() []components.TableRow {
	user := m.sess.User
	if user == "" {
		user = "-"
	}
	email := m.sess.Email
	if email == "" {
		email = "-"
	}
	token := "none"
	if m.sess.LoggedIn() {
		token = "present"
	}
	admin := "no"
	if m.sess.IsAdmin {
		admin = "yes"
	}
	return []components.TableRow{
		{Label: "API", Value: m.cfg.APIURL()},
		{Label: "User", Value: user},
		{Label: "Admin", Value: admin},
		{Label: "KYC", Value: m.sess.KYCStatus},
		{Label: "Email", Value: email},
		{Label: "Token", Value: token},
	}
}

func (m StatusModel) renderHealth() string {
	label := HeaderStyle.UnsetPaddingBottom().Render("Health ")
	if m.errText != "" {
		return label + WarningStyle.Render(m.errText)
	}
	if m.checking && m.last == nil {
		return label + MutedStyle.Render("checking...")
	}
	ind, err := m.board.Lookup(HealthIndicatorID)
	if err != nil {
		return label + WarningStyle.Render(err.Error())
	}
	out := label + ind.Render()
	if m.checking {
		out += MutedStyle.Render("  (refreshing)")
	}
	return out
}
