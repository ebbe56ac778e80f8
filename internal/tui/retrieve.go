package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ciphershare/go-cipher-share/models"
)

// retrieveState is the password prompt overlaying the received-files list.
// The link ID and sender come from the selected row; only the link password
// is typed in.
type retrieveState struct {
	active bool
	busy   bool
	done   bool

	row           models.ReceivedFileEntry
	passwordInput textinput.Model

	result models.ClientRetrieveResult
}

type retrieveDoneMsg struct {
	result models.ClientRetrieveResult
	err    error
}

func (m *mainLoopModel) startRetrieve(row models.ReceivedFileEntry) {
	password := textinput.New()
	password.Placeholder = "link password"
	password.CharLimit = 72
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	m.retrieve = retrieveState{active: true, row: row, passwordInput: password}
	m.errMsg = ""
}

func (m mainLoopModel) updateRetrieveMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	done, ok := msg.(retrieveDoneMsg)
	if !ok {
		return m, nil
	}

	m.retrieve.busy = false
	if done.err != nil {
		m.errMsg = humanizeServerUnavailableError(done.err)
		return m, nil
	}

	m.errMsg = ""
	m.retrieve.done = true
	m.retrieve.result = done.result
	return m, nil
}

func (m mainLoopModel) updateRetrieve(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.retrieve.done {
		if !isKey {
			return m, nil
		}
		switch keyMsg.String() {
		case "esc", "enter":
			m.retrieve = retrieveState{}
			m.lists.loading = true
			return m, m.cmdLoadReceived(m.lists.received.Page)
		case "c":
			cmd := m.copyToClipboard(m.retrieve.result.SavedTo, "Path")
			return m, cmd
		}
		return m, nil
	}

	if isKey {
		switch keyMsg.String() {
		case "esc":
			if !m.retrieve.busy {
				m.retrieve = retrieveState{}
				m.errMsg = ""
			}
			return m, nil
		case "enter":
			if m.retrieve.busy {
				return m, nil
			}
			if m.retrieve.passwordInput.Value() == "" {
				m.errMsg = "the link password is required"
				return m, nil
			}
			m.errMsg = ""
			m.retrieve.busy = true
			return m, m.cmdRetrieve()
		}
	}

	var cmd tea.Cmd
	m.retrieve.passwordInput, cmd = m.retrieve.passwordInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) cmdRetrieve() tea.Cmd {
	ctx := m.ctx
	files := m.services.FileService
	req := models.ClientRetrieveRequest{
		UserID:      m.user.ID,
		LinkID:      m.retrieve.row.LinkID,
		Password:    m.retrieve.passwordInput.Value(),
		SenderEmail: m.retrieve.row.SenderEmail,
	}

	return func() tea.Msg {
		result, err := files.Retrieve(ctx, req)
		return retrieveDoneMsg{result: result, err: err}
	}
}

func (m mainLoopModel) viewRetrieve() string {
	if m.retrieve.done {
		var b strings.Builder
		b.WriteString("Decrypted and saved\n\n")
		b.WriteString("File: ")
		b.WriteString(m.retrieve.result.FileName)
		b.WriteString(" (")
		b.WriteString(formatBytes(m.retrieve.result.Size))
		b.WriteString(")\n")
		b.WriteString("Saved to: ")
		b.WriteString(m.retrieve.result.SavedTo)
		b.WriteString("\n")
		b.WriteString(m.footer())

		return renderPage("DOWNLOAD · DONE", strings.TrimRight(b.String(), "\n"), "c: copy path │ enter/esc: back")
	}

	var b strings.Builder
	b.WriteString("File: ")
	b.WriteString(m.retrieve.row.FileName)
	b.WriteString("\nFrom: ")
	b.WriteString(m.retrieve.row.SenderEmail)
	b.WriteString("\nExpires: ")
	b.WriteString(expiryLabel(m.retrieve.row.ExpirationDate))
	b.WriteString("\n\n")
	b.WriteString("Link password │ [")
	b.WriteString(m.retrieve.passwordInput.View())
	b.WriteString("]\n")

	if m.retrieve.busy {
		b.WriteString("\n[Downloading and decrypting...]\n")
	}
	b.WriteString(m.footer())

	return renderPage("DOWNLOAD", strings.TrimRight(b.String(), "\n"), "enter: download │ esc: cancel")
}
