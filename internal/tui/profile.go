package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ciphershare/go-cipher-share/models"
)

type profileMode int

const (
	profileModeView profileMode = iota
	profileModeRename
	profileModeChangePassword
	profileModeConfirmDelete
)

// profileState drives the account screen: viewing the profile, renaming,
// changing the password (which also reseals the local private key) and
// deleting the account behind a y/n confirmation.
type profileState struct {
	mode    profileMode
	loading bool
	busy    bool

	user          models.User
	serverVersion string

	inputs []textinput.Model
	focus  int
}

type profileLoadedMsg struct {
	user          models.User
	serverVersion string
	err           error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type passwordChangedMsg struct {
	err error
}

type accountDeletedMsg struct {
	err error
}

func (m *mainLoopModel) startProfile() {
	m.profile = profileState{mode: profileModeView, loading: true}
}

func (m *mainLoopModel) startProfileRename() {
	name := textinput.New()
	name.Placeholder = "new display name"
	name.CharLimit = 100
	name.Width = 40
	name.SetValue(m.profile.user.Name)
	name.Focus()

	m.profile.mode = profileModeRename
	m.profile.inputs = []textinput.Model{name}
	m.profile.focus = 0
}

func (m *mainLoopModel) startProfileChangePassword() {
	oldPassword := textinput.New()
	oldPassword.Placeholder = "current password"
	oldPassword.CharLimit = 72
	oldPassword.Width = 40
	oldPassword.EchoMode = textinput.EchoPassword
	oldPassword.EchoCharacter = '*'
	oldPassword.Focus()

	newPassword := textinput.New()
	newPassword.Placeholder = "new password (min 6 chars)"
	newPassword.CharLimit = 72
	newPassword.Width = 40
	newPassword.EchoMode = textinput.EchoPassword
	newPassword.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat new password"
	repeat.CharLimit = 72
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	m.profile.mode = profileModeChangePassword
	m.profile.inputs = []textinput.Model{oldPassword, newPassword, repeat}
	m.profile.focus = 0
}

func (m mainLoopModel) updateProfileMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.profile.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.profile.user = msg.user
		m.profile.serverVersion = msg.serverVersion

	case profileSavedMsg:
		m.profile.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Profile updated"
		m.profile.user = msg.user
		m.profile.mode = profileModeView
		m.user.Name = msg.user.Name
		setSessionUser(m.user)

	case passwordChangedMsg:
		m.profile.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Password changed"
		m.profile.mode = profileModeView

	case accountDeletedMsg:
		m.profile.busy = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.profile.mode = profileModeView
			return m, nil
		}
		// Nothing left to show; drop back to the auth flow.
		m.logout = true
		clearSessionUser()
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.profile.mode {
	case profileModeView:
		return m.updateProfileView(msg)
	case profileModeRename:
		return m.updateProfileRename(msg)
	case profileModeChangePassword:
		return m.updateProfileChangePassword(msg)
	case profileModeConfirmDelete:
		return m.updateProfileConfirmDelete(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateProfileView(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.profile.loading || m.profile.busy {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.backHome()
	case "e":
		m.startProfileRename()
	case "w":
		m.startProfileChangePassword()
	case "ctrl+d":
		m.profile.mode = profileModeConfirmDelete
	}

	return m, nil
}

func (m mainLoopModel) updateProfileRename(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.profile.mode = profileModeView
			m.errMsg = ""
			return m, nil
		case "enter":
			if m.profile.busy {
				return m, nil
			}
			name := strings.TrimSpace(m.profile.inputs[0].Value())
			if name == "" {
				m.errMsg = "the display name cannot be empty"
				return m, nil
			}
			m.errMsg = ""
			m.profile.busy = true
			return m, m.cmdRename(name)
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[0], cmd = m.profile.inputs[0].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateProfileChangePassword(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.profile.mode = profileModeView
			m.errMsg = ""
			return m, nil
		case "tab":
			m.profileFocusNext()
			return m, nil
		case "shift+tab":
			m.profileFocusPrev()
			return m, nil
		case "enter":
			if m.profile.busy {
				return m, nil
			}

			oldPass := m.profile.inputs[0].Value()
			newPass := m.profile.inputs[1].Value()
			repeat := m.profile.inputs[2].Value()

			switch {
			case oldPass == "":
				m.errMsg = "the current password is required"
				return m, nil
			case len(newPass) < minPasswordLength:
				m.errMsg = "the new password must be at least 6 characters"
				return m, nil
			case newPass != repeat:
				m.errMsg = "the new passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.profile.busy = true
			return m, m.cmdChangePassword(oldPass, newPass)
		}
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateProfileConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.profile.busy {
		return m, nil
	}

	switch keyMsg.String() {
	case "y":
		m.profile.busy = true
		return m, m.cmdDeleteAccount()
	case "n", "esc":
		m.profile.mode = profileModeView
	}

	return m, nil
}

func (m *mainLoopModel) profileFocusNext() {
	m.profile.inputs[m.profile.focus].Blur()
	m.profile.focus = (m.profile.focus + 1) % len(m.profile.inputs)
	m.profile.inputs[m.profile.focus].Focus()
}

func (m *mainLoopModel) profileFocusPrev() {
	m.profile.inputs[m.profile.focus].Blur()
	m.profile.focus = (m.profile.focus - 1 + len(m.profile.inputs)) % len(m.profile.inputs)
	m.profile.inputs[m.profile.focus].Focus()
}

func (m mainLoopModel) cmdLoadProfile() tea.Cmd {
	ctx := m.ctx
	profile := m.services.ProfileService

	return func() tea.Msg {
		user, err := profile.Profile(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}

		// Best effort; the profile is still useful without it.
		version, err := profile.ServerVersion(ctx)
		if err != nil {
			version = "unknown"
		}

		return profileLoadedMsg{user: user, serverVersion: version}
	}
}

func (m mainLoopModel) cmdRename(name string) tea.Cmd {
	ctx := m.ctx
	profile := m.services.ProfileService

	return func() tea.Msg {
		user, err := profile.Rename(ctx, name)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m mainLoopModel) cmdChangePassword(oldPass, newPass string) tea.Cmd {
	ctx := m.ctx
	profile := m.services.ProfileService
	email := m.user.Email

	return func() tea.Msg {
		err := profile.ChangePassword(ctx, email, oldPass, newPass)
		return passwordChangedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	profile := m.services.ProfileService
	email := m.user.Email

	return func() tea.Msg {
		err := profile.DeleteAccount(ctx, email)
		return accountDeletedMsg{err: err}
	}
}

func (m mainLoopModel) viewProfile() string {
	switch m.profile.mode {
	case profileModeRename:
		return m.viewProfileRename()
	case profileModeChangePassword:
		return m.viewProfileChangePassword()
	case profileModeConfirmDelete:
		return m.viewProfileConfirmDelete()
	}

	var b strings.Builder
	if m.profile.loading {
		b.WriteString("Loading...\n")
	} else {
		b.WriteString("Name:  ")
		b.WriteString(m.profile.user.Name)
		b.WriteString("\nEmail: ")
		b.WriteString(m.profile.user.Email)
		b.WriteString("\nKey:   ")
		if m.profile.user.PublicKey != nil {
			b.WriteString("published")
		} else {
			b.WriteString("not published")
		}
		b.WriteString("\nSince: ")
		b.WriteString(formatTime(m.profile.user.CreatedAt))
		b.WriteString("\n\nServer version: ")
		b.WriteString(m.profile.serverVersion)
		b.WriteString("\n")
	}
	b.WriteString(m.footer())

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		"e: rename │ w: change password │ ctrl+d: delete account │ esc: back")
}

func (m mainLoopModel) viewProfileRename() string {
	var b strings.Builder
	b.WriteString("Name │ [")
	b.WriteString(m.profile.inputs[0].View())
	b.WriteString("]\n")

	if m.profile.busy {
		b.WriteString("\n[Saving...]\n")
	}
	b.WriteString(m.footer())

	return renderPage("PROFILE · RENAME", strings.TrimRight(b.String(), "\n"), "enter: save │ esc: cancel")
}

func (m mainLoopModel) viewProfileChangePassword() string {
	var b strings.Builder
	b.WriteString("Current password │ [")
	b.WriteString(m.profile.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("New password     │ [")
	b.WriteString(m.profile.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Repeat           │ [")
	b.WriteString(m.profile.inputs[2].View())
	b.WriteString("]\n")

	if m.profile.busy {
		b.WriteString("\n[Changing password and resealing key...]\n")
	}
	b.WriteString(m.footer())

	return renderPage("PROFILE · CHANGE PASSWORD", strings.TrimRight(b.String(), "\n"),
		"enter: change │ tab: next field │ esc: cancel")
}

func (m mainLoopModel) viewProfileConfirmDelete() string {
	var b strings.Builder
	b.WriteString("Delete the account ")
	b.WriteString(m.user.Email)
	b.WriteString("?\n\n")
	b.WriteString("All uploaded files and every link shared with you\n")
	b.WriteString("will be removed permanently.\n")

	if m.profile.busy {
		b.WriteString("\n[Deleting...]\n")
	}
	b.WriteString(m.footer())

	return renderPage("PROFILE · DELETE ACCOUNT", strings.TrimRight(b.String(), "\n"), "y: delete │ n/esc: keep")
}
