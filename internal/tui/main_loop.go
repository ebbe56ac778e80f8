package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/ciphershare/go-cipher-share/internal/service"
	"github.com/ciphershare/go-cipher-share/models"
)

type mainSection int

const (
	sectionHome mainSection = iota
	sectionUpload
	sectionSent
	sectionReceived
	sectionDownloads
	sectionProfile
)

var homeItems = []string{
	"Send a file",
	"Sent files",
	"Received files",
	"Download history",
	"Profile",
}

// mainLoopModel is the signed-in Bubble Tea model. One model covers every
// section; the per-section state and update logic live in upload.go,
// lists.go, retrieve.go and profile.go.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	user     models.User

	section mainSection
	homeIdx int

	status string
	errMsg string
	logout bool

	upload   uploadState
	lists    listsState
	retrieve retrieveState
	profile  profileState
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, user models.User) mainLoopModel {
	if user.ID == uuid.Nil {
		user = getSessionUser()
	}
	setSessionUser(user)

	return mainLoopModel{
		ctx:      ctx,
		services: services,
		user:     user,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearStatusMsg:
		m.status = ""
		return m, nil

	case recipientsFoundMsg, uploadDoneMsg:
		return m.updateUploadMsg(msg)

	case sentLoadedMsg, receivedLoadedMsg, downloadsLoadedMsg:
		return m.updateListsMsg(msg)

	case retrieveDoneMsg:
		return m.updateRetrieveMsg(msg)

	case profileLoadedMsg, profileSavedMsg, passwordChangedMsg, accountDeletedMsg:
		return m.updateProfileMsg(msg)
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.section {
	case sectionUpload:
		return m.updateUpload(msg)
	case sectionSent, sectionReceived, sectionDownloads:
		if m.retrieve.active {
			return m.updateRetrieve(msg)
		}
		return m.updateLists(msg)
	case sectionProfile:
		return m.updateProfile(msg)
	}

	if !isKey {
		return m, nil
	}
	return m.updateHome(keyMsg)
}

func (m mainLoopModel) updateHome(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		clearSessionUser()
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.homeIdx > 0 {
			m.homeIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.homeIdx < len(homeItems)-1 {
			m.homeIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		return m.openSection()
	}

	return m, nil
}

func (m mainLoopModel) openSection() (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch m.homeIdx {
	case 0:
		m.section = sectionUpload
		m.startUploadFlow()
		return m, nil
	case 1:
		m.section = sectionSent
		m.lists.reset()
		return m, m.cmdLoadSent(1)
	case 2:
		m.section = sectionReceived
		m.lists.reset()
		return m, m.cmdLoadReceived(1)
	case 3:
		m.section = sectionDownloads
		m.lists.reset()
		return m, m.cmdLoadDownloads()
	case 4:
		m.section = sectionProfile
		m.startProfile()
		return m, m.cmdLoadProfile()
	}

	return m, nil
}

// backHome returns to the home menu, dropping any section state.
func (m *mainLoopModel) backHome() {
	m.section = sectionHome
	m.retrieve = retrieveState{}
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) View() string {
	switch m.section {
	case sectionUpload:
		return m.viewUpload()
	case sectionSent, sectionReceived, sectionDownloads:
		if m.retrieve.active {
			return m.viewRetrieve()
		}
		return m.viewLists()
	case sectionProfile:
		return m.viewProfile()
	}

	return m.viewHome()
}

func (m mainLoopModel) viewHome() string {
	var b strings.Builder

	b.WriteString("Signed in as ")
	b.WriteString(m.user.Email)
	b.WriteString("\n\n")

	for i, item := range homeItems {
		cursor := "  "
		if i == m.homeIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, i+1, item))
	}

	b.WriteString(m.footer())

	return renderPage("CIPHERSHARE", strings.TrimRight(b.String(), "\n"), "enter: open │ ↑/↓: move │ l: log out │ q: quit")
}

// footer renders the shared status/error lines appended to every section.
func (m mainLoopModel) footer() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("OK: " + m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}
	return b.String()
}

// copyToClipboard copies text and schedules the status reset.
func (m *mainLoopModel) copyToClipboard(text, what string) tea.Cmd {
	if err := clipboard.WriteAll(text); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return nil
	}

	m.errMsg = ""
	m.status = what + " copied to clipboard"
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
