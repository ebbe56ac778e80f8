package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ciphershare/go-cipher-share/models"
)

type uploadStage int

const (
	uploadStageSearch uploadStage = iota
	uploadStagePick
	uploadStageDetails
	uploadStageSending
	uploadStageDone
)

// uploadState drives the send-a-file flow: find a recipient, pick one from
// the results, fill in the share terms, upload, show the link ID.
type uploadState struct {
	stage uploadStage

	searchInput textinput.Model

	candidates []models.UserSearchEntry
	pickIdx    int

	// details form: file path, link password, expiry in days
	detailInputs []textinput.Model
	detailFocus  int

	result models.UploadFileResponse
}

type recipientsFoundMsg struct {
	page models.UserSearchResponse
	err  error
}

type uploadDoneMsg struct {
	resp models.UploadFileResponse
	err  error
}

func (m *mainLoopModel) startUploadFlow() {
	search := textinput.New()
	search.Placeholder = "recipient email"
	search.CharLimit = 255
	search.Width = 40
	search.Focus()

	m.upload = uploadState{stage: uploadStageSearch, searchInput: search}
}

func (m *mainLoopModel) initUploadDetailInputs() {
	path := textinput.New()
	path.Placeholder = "/path/to/file"
	path.Width = 50
	path.Focus()

	linkPassword := textinput.New()
	linkPassword.Placeholder = "link password (min 6 chars)"
	linkPassword.CharLimit = 72
	linkPassword.Width = 50
	linkPassword.EchoMode = textinput.EchoPassword
	linkPassword.EchoCharacter = '*'

	expires := textinput.New()
	expires.Placeholder = "expires in days"
	expires.CharLimit = 4
	expires.Width = 50
	expires.SetValue("7")

	m.upload.detailInputs = []textinput.Model{path, linkPassword, expires}
	m.upload.detailFocus = 0
}

func (m mainLoopModel) updateUploadMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recipientsFoundMsg:
		if msg.err != nil {
			m.upload.stage = uploadStageSearch
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		if len(msg.page.Users) == 0 {
			m.upload.stage = uploadStageSearch
			m.errMsg = "no recipient with a published key matches that email"
			return m, nil
		}
		m.errMsg = ""
		m.upload.candidates = msg.page.Users
		m.upload.pickIdx = 0
		m.upload.stage = uploadStagePick
		return m, nil

	case uploadDoneMsg:
		if msg.err != nil {
			m.upload.stage = uploadStageDetails
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.upload.result = msg.resp
		m.upload.stage = uploadStageDone
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateUpload(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.upload.stage {
	case uploadStageSearch:
		return m.updateUploadSearch(msg)
	case uploadStagePick:
		return m.updateUploadPick(msg)
	case uploadStageDetails:
		return m.updateUploadDetails(msg)
	case uploadStageDone:
		return m.updateUploadDone(msg)
	}
	// uploadStageSending: ignore keys until the server answers.
	return m, nil
}

func (m mainLoopModel) updateUploadSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.backHome()
			return m, nil
		case "enter":
			query := strings.TrimSpace(m.upload.searchInput.Value())
			if query == "" {
				m.errMsg = "enter at least part of the recipient's email"
				return m, nil
			}
			m.errMsg = ""
			return m, m.cmdSearchRecipients(query)
		}
	}

	var cmd tea.Cmd
	m.upload.searchInput, cmd = m.upload.searchInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateUploadPick(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.upload.stage = uploadStageSearch
		m.upload.searchInput.Focus()
	case "up", "k":
		if m.upload.pickIdx > 0 {
			m.upload.pickIdx--
		}
	case "down", "j":
		if m.upload.pickIdx < len(m.upload.candidates)-1 {
			m.upload.pickIdx++
		}
	case "enter":
		m.upload.stage = uploadStageDetails
		m.initUploadDetailInputs()
	}

	return m, nil
}

func (m mainLoopModel) updateUploadDetails(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.upload.stage = uploadStagePick
			m.errMsg = ""
			return m, nil
		case "tab":
			m.uploadDetailFocusNext()
			return m, nil
		case "shift+tab":
			m.uploadDetailFocusPrev()
			return m, nil
		case "enter":
			req, validationErr := m.buildUploadRequest()
			if validationErr != "" {
				m.errMsg = validationErr
				return m, nil
			}
			m.errMsg = ""
			m.upload.stage = uploadStageSending
			return m, m.cmdUpload(req)
		}
	}

	var cmd tea.Cmd
	m.upload.detailInputs[m.upload.detailFocus], cmd = m.upload.detailInputs[m.upload.detailFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateUploadDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "enter":
		m.backHome()
	case "c":
		cmd := m.copyToClipboard(m.upload.result.LinkID.String(), "Link ID")
		return m, cmd
	}

	return m, nil
}

// buildUploadRequest validates the details form against the selected
// recipient. The expiry is entered in whole days from now.
func (m *mainLoopModel) buildUploadRequest() (models.ClientUploadRequest, string) {
	recipient := m.upload.candidates[m.upload.pickIdx]

	path := strings.TrimSpace(m.upload.detailInputs[0].Value())
	linkPassword := m.upload.detailInputs[1].Value()
	expiresRaw := strings.TrimSpace(m.upload.detailInputs[2].Value())

	if path == "" {
		return models.ClientUploadRequest{}, "file path is required"
	}
	if len(linkPassword) < minPasswordLength {
		return models.ClientUploadRequest{}, "link password must be at least 6 characters"
	}

	days, err := strconv.Atoi(expiresRaw)
	if err != nil || days < 1 {
		return models.ClientUploadRequest{}, "expiry must be a positive number of days"
	}

	return models.ClientUploadRequest{
		FilePath:           path,
		RecipientID:        recipient.ID,
		RecipientPublicKey: recipient.PublicKey,
		LinkPassword:       linkPassword,
		ExpirationDate:     time.Now().Add(time.Duration(days) * 24 * time.Hour).UTC(),
	}, ""
}

func (m *mainLoopModel) uploadDetailFocusNext() {
	m.upload.detailInputs[m.upload.detailFocus].Blur()
	m.upload.detailFocus = (m.upload.detailFocus + 1) % len(m.upload.detailInputs)
	m.upload.detailInputs[m.upload.detailFocus].Focus()
}

func (m *mainLoopModel) uploadDetailFocusPrev() {
	m.upload.detailInputs[m.upload.detailFocus].Blur()
	m.upload.detailFocus = (m.upload.detailFocus - 1 + len(m.upload.detailInputs)) % len(m.upload.detailInputs)
	m.upload.detailInputs[m.upload.detailFocus].Focus()
}

func (m mainLoopModel) cmdSearchRecipients(query string) tea.Cmd {
	ctx := m.ctx
	files := m.services.FileService

	return func() tea.Msg {
		page, err := files.SearchRecipients(ctx, models.SearchUsersRequest{Query: query})
		return recipientsFoundMsg{page: page, err: err}
	}
}

func (m mainLoopModel) cmdUpload(req models.ClientUploadRequest) tea.Cmd {
	ctx := m.ctx
	files := m.services.FileService

	return func() tea.Msg {
		resp, err := files.Upload(ctx, req)
		return uploadDoneMsg{resp: resp, err: err}
	}
}

func (m mainLoopModel) viewUpload() string {
	switch m.upload.stage {
	case uploadStageSearch:
		return m.viewUploadSearch()
	case uploadStagePick:
		return m.viewUploadPick()
	case uploadStageDetails, uploadStageSending:
		return m.viewUploadDetails()
	case uploadStageDone:
		return m.viewUploadDone()
	}
	return renderPage("SEND A FILE", "", "")
}

func (m mainLoopModel) viewUploadSearch() string {
	var b strings.Builder
	b.WriteString("Who should receive the file?\n\n")
	b.WriteString("Email │ [")
	b.WriteString(m.upload.searchInput.View())
	b.WriteString("]\n")
	b.WriteString(m.footer())

	return renderPage("SEND A FILE · RECIPIENT", strings.TrimRight(b.String(), "\n"), "enter: search │ esc: back")
}

func (m mainLoopModel) viewUploadPick() string {
	var b strings.Builder
	b.WriteString("Select a recipient:\n\n")

	for i, candidate := range m.upload.candidates {
		cursor := "  "
		if i == m.upload.pickIdx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(fitText(candidate.Name, 24))
		b.WriteString("  <")
		b.WriteString(fitText(candidate.Email, 40))
		b.WriteString(">\n")
	}
	b.WriteString(m.footer())

	return renderPage("SEND A FILE · RECIPIENT", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ esc: back")
}

func (m mainLoopModel) viewUploadDetails() string {
	recipient := m.upload.candidates[m.upload.pickIdx]

	var b strings.Builder
	b.WriteString("To: ")
	b.WriteString(recipient.Email)
	b.WriteString("\n\n")
	b.WriteString("File path     │ [")
	b.WriteString(m.upload.detailInputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Link password │ [")
	b.WriteString(m.upload.detailInputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Expires, days │ [")
	b.WriteString(m.upload.detailInputs[2].View())
	b.WriteString("]\n")

	if m.upload.stage == uploadStageSending {
		b.WriteString("\n[Encrypting and uploading...]\n")
	} else {
		b.WriteString("\n[Send]\n")
	}
	b.WriteString(m.footer())

	return renderPage("SEND A FILE · DETAILS", strings.TrimRight(b.String(), "\n"), "enter: send │ tab: next field │ esc: back")
}

func (m mainLoopModel) viewUploadDone() string {
	recipient := m.upload.candidates[m.upload.pickIdx]

	var b strings.Builder
	b.WriteString("File shared with ")
	b.WriteString(recipient.Email)
	b.WriteString("\n\n")
	b.WriteString("Link ID: ")
	b.WriteString(m.upload.result.LinkID.String())
	b.WriteString("\n\n")
	b.WriteString("Give the recipient the link ID and the link password\n")
	b.WriteString("over a separate channel.\n")
	b.WriteString(m.footer())

	return renderPage("SEND A FILE · DONE", strings.TrimRight(b.String(), "\n"), "c: copy link ID │ enter/esc: back")
}
