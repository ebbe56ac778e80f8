package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ciphershare/go-cipher-share/models"
)

// listsState backs the three read-only sections: sent files, received files
// and the local download history. Sent and received pages come from the
// server; downloads come from the client's SQLite store.
type listsState struct {
	loading bool
	idx     int

	sent     models.SentFilesResponse
	received models.ReceivedFilesResponse

	downloads []models.DownloadRecord
}

type sentLoadedMsg struct {
	page models.SentFilesResponse
	err  error
}

type receivedLoadedMsg struct {
	page models.ReceivedFilesResponse
	err  error
}

type downloadsLoadedMsg struct {
	records []models.DownloadRecord
	err     error
}

func (s *listsState) reset() {
	*s = listsState{loading: true}
}

func (s *listsState) rowCount(section mainSection) int {
	switch section {
	case sectionSent:
		return len(s.sent.Files)
	case sectionReceived:
		return len(s.received.Files)
	case sectionDownloads:
		return len(s.downloads)
	}
	return 0
}

func (m mainLoopModel) updateListsMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.lists.loading = false

	switch msg := msg.(type) {
	case sentLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.lists.sent = msg.page

	case receivedLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.lists.received = msg.page

	case downloadsLoadedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.lists.downloads = msg.records
	}

	if m.lists.idx >= m.lists.rowCount(m.section) {
		m.lists.idx = m.lists.rowCount(m.section) - 1
	}
	if m.lists.idx < 0 {
		m.lists.idx = 0
	}

	return m, nil
}

func (m mainLoopModel) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.lists.loading {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.backHome()
		return m, nil

	case key.Matches(keyMsg, keys.up):
		if m.lists.idx > 0 {
			m.lists.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if m.lists.idx < m.lists.rowCount(m.section)-1 {
			m.lists.idx++
		}

	case key.Matches(keyMsg, keys.refresh):
		return m.reloadCurrentList()

	case key.Matches(keyMsg, keys.nextPage):
		if page, ok := m.nextPage(); ok {
			return m.loadListPage(page)
		}

	case key.Matches(keyMsg, keys.prevPage):
		if page, ok := m.prevPage(); ok {
			return m.loadListPage(page)
		}

	case key.Matches(keyMsg, keys.copy):
		return m.copyCurrentRow()

	case key.Matches(keyMsg, keys.enter):
		if m.section == sectionReceived {
			if row, ok := m.currentReceivedRow(); ok {
				m.startRetrieve(row)
			}
		}

	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) reloadCurrentList() (tea.Model, tea.Cmd) {
	m.lists.loading = true
	switch m.section {
	case sectionSent:
		return m, m.cmdLoadSent(m.lists.sent.Page)
	case sectionReceived:
		return m, m.cmdLoadReceived(m.lists.received.Page)
	case sectionDownloads:
		return m, m.cmdLoadDownloads()
	}
	return m, nil
}

func (m mainLoopModel) loadListPage(page int) (tea.Model, tea.Cmd) {
	m.lists.loading = true
	m.lists.idx = 0
	switch m.section {
	case sectionSent:
		return m, m.cmdLoadSent(page)
	case sectionReceived:
		return m, m.cmdLoadReceived(page)
	}
	return m, nil
}

func (m mainLoopModel) nextPage() (int, bool) {
	switch m.section {
	case sectionSent:
		if int64(m.lists.sent.Page)*int64(m.lists.sent.Limit) < m.lists.sent.Total {
			return m.lists.sent.Page + 1, true
		}
	case sectionReceived:
		if int64(m.lists.received.Page)*int64(m.lists.received.Limit) < m.lists.received.Total {
			return m.lists.received.Page + 1, true
		}
	}
	return 0, false
}

func (m mainLoopModel) prevPage() (int, bool) {
	switch m.section {
	case sectionSent:
		if m.lists.sent.Page > 1 {
			return m.lists.sent.Page - 1, true
		}
	case sectionReceived:
		if m.lists.received.Page > 1 {
			return m.lists.received.Page - 1, true
		}
	}
	return 0, false
}

// copyCurrentRow copies the identifier most useful for the selected row:
// the link ID for received rows, the file ID for sent rows and the saved
// path for download rows.
func (m mainLoopModel) copyCurrentRow() (tea.Model, tea.Cmd) {
	switch m.section {
	case sectionSent:
		if row, ok := m.currentSentRow(); ok {
			cmd := m.copyToClipboard(row.FileID.String(), "File ID")
			return m, cmd
		}
	case sectionReceived:
		if row, ok := m.currentReceivedRow(); ok {
			cmd := m.copyToClipboard(row.LinkID.String(), "Link ID")
			return m, cmd
		}
	case sectionDownloads:
		if m.lists.idx < len(m.lists.downloads) {
			cmd := m.copyToClipboard(m.lists.downloads[m.lists.idx].SavedTo, "Path")
			return m, cmd
		}
	}
	return m, nil
}

func (m mainLoopModel) currentSentRow() (models.SentFileEntry, bool) {
	if m.lists.idx >= len(m.lists.sent.Files) {
		return models.SentFileEntry{}, false
	}
	return m.lists.sent.Files[m.lists.idx], true
}

func (m mainLoopModel) currentReceivedRow() (models.ReceivedFileEntry, bool) {
	if m.lists.idx >= len(m.lists.received.Files) {
		return models.ReceivedFileEntry{}, false
	}
	return m.lists.received.Files[m.lists.idx], true
}

func (m mainLoopModel) cmdLoadSent(page int) tea.Cmd {
	ctx := m.ctx
	files := m.services.FileService

	return func() tea.Msg {
		resp, err := files.SentFiles(ctx, models.ListRequest{Page: page})
		return sentLoadedMsg{page: resp, err: err}
	}
}

func (m mainLoopModel) cmdLoadReceived(page int) tea.Cmd {
	ctx := m.ctx
	files := m.services.FileService

	return func() tea.Msg {
		resp, err := files.ReceivedFiles(ctx, models.ListRequest{Page: page})
		return receivedLoadedMsg{page: resp, err: err}
	}
}

func (m mainLoopModel) cmdLoadDownloads() tea.Cmd {
	ctx := m.ctx
	files := m.services.FileService
	userID := m.user.ID

	return func() tea.Msg {
		records, err := files.Downloads(ctx, userID)
		return downloadsLoadedMsg{records: records, err: err}
	}
}

func (m mainLoopModel) viewLists() string {
	switch m.section {
	case sectionSent:
		return m.viewSent()
	case sectionReceived:
		return m.viewReceived()
	case sectionDownloads:
		return m.viewDownloads()
	}
	return ""
}

func (m mainLoopModel) viewSent() string {
	var b strings.Builder

	if m.lists.loading {
		b.WriteString("Loading...\n")
	} else if len(m.lists.sent.Files) == 0 {
		b.WriteString("You have not shared any files yet.\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-30s %-30s %-17s\n", "File", "Recipient", "Expires"))
		for i, row := range m.lists.sent.Files {
			cursor := "  "
			if i == m.lists.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-30s %-30s %-17s\n",
				cursor,
				fitText(row.FileName, 30),
				fitText(row.RecipientEmail, 30),
				expiryLabel(row.ExpirationDate),
			))
		}
		b.WriteString("\n")
		b.WriteString(pageIndicator(m.lists.sent.Page, m.lists.sent.Limit, m.lists.sent.Total))
		b.WriteString("\n")
	}
	b.WriteString(m.footer())

	return renderPage("SENT FILES", strings.TrimRight(b.String(), "\n"),
		"c: copy file ID │ n/p: page │ r: refresh │ esc: back")
}

func (m mainLoopModel) viewReceived() string {
	var b strings.Builder

	if m.lists.loading {
		b.WriteString("Loading...\n")
	} else if len(m.lists.received.Files) == 0 {
		b.WriteString("Nobody has shared a file with you yet.\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-30s %-30s %-17s\n", "File", "From", "Expires"))
		for i, row := range m.lists.received.Files {
			cursor := "  "
			if i == m.lists.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-30s %-30s %-17s\n",
				cursor,
				fitText(row.FileName, 30),
				fitText(row.SenderEmail, 30),
				expiryLabel(row.ExpirationDate),
			))
		}
		b.WriteString("\n")
		b.WriteString(pageIndicator(m.lists.received.Page, m.lists.received.Limit, m.lists.received.Total))
		b.WriteString("\n")
	}
	b.WriteString(m.footer())

	return renderPage("RECEIVED FILES", strings.TrimRight(b.String(), "\n"),
		"enter: download │ c: copy link ID │ n/p: page │ r: refresh │ esc: back")
}

func (m mainLoopModel) viewDownloads() string {
	var b strings.Builder

	if m.lists.loading {
		b.WriteString("Loading...\n")
	} else if len(m.lists.downloads) == 0 {
		b.WriteString("No files downloaded on this machine yet.\n")
	} else {
		b.WriteString(fmt.Sprintf("  %-26s %-26s %-10s %-17s\n", "File", "From", "Size", "Downloaded"))
		for i, record := range m.lists.downloads {
			cursor := "  "
			if i == m.lists.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-26s %-26s %-10s %-17s\n",
				cursor,
				fitText(record.FileName, 26),
				fitText(record.SenderEmail, 26),
				formatBytes(record.FileSize),
				formatTime(record.DownloadedAt),
			))
		}
	}
	b.WriteString(m.footer())

	return renderPage("DOWNLOAD HISTORY", strings.TrimRight(b.String(), "\n"),
		"c: copy saved path │ r: refresh │ esc: back")
}
