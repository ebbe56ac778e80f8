package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ciphershare/go-cipher-share/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes the authentication flow. On success the root program
// quits and hands the user back to the caller of LoginFlow.
type AuthResult struct {
	User models.User
	Err  error
}

type clearStatusMsg struct{}
