package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-notes/models"
)

// NavigateTo switches the RootModel to another registered page. An optional
// Payload is delivered to the new page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an async sign-in attempt.
type LoginResult struct {
	Err error
}

// RegisterResult finishes an async registration attempt.
type RegisterResult struct {
	Err   error
	Email string
}

// RegisterSuccessNotice is shown on the menu page after a successful
// registration. The user signs in separately.
type RegisterSuccessNotice struct {
	Email string
}

type listLoadedMsg struct {
	notes []models.Note
	err   error
}

type editLoadedMsg struct {
	note models.Note
	err  error
}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct {
	err error
}

type shareDoneMsg struct {
	code models.ShareCode
	err  error
}

type lookupDoneMsg struct {
	note models.Note
	err  error
}

type importDoneMsg struct {
	note models.Note
	err  error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
