package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-qr-notes/internal/service"
	"github.com/MKhiriev/go-qr-notes/models"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestImportConfirm_SingleOutstandingCall(t *testing.T) {
	m := newMainLoopModel(context.Background(), &service.ClientServices{})
	m.importConfirm = true
	m.importNote = models.Note{ID: "note-1", Title: "Список покупок"}

	next, cmd := m.Update(keyRune('y'))
	m = next.(mainLoopModel)
	require.NotNil(t, cmd, "first confirm dispatches the import call")
	require.True(t, m.importBusy)

	// a repeated confirm while the call is outstanding must not dispatch again
	next, cmd = m.Update(keyRune('y'))
	m = next.(mainLoopModel)
	require.Nil(t, cmd)
	require.True(t, m.importBusy)

	// cancel keys are ignored as well until the call returns
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(mainLoopModel)
	require.True(t, m.importConfirm)

	next, _ = m.Update(importDoneMsg{note: m.importNote})
	m = next.(mainLoopModel)
	require.False(t, m.importBusy)
	require.False(t, m.importConfirm)
}

func TestImportConfirm_Decline(t *testing.T) {
	m := newMainLoopModel(context.Background(), &service.ClientServices{})
	m.importConfirm = true
	m.importNote = models.Note{ID: "note-1", Title: "Список покупок"}

	next, cmd := m.Update(keyRune('n'))
	m = next.(mainLoopModel)
	require.Nil(t, cmd)
	require.False(t, m.importConfirm)
	require.Empty(t, m.importNote.ID)
}
