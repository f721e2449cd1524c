// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-qr-notes/internal/service"
	"github.com/MKhiriev/go-qr-notes/models"
)

// mainLoopModel is the single Bubble Tea model for the authenticated part of
// the client. Which screen is shown is driven by boolean flags checked in
// order: overlays first, then form screens, then the detail view, and the
// note list as the fallback.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	notes   []models.Note
	idx     int
	loading bool
	errMsg  string
	status  string

	searching   bool
	searchInput textinput.Model
	query       string

	detail     bool
	detailNote models.Note

	// note-level security password prompt shown before a protected note opens
	gate      bool
	gateInput textinput.Model
	gateNote  models.Note
	gateErr   string

	creating    bool
	editing     bool
	editNoteID  string
	formTitle   textinput.Model
	formGate    textinput.Model
	formContent textarea.Model
	formFocus   int
	formSaving  bool
	formErr     string

	sharing   bool
	shareBusy bool
	shareCode models.ShareCode

	importing     bool
	importInput   textinput.Model
	importBusy    bool
	importErr     string
	importConfirm bool
	importNote    models.Note

	showError    bool
	errorOverlay errorOverlayModel
	showConfirm  bool
	confirm      confirmModel
	pendingID    string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	search := textinput.New()
	search.Placeholder = "поиск"
	search.Width = 40

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		loading:     true,
		searchInput: search,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadNotes()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingID == "" {
					return m, nil
				}
				return m, m.cmdDelete(m.pendingID)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingID = ""
			}
			return m, nil
		}

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.notes = msg.notes
		m.clampIdx()
		return m, nil

	case editLoadedMsg:
		if msg.err != nil {
			// the note disappeared under us, the edit flow cannot continue
			m.detail = false
			m.showErrorf(humanizeLookupError(msg.err))
			return m, m.cmdLoadNotes()
		}
		m.detailNote = msg.note
		m.openForm(msg.note, true)
		return m, textinput.Blink

	case noteSavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.formErr = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.creating = false
		m.editing = false
		m.formErr = ""
		if m.detail {
			// token was rolled on save, keep the detail view current
			m.detailNote = msg.note
		}
		m.status = "Сохранено"
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())

	case noteDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.pendingID = ""
		m.detail = false
		m.status = "Заметка удалена"
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())

	case shareDoneMsg:
		m.shareBusy = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.sharing = true
		m.shareCode = msg.code
		m.detailNote.Token = msg.code.Token
		return m, nil

	case lookupDoneMsg:
		m.importBusy = false
		if msg.err != nil {
			m.importErr = humanizeLookupError(msg.err)
			return m, nil
		}
		m.importing = false
		m.importErr = ""
		m.importConfirm = true
		m.importNote = msg.note
		return m, nil

	case importDoneMsg:
		m.importBusy = false
		m.importConfirm = false
		if msg.err != nil {
			m.showErrorf(humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.status = "Заметка \"" + msg.note.Title + "\" добавлена"
		return m, tea.Batch(m.cmdLoadNotes(), cmdClearStatus())

	case copiedMsg:
		m.status = "Скопировано!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch {
	case m.sharing:
		return m.updateSharing(msg)
	case m.importConfirm:
		return m.updateImportConfirm(msg)
	case m.importing:
		return m.updateImporting(msg)
	case m.creating || m.editing:
		return m.updateForm(msg)
	case m.gate:
		return m.updateGate(msg)
	case m.detail:
		return m.updateDetail(msg)
	case m.searching:
		return m.updateSearching(msg)
	}

	return m.updateList(msg)
}

// ─────────────────────────────────────────────
// Per-screen update handlers
// ─────────────────────────────────────────────

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	visible := m.visibleNotes()

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(visible)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		if note.SecurityPassword != "" {
			m.openGate(note)
			return m, textinput.Blink
		}
		m.detail = true
		m.detailNote = note
	case key.Matches(keyMsg, keys.newNote):
		m.openForm(models.Note{}, false)
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.search):
		m.searching = true
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.scan):
		m.openImport()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.reload):
		m.loading = true
		return m, m.cmdLoadNotes()
	case key.Matches(keyMsg, keys.esc):
		if m.query != "" {
			m.query = ""
			m.clampIdx()
		}
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateSearching(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "esc":
			m.searching = false
			m.query = ""
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.clampIdx()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.query = m.searchInput.Value()
	m.clampIdx()
	return m, cmd
}

func (m mainLoopModel) updateGate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.gate = false
			m.gateErr = ""
			return m, nil
		case "enter":
			err := m.services.AuthService.CheckSecurityPassword(m.gateNote.SecurityPassword, m.gateInput.Value())
			if err != nil {
				m.gateErr = gateErrorMessage(err)
				m.gateInput.SetValue("")
				return m, nil
			}
			m.gate = false
			m.gateErr = ""
			m.detail = true
			m.detailNote = m.gateNote
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.gateInput, cmd = m.gateInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.detail = false
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		// re-fetch before editing so a stale list entry cannot be saved over
		// a deleted note
		return m, m.cmdLoadForEdit(m.detailNote.ID)
	case key.Matches(keyMsg, keys.share):
		if m.shareBusy {
			return m, nil
		}
		m.shareBusy = true
		return m, m.cmdShare(m.detailNote)
	case key.Matches(keyMsg, keys.copy):
		if m.detailNote.Content == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detailNote.Content)
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detailNote.Title
		m.pendingID = m.detailNote.ID
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.creating = false
			m.editing = false
			m.formSaving = false
			m.formErr = ""
			return m, nil
		case "tab":
			m.formFocusNext()
			return m, nil
		case "shift+tab":
			m.formFocusPrev()
			return m, nil
		case "ctrl+s":
			if m.formSaving {
				return m, nil
			}

			title := strings.TrimSpace(m.formTitle.Value())
			if title == "" {
				m.formErr = "Название обязательно"
				return m, nil
			}

			m.formErr = ""
			m.formSaving = true
			content := m.formContent.Value()
			securityPass := m.formGate.Value()
			if m.editing {
				return m, m.cmdUpdate(m.editNoteID, title, content, securityPass)
			}
			return m, m.cmdCreate(title, content, securityPass)
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.formTitle, cmd = m.formTitle.Update(msg)
	case 1:
		m.formContent, cmd = m.formContent.Update(msg)
	default:
		m.formGate, cmd = m.formGate.Update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) updateSharing(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.sharing = false
		m.shareCode = models.ShareCode{}
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.shareCode.Payload)
	}

	return m, nil
}

func (m mainLoopModel) updateImporting(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.importing = false
			m.importBusy = false
			m.importErr = ""
			return m, nil
		case "enter":
			if m.importBusy {
				return m, nil
			}

			payload := strings.TrimSpace(m.importInput.Value())
			if payload == "" {
				m.importErr = "Вставьте код из QR"
				return m, nil
			}

			m.importErr = ""
			m.importBusy = true
			return m, m.cmdLookup(payload)
		}
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateImportConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes), key.Matches(keyMsg, keys.enter):
		if m.importBusy {
			return m, nil
		}
		m.importBusy = true
		return m, m.cmdImport(m.importNote)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		if m.importBusy {
			return m, nil
		}
		m.importConfirm = false
		m.importNote = models.Note{}
	}

	return m, nil
}

// ─────────────────────────────────────────────
// Views
// ─────────────────────────────────────────────

func (m mainLoopModel) View() string {
	var body string

	switch {
	case m.sharing:
		body = m.viewSharing()
	case m.importConfirm:
		body = m.viewImportConfirm()
	case m.importing:
		body = m.viewImporting()
	case m.creating || m.editing:
		body = m.viewForm()
	case m.gate:
		body = m.viewGate()
	case m.detail:
		body = m.viewDetail()
	default:
		body = m.viewList()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return body
}

func (m mainLoopModel) viewList() string {
	out := ""

	if m.loading {
		out += "Загрузка списка...\n"
		return renderPage("МОИ ЗАМЕТКИ", strings.TrimRight(out, "\n"), listHotKeys)
	}

	if m.errMsg != "" {
		out += "Ошибка: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Статус: " + m.status + "\n"
	}

	if m.searching {
		out += "Поиск     │ [" + m.searchInput.View() + "]\n"
	} else if m.query != "" {
		out += "Поиск     │ " + m.query + "  (esc: сбросить)\n"
	}

	visible := m.visibleNotes()
	if len(visible) == 0 {
		if out != "" {
			out += "\n"
		}
		if m.query != "" {
			out += "Ничего не найдено\n"
		} else {
			out += "Записей нет\n"
		}
	} else {
		if out != "" {
			out += "\n"
		}
		out += "ID   │ Название                 │ Защита │ Изменена\n"
		out += "─────┼──────────────────────────┼────────┼──────────────────\n"
		for i, note := range visible {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}

			protected := "-"
			if note.SecurityPassword != "" {
				protected = "🔒"
			}

			out += fmt.Sprintf(
				"%s %-3d│ %-24s │ %-6s │ %s\n",
				cursor,
				i+1,
				fitText(note.Title, 24),
				protected,
				note.UpdatedAt.Format("02.01.2006 15:04"),
			)
		}
	}

	hotKeys := listHotKeys
	if m.searching {
		hotKeys = "enter: применить │ esc: сбросить поиск"
	}
	return renderPage("МОИ ЗАМЕТКИ", strings.TrimRight(out, "\n"), hotKeys)
}

const listHotKeys = "n: новая │ enter: открыть │ i: импорт │ /: поиск │ r: обновить │ l: выход из аккаунта"

func (m mainLoopModel) viewGate() string {
	out := "Заметка \"" + m.gateNote.Title + "\" защищена паролем безопасности.\n\n"
	out += "Пароль    │ [" + m.gateInput.View() + "]\n"
	if m.gateErr != "" {
		out += "\nОшибка: " + m.gateErr + "\n"
	}
	return renderPage("ПРОВЕРКА ДОСТУПА", strings.TrimRight(out, "\n"), "enter: подтвердить │ esc: назад")
}

func (m mainLoopModel) viewDetail() string {
	note := m.detailNote

	var b strings.Builder
	b.WriteString("Название  : " + note.Title + "\n")
	b.WriteString("Изменена  : " + note.UpdatedAt.Format("02.01.2006 15:04") + "\n")
	b.WriteString("Участники : " + fmt.Sprintf("%d", len(note.UserIDs)) + "\n")
	if note.SecurityPassword != "" {
		b.WriteString("Защита    : 🔒\n")
	}
	b.WriteString("\n[ ТЕКСТ ]\n")
	if strings.TrimSpace(note.Content) != "" {
		b.WriteString(note.Content + "\n")
	} else {
		b.WriteString("(пусто)\n")
	}
	if m.status != "" {
		b.WriteString("\nСтатус: " + m.status + "\n")
	}
	if m.shareBusy {
		b.WriteString("\nПодготовка QR-кода...\n")
	}

	return renderPage(
		"ЗАМЕТКА: "+fitText(note.Title, 30),
		strings.TrimRight(b.String(), "\n"),
		"e: изменить │ s: поделиться │ c: копировать текст │ ctrl+d: удалить │ esc: назад",
	)
}

func (m mainLoopModel) viewForm() string {
	title := "НОВАЯ ЗАМЕТКА"
	if m.editing {
		title = "ИЗМЕНЕНИЕ ЗАМЕТКИ"
	}

	out := "Название  │ [" + m.formTitle.View() + "]\n"
	out += "Защита    │ [" + m.formGate.View() + "]\n"
	out += "Текст:\n"
	out += m.formContent.View() + "\n"
	if m.formSaving {
		out += "\n[Сохранение...]\n"
	}
	if m.formErr != "" {
		out += "\nОшибка: " + m.formErr + "\n"
	}

	return renderPage(title, strings.TrimRight(out, "\n"), "tab: след. поле │ ctrl+s: сохранить │ esc: отмена")
}

func (m mainLoopModel) viewSharing() string {
	out := m.shareCode.QR + "\n"
	out += "Код       │ " + m.shareCode.Payload + "\n"
	if m.status != "" {
		out += "\nСтатус: " + m.status + "\n"
	}

	return renderPage(
		"ПОДЕЛИТЬСЯ: "+fitText(m.detailNote.Title, 30),
		strings.TrimRight(out, "\n"),
		"c: копировать код │ esc: назад",
	)
}

func (m mainLoopModel) viewImporting() string {
	out := "Вставьте текст из отсканированного QR-кода.\n\n"
	out += "Код       │ [" + m.importInput.View() + "]\n"
	if m.importBusy {
		out += "\nПроверка кода...\n"
	}
	if m.importErr != "" {
		out += "\nОшибка: " + m.importErr + "\n"
	}

	return renderPage("ИМПОРТ ЗАМЕТКИ", strings.TrimRight(out, "\n"), "enter: проверить │ esc: отмена")
}

func (m mainLoopModel) viewImportConfirm() string {
	out := "Добавить заметку \"" + m.importNote.Title + "\" в свой список?\n"
	if m.importBusy {
		out += "\nДобавление...\n"
	}
	return renderPage("ИМПОРТ ЗАМЕТКИ", strings.TrimRight(out, "\n"), "y да │ n нет")
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		notes, err := svc.List(ctx)
		return listLoadedMsg{notes: notes, err: err}
	}
}

func (m mainLoopModel) cmdCreate(title, content, securityPassword string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		note, err := svc.Create(ctx, title, content, securityPassword)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdLoadForEdit(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		note, err := svc.Get(ctx, id)
		return editLoadedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdUpdate(id, title, content, securityPassword string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		note, err := svc.Update(ctx, id, title, content, securityPassword)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NoteService

	return func() tea.Msg {
		return noteDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdShare(note models.Note) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShareService

	return func() tea.Msg {
		code, err := svc.Share(ctx, note)
		return shareDoneMsg{code: code, err: err}
	}
}

func (m mainLoopModel) cmdLookup(payload string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShareService

	return func() tea.Msg {
		note, err := svc.LookupScanned(ctx, pastedCode{payload: payload})
		return lookupDoneMsg{note: note, err: err}
	}
}

func (m mainLoopModel) cmdImport(note models.Note) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ShareService

	return func() tea.Msg {
		imported, err := svc.Import(ctx, note)
		return importDoneMsg{note: imported, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func (m mainLoopModel) visibleNotes() []models.Note {
	return m.services.NoteService.Search(m.notes, m.query)
}

func (m mainLoopModel) current() (models.Note, bool) {
	visible := m.visibleNotes()
	if len(visible) == 0 || m.idx < 0 || m.idx >= len(visible) {
		return models.Note{}, false
	}
	return visible[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	visible := m.visibleNotes()
	if m.idx >= len(visible) {
		m.idx = len(visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *mainLoopModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *mainLoopModel) openGate(note models.Note) {
	input := textinput.New()
	input.Placeholder = "security password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	m.gate = true
	m.gateInput = input
	m.gateNote = note
	m.gateErr = ""
}

func (m *mainLoopModel) openForm(note models.Note, editing bool) {
	title := textinput.New()
	title.Placeholder = "название"
	title.CharLimit = 200
	title.Width = 40
	title.SetValue(note.Title)
	title.Focus()

	gate := textinput.New()
	gate.Placeholder = "пароль безопасности (необязательно)"
	gate.CharLimit = 256
	gate.Width = 40
	gate.EchoMode = textinput.EchoPassword
	gate.EchoCharacter = '*'
	gate.SetValue(note.SecurityPassword)

	content := textarea.New()
	content.Placeholder = "текст заметки"
	content.SetWidth(60)
	content.SetHeight(8)
	content.SetValue(note.Content)

	m.creating = !editing
	m.editing = editing
	m.editNoteID = note.ID
	m.formTitle = title
	m.formGate = gate
	m.formContent = content
	m.formFocus = 0
	m.formSaving = false
	m.formErr = ""
}

func (m *mainLoopModel) openImport() {
	input := textinput.New()
	input.Placeholder = "id  токен"
	input.CharLimit = 256
	input.Width = 60
	input.Focus()

	m.importing = true
	m.importInput = input
	m.importBusy = false
	m.importErr = ""
	m.importConfirm = false
}

func (m *mainLoopModel) formFocusNext() {
	m.setFormFocus((m.formFocus + 1) % 3)
}

func (m *mainLoopModel) formFocusPrev() {
	m.setFormFocus((m.formFocus + 2) % 3)
}

func (m *mainLoopModel) setFormFocus(focus int) {
	m.formTitle.Blur()
	m.formContent.Blur()
	m.formGate.Blur()

	m.formFocus = focus
	switch focus {
	case 0:
		m.formTitle.Focus()
	case 1:
		m.formContent.Focus()
	default:
		m.formGate.Focus()
	}
}
