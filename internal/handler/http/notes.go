package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-notes/internal/app"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/service"
	"github.com/MKhiriev/go-qr-notes/internal/store"
	"github.com/MKhiriev/go-qr-notes/internal/utils"
	"github.com/MKhiriev/go-qr-notes/models"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	createdNote, err := h.services.NoteService.CreateNote(ctx, userID, note)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during note creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("note_id", createdNote.ID).Msg("note created")

	if _, err = utils.WriteJSON(w, createdNote, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing note response")
	}
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during notes listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err = utils.WriteJSON(w, notes, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing notes response")
	}
}

// getNote fetches a note by id for any authenticated user. The import flow
// reads notes the caller is not yet a member of, so no membership check is
// applied here.
func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	note, err := h.services.NoteService.GetNote(ctx, chi.URLParam(r, "id"))
	if err != nil {
		h.writeNoteError(w, r, err, "note lookup")
		return
	}

	if _, err = utils.WriteJSON(w, note, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing note response")
	}
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	updatedNote, err := h.services.NoteService.UpdateNoteFields(ctx, chi.URLParam(r, "id"), update)
	if err != nil {
		h.writeNoteError(w, r, err, "note update")
		return
	}

	log.Debug().Str("note_id", updatedNote.ID).Msg("note updated")

	if _, err = utils.WriteJSON(w, updatedNote, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing note response")
	}
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.NoteService.DeleteNote(ctx, chi.URLParam(r, "id")); err != nil {
		h.writeNoteError(w, r, err, "note deletion")
		return
	}

	log.Debug().Str("note_id", chi.URLParam(r, "id")).Msg("note deleted")

	w.WriteHeader(http.StatusNoContent)
}

// writeNoteError maps service errors from note operations to HTTP statuses.
func (h *Handler) writeNoteError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, store.ErrEmptyNoteUpdate):
		log.Err(err).Str("operation", operation).Msg("invalid data provided")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
	case errors.Is(err, store.ErrNoteNotFound):
		log.Err(err).Str("operation", operation).Msg("note not found")
		http.Error(w, app.MsgNoteNotFound, http.StatusNotFound)
	default:
		log.Err(err).Str("operation", operation).Msg("unexpected error")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
