package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sergiorueda9090/camilo/database"
	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/models"
)

type archiveHandler struct {
	responder Responder
	logger    zerolog.Logger
	archive   *database.ArchiveRepo
}

func newArchiveHandler(archive *database.ArchiveRepo) archiveHandler {
	logger := log.With().Str("handlerName", "archiveHandler").Logger()

	return archiveHandler{
		responder: NewResponder(logger),
		logger:    logger,
		archive:   archive,
	}
}

// getEntries lists the external back-catalog, newest first.
func (h archiveHandler) getEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.archive.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "archive entries", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"entries": entries,
			"total":   len(entries),
		})
	}
}

func (h archiveHandler) createEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entry models.ColumnArchive
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if entry.Title == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("title is required", "title"))
			return
		}

		if err := h.archive.Add(&entry); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "archive entry", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, entry)
	}
}

func (h archiveHandler) updateEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid entryID"))
			return
		}

		var entry models.ColumnArchive
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if entry.Title == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("title is required", "title"))
			return
		}

		entry.ID = id
		if err := h.archive.Update(&entry); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "archive entry", err))
			return
		}

		h.responder.WriteJSON(w, entry)
	}
}

func (h archiveHandler) deleteEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid entryID"))
			return
		}

		if err := h.archive.Delete(id); err != nil {
			h.responder.WriteError(w, errs.FromDB("delete", "archive entry", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
