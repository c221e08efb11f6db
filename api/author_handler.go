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

type authorHandler struct {
	responder Responder
	logger    zerolog.Logger
	authors   *database.AuthorRepo
}

func newAuthorHandler(authors *database.AuthorRepo) authorHandler {
	logger := log.With().Str("handlerName", "authorHandler").Logger()

	return authorHandler{
		responder: NewResponder(logger),
		logger:    logger,
		authors:   authors,
	}
}

func (h authorHandler) getAllAuthors() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authors, err := h.authors.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "authors", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"authors": authors,
			"total":   len(authors),
		})
	}
}

func (h authorHandler) getAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.BadRequest("missing slug"))
			return
		}

		author, err := h.authors.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "author", err))
			return
		}
		if author == nil {
			h.responder.WriteError(w, errs.NotFound("author"))
			return
		}

		h.responder.WriteJSON(w, author)
	}
}

func (h authorHandler) createAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var author models.Author
		if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if author.Name == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("name is required", "name"))
			return
		}

		if err := h.authors.Add(&author); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "author", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, author)
	}
}

func (h authorHandler) updateAuthor() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "authorID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid authorID"))
			return
		}

		existing, err := h.authors.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "author", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NotFound("author"))
			return
		}

		var author models.Author
		if err := json.NewDecoder(r.Body).Decode(&author); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		author.ID = id
		if author.Slug == "" {
			author.Slug = existing.Slug
		}

		if err := h.authors.Update(&author); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "author", err))
			return
		}

		h.responder.WriteJSON(w, author)
	}
}
