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

type categoryHandler struct {
	responder  Responder
	logger     zerolog.Logger
	categories *database.CategoryRepo
	articles   *database.ArticleRepo
}

func newCategoryHandler(categories *database.CategoryRepo, articles *database.ArticleRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		categories: categories,
		articles:   articles,
	}
}

func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categories.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "categories", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"categories": categories,
			"total":      len(categories),
		})
	}
}

// getCategory returns a category and its published articles.
func (h categoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.BadRequest("missing slug"))
			return
		}

		category, err := h.categories.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NotFound("category"))
			return
		}

		articles, err := h.articles.FindPublishedByCategory(category.ID, 0)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "articles", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"category": category,
			"articles": articles,
		})
	}
}

func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if category.Name == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("name is required", "name"))
			return
		}

		if err := h.categories.Add(&category); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "category", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, category)
	}
}

func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid categoryID"))
			return
		}

		existing, err := h.categories.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "category", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NotFound("category"))
			return
		}

		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		category.ID = id
		if category.Slug == "" {
			category.Slug = existing.Slug
		}

		if err := h.categories.Update(&category); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// deleteCategory removes the category; its articles survive with the
// reference nulled out.
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid categoryID"))
			return
		}

		if err := h.categories.Delete(id); err != nil {
			h.responder.WriteError(w, errs.FromDB("delete", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}
