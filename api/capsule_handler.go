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

type capsuleHandler struct {
	responder Responder
	logger    zerolog.Logger
	capsules  *database.CapsuleRepo
}

func newCapsuleHandler(capsules *database.CapsuleRepo) capsuleHandler {
	logger := log.With().Str("handlerName", "capsuleHandler").Logger()

	return capsuleHandler{
		responder: NewResponder(logger),
		logger:    logger,
		capsules:  capsules,
	}
}

// getActiveCapsules serves the public sidebar list.
func (h capsuleHandler) getActiveCapsules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		capsules, err := h.capsules.ActiveOrdered()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "capsules", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"capsules": capsules,
			"total":    len(capsules),
		})
	}
}

func (h capsuleHandler) getAllCapsules() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		capsules, err := h.capsules.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "capsules", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"capsules": capsules,
			"total":    len(capsules),
		})
	}
}

// createCapsule enforces the system-wide cap; the 6th create fails with a
// conflict the administrator sees.
func (h capsuleHandler) createCapsule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var capsule models.Capsule
		if err := json.NewDecoder(r.Body).Decode(&capsule); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if capsule.Title == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("title is required", "title"))
			return
		}
		if capsule.Body == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("body is required", "body"))
			return
		}

		if err := h.capsules.Add(&capsule); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "capsule", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, capsule)
	}
}

func (h capsuleHandler) updateCapsule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "capsuleID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid capsuleID"))
			return
		}

		var capsule models.Capsule
		if err := json.NewDecoder(r.Body).Decode(&capsule); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		capsule.ID = id
		if err := h.capsules.Update(&capsule); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "capsule", err))
			return
		}

		h.responder.WriteJSON(w, capsule)
	}
}

func (h capsuleHandler) deleteCapsule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "capsuleID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid capsuleID"))
			return
		}

		if err := h.capsules.Delete(id); err != nil {
			h.responder.WriteError(w, errs.FromDB("delete", "capsule", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "capsule deleted successfully",
		})
	}
}
