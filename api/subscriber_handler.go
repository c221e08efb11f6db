package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sergiorueda9090/camilo/database"
	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/services"
)

type subscriberHandler struct {
	responder   Responder
	logger      zerolog.Logger
	subscribers *database.SubscriberRepo
	engagement  *services.Engagement
}

func newSubscriberHandler(subscribers *database.SubscriberRepo, engagement *services.Engagement) subscriberHandler {
	logger := log.With().Str("handlerName", "subscriberHandler").Logger()

	return subscriberHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		subscribers: subscribers,
		engagement:  engagement,
	}
}

type registerPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// register looks up or creates a subscriber. The response reveals only
// created-vs-existing, never an existing row's approval state.
func (h subscriberHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		created, err := h.engagement.RegisterSubscriber(payload.Email, payload.Name)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if created {
			w.WriteHeader(http.StatusCreated)
		}
		h.responder.WriteJSON(w, map[string]bool{"created": created})
	}
}

// confirm flips the confirmed flag for a valid token.
func (h subscriberHandler) confirm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			h.responder.WriteError(w, errs.BadRequest("missing token"))
			return
		}

		if err := h.engagement.ConfirmSubscriber(token); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "confirmed"})
	}
}

// Admin surface below.

func (h subscriberHandler) getAllSubscribers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subs, err := h.subscribers.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "subscribers", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"subscribers": subs,
			"total":       len(subs),
		})
	}
}

// setActive backs the admin bulk activate/deactivate actions.
func (h subscriberHandler) setActive(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload idsPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		ids, err := parseIDs(payload.IDs)
		if err != nil {
			h.responder.WriteError(w, errs.BadRequestWithField("invalid id in selection", "ids"))
			return
		}

		updated, err := h.subscribers.SetActive(ids, active)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "subscribers", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"updated": updated,
		})
	}
}
