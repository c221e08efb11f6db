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
	"github.com/sergiorueda9090/camilo/services"
)

type commentHandler struct {
	responder  Responder
	logger     zerolog.Logger
	comments   *database.CommentRepo
	engagement *services.Engagement
}

func newCommentHandler(comments *database.CommentRepo, engagement *services.Engagement) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		comments:   comments,
		engagement: engagement,
	}
}

type commentPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Text     string `json:"text"`
	ParentID string `json:"parentId"`
}

// submitComment runs the gated submission workflow. Policy outcomes (not
// found, not authorized, silent reject) come back in the result body, not as
// HTTP errors, so the frontend re-renders the form with the echo.
func (h commentHandler) submitComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.BadRequest("missing slug"))
			return
		}

		var payload commentPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		submission := services.CommentSubmission{
			SessionID: sessionID(r),
			Slug:      slug,
			Name:      payload.Name,
			Email:     payload.Email,
			Role:      payload.Role,
			Text:      payload.Text,
			IP:        r.RemoteAddr,
		}
		if payload.ParentID != "" {
			parentID, err := uuid.Parse(payload.ParentID)
			if err != nil {
				h.responder.WriteError(w, errs.BadRequestWithField("invalid parentId", "parentId"))
				return
			}
			submission.ParentID = &parentID
		}

		result, err := h.engagement.SubmitComment(submission)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, result)
	}
}

// voteHelpful bumps a comment's helpful counter.
func (h commentHandler) voteHelpful() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid commentID"))
			return
		}

		matched, err := h.comments.AddHelpfulVote(id)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "comment", err))
			return
		}
		if matched == 0 {
			h.responder.WriteError(w, errs.NotFound("comment"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

// setApproved backs the admin bulk approve/reject actions.
func (h commentHandler) setApproved(approved bool) http.HandlerFunc {
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

		updated, err := h.comments.SetApproved(ids, approved)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "comments", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"updated": updated,
		})
	}
}

func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid commentID"))
			return
		}

		if err := h.comments.Delete(id); err != nil {
			h.responder.WriteError(w, errs.FromDB("delete", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
