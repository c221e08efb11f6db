package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sergiorueda9090/camilo/database"
	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/models"
	"github.com/sergiorueda9090/camilo/services"
)

type articleHandler struct {
	responder  Responder
	logger     zerolog.Logger
	articles   *database.ArticleRepo
	pullQuotes *database.PullQuoteRepo
	capsules   *database.CapsuleRepo
	site       *database.SiteRepo
	engagement *services.Engagement
}

func newArticleHandler(db database.Database, engagement *services.Engagement) articleHandler {
	logger := log.With().Str("handlerName", "articleHandler").Logger()

	return articleHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		articles:   db.ArticleRepo(),
		pullQuotes: db.PullQuoteRepo(),
		capsules:   db.CapsuleRepo(),
		site:       db.SiteRepo(),
		engagement: engagement,
	}
}

// articleRef is the slim shape used for prev/next navigation links.
type articleRef struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	PublishedAt *string `json:"publishedAt,omitempty"`
}

func refOf(a *models.Article) *articleRef {
	if a == nil {
		return nil
	}
	ref := &articleRef{Title: a.Title, Slug: a.Slug}
	if a.PublishedAt != nil {
		s := a.PublishedAt.Format("2006-01-02T15:04:05Z07:00")
		ref.PublishedAt = &s
	}
	return ref
}

// homeResponse is the landing page payload: the featured article, the
// archive below it, and the sidebar content.
type homeResponse struct {
	Featured *models.Article       `json:"featured,omitempty"`
	Archive  []models.Article      `json:"archive"`
	Profile  *models.AuthorProfile `json:"profile,omitempty"`
	Capsules []models.Capsule      `json:"capsules"`
}

// getHome assembles the landing page: featured resolution, the archive with
// the featured article excluded, the singleton profile and active capsules.
func (h articleHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := h.articles.Featured()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "featured article", err))
			return
		}

		var exclude *uuid.UUID
		if featured != nil {
			exclude = &featured.ID
		}
		archive, err := h.articles.Archive(exclude, database.DefaultArchiveSize)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "archive", err))
			return
		}

		profile, err := h.site.GetProfile()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "author profile", err))
			return
		}

		capsules, err := h.capsules.ActiveOrdered()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "capsules", err))
			return
		}

		h.responder.WriteJSON(w, homeResponse{
			Featured: featured,
			Archive:  archive,
			Profile:  profile,
			Capsules: capsules,
		})
	}
}

// getPublishedArticles lists the published set with offset paging.
func (h articleHandler) getPublishedArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		articles, err := h.articles.FindPublished(offset, limit)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "articles", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"articles": articles,
			"total":    len(articles),
		})
	}
}

// articleDetailResponse is the detail page payload: the article with its
// pull-quotes, the related block, prev/next navigation, the visible comment
// thread and, at most once per session, the echo of a rejected submission.
type articleDetailResponse struct {
	Article  *models.Article  `json:"article"`
	Related  []models.Article `json:"related"`
	Prev     *articleRef      `json:"prev,omitempty"`
	Next     *articleRef      `json:"next,omitempty"`
	Comments []models.Comment `json:"comments"`
	Echo     *services.Echo   `json:"echo,omitempty"`
}

// getArticle serves the detail page and bumps the view counter on every
// successful fetch.
func (h articleHandler) getArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.BadRequest("missing slug"))
			return
		}

		article, err := h.articles.FindPublishedBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "article", err))
			return
		}
		if article == nil {
			h.responder.WriteError(w, errs.NotFound("article"))
			return
		}

		if err := h.engagement.RecordView(slug); err != nil {
			// The page still renders; the lost count is logged.
			h.logger.Error().Err(err).Str("slug", slug).Msg("view increment failed")
		} else {
			article.Views++
		}

		related, err := h.articles.Related(article, database.DefaultRelatedSize)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "related articles", err))
			return
		}

		prev, err := h.articles.Prev(article)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "previous article", err))
			return
		}
		next, err := h.articles.Next(article)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "next article", err))
			return
		}

		comments, err := h.engagement.CommentsFor(article.ID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		response := articleDetailResponse{
			Article:  article,
			Related:  related,
			Prev:     refOf(prev),
			Next:     refOf(next),
			Comments: comments,
		}
		if echo, ok := h.engagement.ConsumeEcho(sessionID(r)); ok {
			response.Echo = &echo
		}

		h.responder.WriteJSON(w, response)
	}
}

// Admin surface below.

func (h articleHandler) getAllArticles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := h.articles.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "articles", err))
			return
		}
		h.responder.WriteJSON(w, map[string]any{
			"articles": articles,
			"total":    len(articles),
		})
	}
}

func (h articleHandler) createArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var article models.Article
		if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		if article.Title == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("title is required", "title"))
			return
		}
		if article.AuthorID == uuid.Nil {
			h.responder.WriteError(w, errs.BadRequestWithField("authorId is required", "authorId"))
			return
		}
		if len(article.MetaDescription) > 160 {
			h.responder.WriteError(w, errs.BadRequestWithField("meta description exceeds 160 characters", "metaDescription"))
			return
		}

		if err := h.articles.Add(&article); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "article", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, article)
	}
}

func (h articleHandler) updateArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "articleID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid articleID"))
			return
		}

		existing, err := h.articles.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "article", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NotFound("article"))
			return
		}

		var article models.Article
		if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if len(article.MetaDescription) > 160 {
			h.responder.WriteError(w, errs.BadRequestWithField("meta description exceeds 160 characters", "metaDescription"))
			return
		}

		article.ID = id
		// The slug is immutable once assigned: an empty payload slug keeps
		// the stored one regardless of title edits. Changing it takes an
		// explicit new slug in the payload.
		if article.Slug == "" {
			article.Slug = existing.Slug
		}
		article.Views = existing.Views
		article.CreatedAt = existing.CreatedAt

		if err := h.articles.Update(&article); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "article", err))
			return
		}

		h.responder.WriteJSON(w, article)
	}
}

func (h articleHandler) deleteArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "articleID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid articleID"))
			return
		}

		if err := h.articles.Delete(id); err != nil {
			h.responder.WriteError(w, errs.FromDB("delete", "article", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "article deleted successfully",
		})
	}
}

func (h articleHandler) createPullQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "articleID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid articleID"))
			return
		}

		article, err := h.articles.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "article", err))
			return
		}
		if article == nil {
			h.responder.WriteError(w, errs.NotFound("article"))
			return
		}

		var quote models.PullQuote
		if err := json.NewDecoder(r.Body).Decode(&quote); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if quote.Text == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("text is required", "text"))
			return
		}

		quote.ArticleID = id
		if err := h.pullQuotes.Add(&quote); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "pull quote", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, quote)
	}
}

func (h articleHandler) deletePullQuote() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "quoteID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid quoteID"))
			return
		}

		if err := h.pullQuotes.Delete(id); err != nil {
			h.responder.WriteError(w, errs.FromDB("delete", "pull quote", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "pull quote deleted successfully",
		})
	}
}
