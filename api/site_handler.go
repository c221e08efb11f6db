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

type siteHandler struct {
	responder Responder
	logger    zerolog.Logger
	site      *database.SiteRepo
	display   *database.DisplayRepo
}

func newSiteHandler(site *database.SiteRepo, display *database.DisplayRepo) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		responder: NewResponder(logger),
		logger:    logger,
		site:      site,
		display:   display,
	}
}

// getSite serves the site chrome in one read: configuration, ticker strip,
// social navigation and the subscribe banner copy.
func (h siteHandler) getSite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := h.site.GetOrInitConfig()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "site config", err))
			return
		}

		ticker, err := h.display.ActiveTickerItems()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "ticker items", err))
			return
		}

		social, err := h.display.ActiveSocialLinks()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "social links", err))
			return
		}

		subscription, err := h.site.GetSubscriptionSection()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "subscription section", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"config":       cfg,
			"ticker":       ticker,
			"socialLinks":  social,
			"subscription": subscription,
		})
	}
}

// Admin surface below. Creating a singleton that already exists fails with a
// conflict; there is no delete route for any of them.

func (h siteHandler) createConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cfg models.SiteConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if cfg.SiteName == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("siteName is required", "siteName"))
			return
		}

		if err := h.site.CreateConfig(&cfg); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "site config", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, cfg)
	}
}

func (h siteHandler) updateConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := h.site.GetOrInitConfig()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "site config", err))
			return
		}

		var cfg models.SiteConfig
		if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		cfg.ID = existing.ID
		cfg.SingletonKey = existing.SingletonKey
		if err := h.site.UpdateConfig(&cfg); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "site config", err))
			return
		}

		h.responder.WriteJSON(w, cfg)
	}
}

func (h siteHandler) createProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile models.AuthorProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if profile.Name == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("name is required", "name"))
			return
		}

		if err := h.site.CreateProfile(&profile); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "author profile", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, profile)
	}
}

func (h siteHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := h.site.GetProfile()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "author profile", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NotFound("author profile"))
			return
		}

		var profile models.AuthorProfile
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		profile.ID = existing.ID
		profile.SingletonKey = existing.SingletonKey
		if err := h.site.UpdateProfile(&profile); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "author profile", err))
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

func (h siteHandler) createSubscriptionSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var section models.SubscriptionSection
		if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if section.Title == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("title is required", "title"))
			return
		}

		if err := h.site.CreateSubscriptionSection(&section); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "subscription section", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, section)
	}
}

func (h siteHandler) updateSubscriptionSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		existing, err := h.site.GetSubscriptionSection()
		if err != nil {
			h.responder.WriteError(w, errs.FromDB("find", "subscription section", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NotFound("subscription section"))
			return
		}

		var section models.SubscriptionSection
		if err := json.NewDecoder(r.Body).Decode(&section); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}

		section.ID = existing.ID
		section.SingletonKey = existing.SingletonKey
		if err := h.site.UpdateSubscriptionSection(&section); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "subscription section", err))
			return
		}

		h.responder.WriteJSON(w, section)
	}
}

func (h siteHandler) createTickerItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item models.TickerItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if item.Text == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("text is required", "text"))
			return
		}

		if err := h.display.AddTickerItem(&item); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "ticker item", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, item)
	}
}

func (h siteHandler) updateTickerItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid itemID"))
			return
		}

		var item models.TickerItem
		if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if item.Text == "" {
			h.responder.WriteError(w, errs.BadRequestWithField("text is required", "text"))
			return
		}

		item.ID = id
		if err := h.display.UpdateTickerItem(&item); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "ticker item", err))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

func (h siteHandler) deleteTickerItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "itemID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid itemID"))
			return
		}

		if err := h.display.DeleteTickerItem(id); err != nil {
			h.responder.WriteError(w, errs.FromDB("delete", "ticker item", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}

func (h siteHandler) createSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var link models.SocialLink
		if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if link.Name == "" || link.URL == "" {
			h.responder.WriteError(w, errs.BadRequest("name and url are required"))
			return
		}

		if err := h.display.AddSocialLink(&link); err != nil {
			h.responder.WriteError(w, errs.FromDB("create", "social link", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, link)
	}
}

func (h siteHandler) updateSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "linkID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid linkID"))
			return
		}

		var link models.SocialLink
		if err := json.NewDecoder(r.Body).Decode(&link); err != nil {
			h.responder.WriteError(w, errs.BadRequest("malformed request body"))
			return
		}
		if link.Name == "" || link.URL == "" {
			h.responder.WriteError(w, errs.BadRequest("name and url are required"))
			return
		}

		link.ID = id
		if err := h.display.UpdateSocialLink(&link); err != nil {
			h.responder.WriteError(w, errs.FromDB("update", "social link", err))
			return
		}

		h.responder.WriteJSON(w, link)
	}
}

func (h siteHandler) deleteSocialLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "linkID"))
		if err != nil {
			h.responder.WriteError(w, errs.BadRequest("invalid linkID"))
			return
		}

		if err := h.display.DeleteSocialLink(id); err != nil {
			h.responder.WriteError(w, errs.FromDB("delete", "social link", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
