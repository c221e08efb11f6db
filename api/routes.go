package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read/write surface and the admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth adminAuth) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(SessionMiddleware)

		r.Get("/site", handlers.siteHandler.getSite())
		r.Get("/home", handlers.articleHandler.getHome())
		r.Get("/capsules", handlers.capsuleHandler.getActiveCapsules())
		r.Get("/articles", handlers.articleHandler.getPublishedArticles())
		r.Get("/article/{slug}", handlers.articleHandler.getArticle())
		r.Post("/article/{slug}/comments", handlers.commentHandler.submitComment())
		r.Post("/comment/{commentID}/helpful", handlers.commentHandler.voteHelpful())
		r.Get("/categories", handlers.categoryHandler.getAllCategories())
		r.Get("/category/{slug}", handlers.categoryHandler.getCategory())
		r.Get("/authors", handlers.authorHandler.getAllAuthors())
		r.Get("/author/{slug}", handlers.authorHandler.getAuthor())
		r.Get("/archive-columns", handlers.archiveHandler.getEntries())
		r.Post("/subscribers", handlers.subscriberHandler.register())
		r.Get("/subscribers/confirm", handlers.subscriberHandler.confirm())
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.require)

		r.Get("/articles", handlers.articleHandler.getAllArticles())
		r.Post("/article", handlers.articleHandler.createArticle())
		r.Put("/article/{articleID}", handlers.articleHandler.updateArticle())
		r.Delete("/article/{articleID}", handlers.articleHandler.deleteArticle())
		r.Post("/article/{articleID}/pull-quote", handlers.articleHandler.createPullQuote())
		r.Delete("/pull-quote/{quoteID}", handlers.articleHandler.deletePullQuote())

		r.Post("/category", handlers.categoryHandler.createCategory())
		r.Put("/category/{categoryID}", handlers.categoryHandler.updateCategory())
		r.Delete("/category/{categoryID}", handlers.categoryHandler.deleteCategory())

		r.Post("/author", handlers.authorHandler.createAuthor())
		r.Put("/author/{authorID}", handlers.authorHandler.updateAuthor())

		r.Get("/capsules", handlers.capsuleHandler.getAllCapsules())
		r.Post("/capsule", handlers.capsuleHandler.createCapsule())
		r.Put("/capsule/{capsuleID}", handlers.capsuleHandler.updateCapsule())
		r.Delete("/capsule/{capsuleID}", handlers.capsuleHandler.deleteCapsule())

		r.Post("/comments/approve", handlers.commentHandler.setApproved(true))
		r.Post("/comments/reject", handlers.commentHandler.setApproved(false))
		r.Delete("/comment/{commentID}", handlers.commentHandler.deleteComment())

		r.Get("/subscribers", handlers.subscriberHandler.getAllSubscribers())
		r.Post("/subscribers/activate", handlers.subscriberHandler.setActive(true))
		r.Post("/subscribers/deactivate", handlers.subscriberHandler.setActive(false))

		// Singletons: create-once and update; deletion is not exposed.
		r.Post("/site-config", handlers.siteHandler.createConfig())
		r.Put("/site-config", handlers.siteHandler.updateConfig())
		r.Post("/author-profile", handlers.siteHandler.createProfile())
		r.Put("/author-profile", handlers.siteHandler.updateProfile())
		r.Post("/subscription-section", handlers.siteHandler.createSubscriptionSection())
		r.Put("/subscription-section", handlers.siteHandler.updateSubscriptionSection())

		r.Post("/ticker-item", handlers.siteHandler.createTickerItem())
		r.Put("/ticker-item/{itemID}", handlers.siteHandler.updateTickerItem())
		r.Delete("/ticker-item/{itemID}", handlers.siteHandler.deleteTickerItem())
		r.Post("/social-link", handlers.siteHandler.createSocialLink())
		r.Put("/social-link/{linkID}", handlers.siteHandler.updateSocialLink())
		r.Delete("/social-link/{linkID}", handlers.siteHandler.deleteSocialLink())

		r.Post("/archive-column", handlers.archiveHandler.createEntry())
		r.Put("/archive-column/{entryID}", handlers.archiveHandler.updateEntry())
		r.Delete("/archive-column/{entryID}", handlers.archiveHandler.deleteEntry())
	})
}
