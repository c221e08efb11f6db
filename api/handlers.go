package api

import (
	"github.com/sergiorueda9090/camilo/database"
	"github.com/sergiorueda9090/camilo/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, engagement *services.Engagement) *routeHandlers {
	return &routeHandlers{
		siteHandler:       newSiteHandler(db.SiteRepo(), db.DisplayRepo()),
		articleHandler:    newArticleHandler(db, engagement),
		categoryHandler:   newCategoryHandler(db.CategoryRepo(), db.ArticleRepo()),
		authorHandler:     newAuthorHandler(db.AuthorRepo()),
		commentHandler:    newCommentHandler(db.CommentRepo(), engagement),
		subscriberHandler: newSubscriberHandler(db.SubscriberRepo(), engagement),
		capsuleHandler:    newCapsuleHandler(db.CapsuleRepo()),
		archiveHandler:    newArchiveHandler(db.ArchiveRepo()),
	}
}
