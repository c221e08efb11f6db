package database

import (
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

type Database struct {
	categoryRepo   *CategoryRepo
	authorRepo     *AuthorRepo
	articleRepo    *ArticleRepo
	pullQuoteRepo  *PullQuoteRepo
	commentRepo    *CommentRepo
	subscriberRepo *SubscriberRepo
	capsuleRepo    *CapsuleRepo
	siteRepo       *SiteRepo
	displayRepo    *DisplayRepo
	archiveRepo    *ArchiveRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		categoryRepo:   NewCategoryRepo(db),
		authorRepo:     NewAuthorRepo(db),
		articleRepo:    NewArticleRepo(db),
		pullQuoteRepo:  NewPullQuoteRepo(db),
		commentRepo:    NewCommentRepo(db),
		subscriberRepo: NewSubscriberRepo(db),
		capsuleRepo:    NewCapsuleRepo(db),
		siteRepo:       NewSiteRepo(db),
		displayRepo:    NewDisplayRepo(db),
		archiveRepo:    NewArchiveRepo(db),
	}
}

// AutoMigrate creates or updates every table the entity store persists.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Author{},
		&models.Article{},
		&models.PullQuote{},
		&models.Comment{},
		&models.Subscriber{},
		&models.Capsule{},
		&models.SiteConfig{},
		&models.AuthorProfile{},
		&models.SubscriptionSection{},
		&models.TickerItem{},
		&models.SocialLink{},
		&models.ColumnArchive{},
	)
}

// Accessor methods for each repository

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) AuthorRepo() *AuthorRepo {
	return d.authorRepo
}

func (d Database) ArticleRepo() *ArticleRepo {
	return d.articleRepo
}

func (d Database) PullQuoteRepo() *PullQuoteRepo {
	return d.pullQuoteRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) SubscriberRepo() *SubscriberRepo {
	return d.subscriberRepo
}

func (d Database) CapsuleRepo() *CapsuleRepo {
	return d.capsuleRepo
}

func (d Database) SiteRepo() *SiteRepo {
	return d.siteRepo
}

func (d Database) DisplayRepo() *DisplayRepo {
	return d.displayRepo
}

func (d Database) ArchiveRepo() *ArchiveRepo {
	return d.archiveRepo
}
