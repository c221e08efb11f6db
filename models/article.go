package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/errs"
)

// ArticleStatus is the lifecycle state of an article. Only published
// articles are visible on the read path.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusInReview  ArticleStatus = "in_review"
	StatusPublished ArticleStatus = "published"
)

// readingTimePlaceholder is the column default carried over from the legacy
// schema. A stored value of 0 or the placeholder means "not yet computed".
const readingTimePlaceholder = 5

// Article is a long-form column entry. It owns its pull-quotes and comments
// (cascade on delete) and holds weak references to its author and category.
type Article struct {
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Title           string        `json:"title" gorm:"column:titulo;type:text;not null"`
	Slug            string        `json:"slug" gorm:"column:slug;type:text;not null;uniqueIndex"`
	Subtitle        string        `json:"subtitle,omitempty" gorm:"column:subtitulo;type:text"`
	Body            string        `json:"body" gorm:"column:contenido;type:text;not null"`
	Excerpt         string        `json:"excerpt,omitempty" gorm:"column:extracto;type:text"`
	Image           string        `json:"image,omitempty" gorm:"column:imagen_destacada;type:text"`
	ImageURL        string        `json:"imageUrl,omitempty" gorm:"column:imagen_url;type:text"`
	ImageCaption    string        `json:"imageCaption,omitempty" gorm:"column:pie_imagen;type:text"`
	MetaDescription string        `json:"metaDescription,omitempty" gorm:"column:meta_descripcion;type:varchar(160)"`
	MetaKeywords    string        `json:"metaKeywords,omitempty" gorm:"column:meta_keywords;type:text"`
	OgImage         string        `json:"ogImage,omitempty" gorm:"column:og_image;type:text"`
	AuthorID        uuid.UUID     `json:"authorId" gorm:"column:autor_id;type:uuid;not null"`
	Author          *Author       `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CategoryID      *uuid.UUID    `json:"categoryId,omitempty" gorm:"column:categoria_id;type:uuid"`
	Category        *Category     `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	PublishedAt     *time.Time    `json:"publishedAt,omitempty" gorm:"column:fecha_publicacion"`
	CreatedAt       time.Time     `json:"createdAt" gorm:"column:fecha_creacion;<-:create"`
	UpdatedAt       time.Time     `json:"updatedAt" gorm:"column:fecha_actualizacion"`
	ReadingTime     int           `json:"readingTime" gorm:"column:tiempo_lectura;not null;default:5"`
	Views           int64         `json:"views" gorm:"column:vistas;not null;default:0"`
	Status          ArticleStatus `json:"status" gorm:"column:estado;type:text;not null;default:draft"`
	Featured        bool          `json:"featured" gorm:"column:destacado;not null;default:false"`

	PullQuotes []PullQuote `json:"pullQuotes,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	Comments   []Comment   `json:"comments,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

func (Article) TableName() string { return "articulos" }

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if a.Slug == "" {
		return errs.BadRequestWithField("no slug can be derived from the title", "slug")
	}
	return nil
}

// BeforeSave recomputes the reading time while the stored value is still the
// placeholder. A hand-set value survives later body edits.
func (a *Article) BeforeSave(tx *gorm.DB) error {
	if a.ReadingTime == 0 || a.ReadingTime == readingTimePlaceholder {
		a.ReadingTime = EstimateReadingTime(a.Body)
	}
	return nil
}

// EstimateReadingTime counts whitespace-delimited words at 200 per minute,
// never reporting less than one minute.
func EstimateReadingTime(body string) int {
	minutes := len(strings.Fields(body)) / 200
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Published reports whether the article is visible on the read path.
func (a Article) Published() bool {
	return a.Status == StatusPublished
}
