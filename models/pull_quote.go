package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PullQuote is a quotation rendered prominently inside an article's body.
type PullQuote struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ArticleID uuid.UUID `json:"articleId" gorm:"column:articulo_id;type:uuid;not null;index"`
	Article   *Article  `json:"-" gorm:"foreignKey:ArticleID"`
	Text      string    `json:"text" gorm:"column:texto;type:text;not null"`
	Speaker   string    `json:"speaker,omitempty" gorm:"column:autor_cita;type:text"`
	Order     int       `json:"order" gorm:"column:orden;not null;default:0"`
}

func (PullQuote) TableName() string { return "citas_destacadas" }

func (q *PullQuote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// DisplaySpeaker attributes the quote, falling back to the article's author
// when no speaker was recorded.
func (q PullQuote) DisplaySpeaker(author Author) string {
	if q.Speaker != "" {
		return q.Speaker
	}
	return author.FullName()
}
