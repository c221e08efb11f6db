package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment belongs to exactly one article and may reply to a parent comment
// within the same article. Deleting an article or a parent comment cascades.
type Comment struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	ArticleID    uuid.UUID   `json:"articleId" gorm:"column:articulo_id;type:uuid;not null;index"`
	Article      *Article    `json:"-" gorm:"foreignKey:ArticleID"`
	ParentID     *uuid.UUID  `json:"parentId,omitempty" gorm:"column:padre_id;type:uuid;index"`
	Parent       *Comment    `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	SubscriberID *uuid.UUID  `json:"subscriberId,omitempty" gorm:"column:suscriptor_id;type:uuid"`
	Subscriber   *Subscriber `json:"-" gorm:"foreignKey:SubscriberID"`
	Name         string      `json:"name" gorm:"column:nombre;type:text;not null"`
	Email        string      `json:"email" gorm:"column:email;type:text;not null"`
	Role         string      `json:"role,omitempty" gorm:"column:cargo;type:text"`
	Text         string      `json:"text" gorm:"column:texto;type:text;not null"`
	CreatedAt    time.Time   `json:"createdAt" gorm:"column:fecha_creacion;<-:create"`
	Approved     bool        `json:"approved" gorm:"column:aprobado;not null;default:false"`
	AuthorReply  bool        `json:"authorReply" gorm:"column:es_autor;not null;default:false"`
	HelpfulVotes int         `json:"helpfulVotes" gorm:"column:votos_utiles;not null;default:0"`
	IPAddress    string      `json:"-" gorm:"column:ip_address;type:text"`
}

func (Comment) TableName() string { return "comentarios" }

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
