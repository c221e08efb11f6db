package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TickerItem is one entry of the scrolling headline strip. No cardinality
// cap, ordered by Order then newest first.
type TickerItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Text      string    `json:"text" gorm:"column:texto;type:text;not null"`
	Order     int       `json:"order" gorm:"column:orden;not null;default:0"`
	Active    bool      `json:"active" gorm:"column:activo;not null;default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:fecha_creacion;<-:create"`
}

func (TickerItem) TableName() string { return "ticker_items" }

func (t *TickerItem) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// SocialLink is one entry of the site-wide social navigation list.
type SocialLink struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name   string    `json:"name" gorm:"column:nombre;type:text;not null"`
	URL    string    `json:"url" gorm:"column:url;type:text;not null"`
	Icon   string    `json:"icon,omitempty" gorm:"column:icono;type:text"`
	Order  int       `json:"order" gorm:"column:orden;not null;default:0"`
	Active bool      `json:"active" gorm:"column:activo;not null;default:true"`
}

func (SocialLink) TableName() string { return "redes_sociales" }

func (l *SocialLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// ColumnArchive is an external back-catalog entry: a column published
// elsewhere before the site existed, listed newest first.
type ColumnArchive struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"column:titulo;type:text;not null"`
	Date        time.Time `json:"date" gorm:"column:fecha;not null"`
	Description string    `json:"description,omitempty" gorm:"column:descripcion;type:text"`
	URL         string    `json:"url,omitempty" gorm:"column:url;type:text"`
}

func (ColumnArchive) TableName() string { return "archivo_columnas" }

func (c *ColumnArchive) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
