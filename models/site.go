package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SingletonKey is the constant key every singleton row carries. The unique
// index on it makes a second insert fail atomically at the store, so two
// concurrent creators can never both commit.
const SingletonKey = "default"

// SiteConfig is the singleton site-wide configuration row.
type SiteConfig struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SingletonKey string    `json:"-" gorm:"column:singleton_key;type:text;not null;uniqueIndex"`
	SiteName     string    `json:"siteName" gorm:"column:nombre_sitio;type:text;not null"`
	Subtitle     string    `json:"subtitle,omitempty" gorm:"column:subtitulo;type:text"`
	Description  string    `json:"description,omitempty" gorm:"column:descripcion;type:text"`
	TickerText   string    `json:"tickerText,omitempty" gorm:"column:ticker_texto;type:text"`
	ContactEmail string    `json:"contactEmail,omitempty" gorm:"column:email_contacto;type:text"`
	Location     string    `json:"location,omitempty" gorm:"column:ubicacion;type:text"`
	Twitter      string    `json:"twitter,omitempty" gorm:"column:twitter;type:text"`
	LinkedIn     string    `json:"linkedin,omitempty" gorm:"column:linkedin;type:text"`
	YouTube      string    `json:"youtube,omitempty" gorm:"column:youtube;type:text"`
	Instagram    string    `json:"instagram,omitempty" gorm:"column:instagram;type:text"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"column:fecha_actualizacion"`
}

func (SiteConfig) TableName() string { return "configuracion_sitio" }

func (c *SiteConfig) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.SingletonKey = SingletonKey
	return nil
}

// AuthorProfile is the singleton sidebar profile used by the
// single-columnist deployment mode.
type AuthorProfile struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SingletonKey string    `json:"-" gorm:"column:singleton_key;type:text;not null;uniqueIndex"`
	Honorific    string    `json:"honorific,omitempty" gorm:"column:titulo;type:varchar(180)"`
	Name         string    `json:"name" gorm:"column:nombre;type:varchar(200);not null"`
	Description  string    `json:"description,omitempty" gorm:"column:descripcion;type:text"`
	Signature    string    `json:"signature,omitempty" gorm:"column:firma;type:varchar(100)"`
	Photo        string    `json:"photo,omitempty" gorm:"column:foto;type:text"`
}

func (AuthorProfile) TableName() string { return "perfil_autor" }

func (p *AuthorProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.SingletonKey = SingletonKey
	return nil
}

// FullName joins the honorific and the name for display.
func (p AuthorProfile) FullName() string {
	if p.Honorific == "" {
		return p.Name
	}
	return p.Honorific + " " + p.Name
}

// SubscriptionSection is the singleton copy block for the subscribe banner.
type SubscriptionSection struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SingletonKey string    `json:"-" gorm:"column:singleton_key;type:text;not null;uniqueIndex"`
	Title        string    `json:"title" gorm:"column:titulo;type:text;not null"`
	Text         string    `json:"text,omitempty" gorm:"column:texto;type:text"`
	ButtonLabel  string    `json:"buttonLabel,omitempty" gorm:"column:texto_boton;type:text"`
	Active       bool      `json:"active" gorm:"column:activo;not null;default:true"`
}

func (SubscriptionSection) TableName() string { return "seccion_suscripcion" }

func (s *SubscriptionSection) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.SingletonKey = SingletonKey
	return nil
}
