package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscriber is a reader registered by email. An active subscriber is the
// authorization gate for comment submission in the subscriber-gated variant.
type Subscriber struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email             string    `json:"email" gorm:"column:email;type:text;not null;uniqueIndex"`
	Name              string    `json:"name,omitempty" gorm:"column:nombre;type:text"`
	SubscribedAt      time.Time `json:"subscribedAt" gorm:"column:fecha_suscripcion;<-:create"`
	Active            bool      `json:"active" gorm:"column:activo;not null;default:false"`
	Confirmed         bool      `json:"confirmed" gorm:"column:confirmado;not null;default:false"`
	ConfirmationToken string    `json:"-" gorm:"column:token_confirmacion;type:text;index"`
}

func (Subscriber) TableName() string { return "suscriptores" }

func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.ConfirmationToken == "" {
		s.ConfirmationToken = uuid.NewString()
	}
	return nil
}
