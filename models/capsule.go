package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxCapsules caps how many capsules may exist system-wide, active or not.
const MaxCapsules = 5

// Capsule is a short sidebar item. The cap is enforced at creation inside a
// serializable transaction, see database.CapsuleRepo.
type Capsule struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"column:titulo;type:varchar(200);not null"`
	Body      string    `json:"body" gorm:"column:contenido;type:varchar(500);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:fecha_creacion;<-:create"`
	Order     int       `json:"order" gorm:"column:orden;not null;default:0"`
	Active    bool      `json:"active" gorm:"column:activo;not null;default:true"`
}

func (Capsule) TableName() string { return "capsulas" }

func (c *Capsule) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
