package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/errs"
)

// Category groups articles under a display label. Deleting a category never
// deletes its articles; the foreign key nulls out their reference instead.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"column:nombre;type:text;not null;uniqueIndex"`
	Slug      string    `json:"slug" gorm:"column:slug;type:text;not null;uniqueIndex"`
	Order     int       `json:"order" gorm:"column:orden;not null;default:0"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:fecha_creacion;<-:create"`

	Articles []Article `json:"articles,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

func (Category) TableName() string { return "categorias" }

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}
	if c.Slug == "" {
		return errs.BadRequestWithField("no slug can be derived from the name", "slug")
	}
	return nil
}
