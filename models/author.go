package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/errs"
)

// Author is a member of the columnist roster. In the single-columnist
// deployment exactly one author carries EsPrincipal and fronts the site.
type Author struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"column:nombre;type:text;not null"`
	Slug      string    `json:"slug" gorm:"column:slug;type:text;not null;uniqueIndex"`
	Honorific string    `json:"honorific,omitempty" gorm:"column:titulo;type:text"`
	Role      string    `json:"role,omitempty" gorm:"column:cargo;type:text"`
	Bio       string    `json:"bio,omitempty" gorm:"column:biografia;type:text"`
	ShortBio  string    `json:"shortBio,omitempty" gorm:"column:biografia_corta;type:text"`
	Signature string    `json:"signature,omitempty" gorm:"column:firma;type:text"`
	Photo     string    `json:"photo,omitempty" gorm:"column:foto;type:text"`
	Twitter   string    `json:"twitter,omitempty" gorm:"column:twitter;type:text"`
	LinkedIn  string    `json:"linkedin,omitempty" gorm:"column:linkedin;type:text"`
	YouTube   string    `json:"youtube,omitempty" gorm:"column:youtube;type:text"`
	Instagram string    `json:"instagram,omitempty" gorm:"column:instagram;type:text"`
	Email     string    `json:"email,omitempty" gorm:"column:email;type:text"`
	Principal bool      `json:"principal" gorm:"column:es_principal;not null;default:false"`
	Active    bool      `json:"active" gorm:"column:activo;not null;default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:fecha_creacion;<-:create"`
}

func (Author) TableName() string { return "autores" }

func (a *Author) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Slug == "" {
		a.Slug = Slugify(a.Name)
	}
	if a.Slug == "" {
		return errs.BadRequestWithField("no slug can be derived from the name", "slug")
	}
	return nil
}

// FullName joins the honorific and the name for display.
func (a Author) FullName() string {
	if a.Honorific == "" {
		return a.Name
	}
	return a.Honorific + " " + a.Name
}
