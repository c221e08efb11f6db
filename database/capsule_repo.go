package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/models"
)

type CapsuleRepo struct {
	db *gorm.DB
}

func NewCapsuleRepo(db *gorm.DB) *CapsuleRepo {
	return &CapsuleRepo{db}
}

// ActiveOrdered returns the active capsules, lowest order first, newest
// breaking ties.
func (r *CapsuleRepo) ActiveOrdered() ([]models.Capsule, error) {
	var capsules []models.Capsule
	err := r.db.Where("activo = ?", true).
		Order("orden ASC, fecha_creacion DESC").
		Find(&capsules).Error
	return capsules, err
}

func (r *CapsuleRepo) FindAll() ([]models.Capsule, error) {
	var capsules []models.Capsule
	err := r.db.Order("orden ASC, fecha_creacion DESC").Find(&capsules).Error
	return capsules, err
}

// Add inserts a capsule, enforcing the system-wide cap. The count and the
// insert run in one serializable transaction so two concurrent creators
// cannot both commit a row past the cap.
func (r *CapsuleRepo) Add(capsule *models.Capsule) error {
	if len(capsule.Body) > 500 {
		return errs.BadRequestWithField("capsule body exceeds 500 characters", "body")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Capsule{}).Count(&count).Error; err != nil {
			return err
		}
		if count >= models.MaxCapsules {
			return errs.ConstraintViolation(
				fmt.Sprintf("at most %d capsules may exist", models.MaxCapsules))
		}
		return tx.Create(capsule).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *CapsuleRepo) Update(capsule *models.Capsule) error {
	if len(capsule.Body) > 500 {
		return errs.BadRequestWithField("capsule body exceeds 500 characters", "body")
	}
	return r.db.Save(capsule).Error
}

func (r *CapsuleRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Capsule{}, "id = ?", id).Error
}
