package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

type SubscriberRepo struct {
	db *gorm.DB
}

func NewSubscriberRepo(db *gorm.DB) *SubscriberRepo {
	return &SubscriberRepo{db}
}

// FindActiveByEmail resolves the comment-submission gate: only a subscriber
// marked active authorizes a comment. Returns nil when the email is unknown
// or not yet approved; callers must not distinguish the two.
func (r *SubscriberRepo) FindActiveByEmail(email string) (*models.Subscriber, error) {
	var sub models.Subscriber
	err := r.db.Where("email = ? AND activo = ?", normalizeEmail(email), true).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// LookupOrCreate registers an email, reporting whether a row was created.
// Idempotent: a concurrent duplicate insert loses against the unique index
// and falls back to the existing row.
func (r *SubscriberRepo) LookupOrCreate(email, name string) (*models.Subscriber, bool, error) {
	email = normalizeEmail(email)

	var existing models.Subscriber
	err := r.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	sub := models.Subscriber{Email: email, Name: name}
	if err := r.db.Create(&sub).Error; err != nil {
		// Lost a create race; the row is there now.
		if findErr := r.db.Where("email = ?", email).First(&existing).Error; findErr == nil {
			return &existing, false, nil
		}
		return nil, false, err
	}
	return &sub, true, nil
}

// ConfirmByToken marks the matching subscriber confirmed. Returns the number
// of rows matched; zero means the token is unknown.
func (r *SubscriberRepo) ConfirmByToken(token string) (int64, error) {
	if token == "" {
		return 0, nil
	}
	res := r.db.Model(&models.Subscriber{}).
		Where("token_confirmacion = ?", token).
		Update("confirmado", true)
	return res.RowsAffected, res.Error
}

// SetActive flips the approval flag on a selected set, mirroring the admin
// bulk activate/deactivate actions.
func (r *SubscriberRepo) SetActive(ids []uuid.UUID, active bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.Model(&models.Subscriber{}).
		Where("id IN ?", ids).
		Update("activo", active)
	return res.RowsAffected, res.Error
}

func (r *SubscriberRepo) FindAll() ([]models.Subscriber, error) {
	var subs []models.Subscriber
	err := r.db.Order("fecha_suscripcion DESC").Find(&subs).Error
	return subs, err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
