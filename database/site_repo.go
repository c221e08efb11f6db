package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sergiorueda9090/camilo/models"
)

// SiteRepo holds the three singleton rows. Each is keyed by the constant
// singleton key with a unique index, so a second create is rejected by the
// store itself and no delete operation is exposed.
type SiteRepo struct {
	db *gorm.DB
}

func NewSiteRepo(db *gorm.DB) *SiteRepo {
	return &SiteRepo{db}
}

// GetOrInitConfig returns the site configuration, materializing a default
// row on first read so the read path never sees empty config.
func (r *SiteRepo) GetOrInitConfig() (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := r.db.Where(models.SiteConfig{SingletonKey: models.SingletonKey}).
		Attrs(models.SiteConfig{SiteName: "Columna"}).
		FirstOrCreate(&cfg).Error
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *SiteRepo) CreateConfig(cfg *models.SiteConfig) error {
	return r.db.Create(cfg).Error
}

func (r *SiteRepo) UpdateConfig(cfg *models.SiteConfig) error {
	return r.db.Save(cfg).Error
}

// GetProfile returns the singleton author profile, or nil before an
// administrator creates it.
func (r *SiteRepo) GetProfile() (*models.AuthorProfile, error) {
	var profile models.AuthorProfile
	err := r.db.First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *SiteRepo) CreateProfile(profile *models.AuthorProfile) error {
	return r.db.Create(profile).Error
}

func (r *SiteRepo) UpdateProfile(profile *models.AuthorProfile) error {
	return r.db.Save(profile).Error
}

// GetSubscriptionSection returns the singleton subscribe banner copy, or nil
// before an administrator creates it.
func (r *SiteRepo) GetSubscriptionSection() (*models.SubscriptionSection, error) {
	var section models.SubscriptionSection
	err := r.db.First(&section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SiteRepo) CreateSubscriptionSection(section *models.SubscriptionSection) error {
	return r.db.Create(section).Error
}

func (r *SiteRepo) UpdateSubscriptionSection(section *models.SubscriptionSection) error {
	return r.db.Save(section).Error
}
