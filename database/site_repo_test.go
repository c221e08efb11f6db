package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/models"
)

func TestGetOrInitConfigMaterializesDefault(t *testing.T) {
	d := newTestDB(t)
	repo := d.SiteRepo()

	cfg, err := repo.GetOrInitConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "Columna", cfg.SiteName)

	// A second read returns the same row, not a new one.
	again, err := repo.GetOrInitConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg.ID, again.ID)
}

func TestSecondConfigRejected(t *testing.T) {
	d := newTestDB(t)
	repo := d.SiteRepo()

	first := models.SiteConfig{SiteName: "Columna"}
	require.NoError(t, repo.CreateConfig(&first))

	second := models.SiteConfig{SiteName: "Otra"}
	err := repo.CreateConfig(&second)
	require.Error(t, err)
	assert.True(t, errs.IsConstraintViolation(errs.FromDB("create", "site config", err)))
}

func TestProfileSingleton(t *testing.T) {
	d := newTestDB(t)
	repo := d.SiteRepo()

	// Nil until an administrator creates it.
	profile, err := repo.GetProfile()
	require.NoError(t, err)
	assert.Nil(t, profile)

	created := models.AuthorProfile{Honorific: "Dr.", Name: "Camilo"}
	require.NoError(t, repo.CreateProfile(&created))

	profile, err = repo.GetProfile()
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "Dr. Camilo", profile.FullName())

	dup := models.AuthorProfile{Name: "Otro"}
	err = repo.CreateProfile(&dup)
	require.Error(t, err)
	assert.True(t, errs.IsConstraintViolation(errs.FromDB("create", "author profile", err)))
}

func TestSubscriptionSectionSingleton(t *testing.T) {
	d := newTestDB(t)
	repo := d.SiteRepo()

	section, err := repo.GetSubscriptionSection()
	require.NoError(t, err)
	assert.Nil(t, section)

	created := models.SubscriptionSection{Title: "Suscríbete"}
	require.NoError(t, repo.CreateSubscriptionSection(&created))

	dup := models.SubscriptionSection{Title: "Otra"}
	err = repo.CreateSubscriptionSection(&dup)
	require.Error(t, err)
	assert.True(t, errs.IsConstraintViolation(errs.FromDB("create", "subscription section", err)))

	// Updating the existing row is allowed.
	created.Title = "Suscríbete hoy"
	require.NoError(t, repo.UpdateSubscriptionSection(&created))
	section, err = repo.GetSubscriptionSection()
	require.NoError(t, err)
	require.NotNil(t, section)
	assert.Equal(t, "Suscríbete hoy", section.Title)
}
