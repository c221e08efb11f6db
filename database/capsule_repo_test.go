package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergiorueda9090/camilo/errs"
	"github.com/sergiorueda9090/camilo/models"
)

func TestCapsuleCap(t *testing.T) {
	d := newTestDB(t)
	repo := d.CapsuleRepo()

	for i := 0; i < models.MaxCapsules; i++ {
		capsule := models.Capsule{Title: fmt.Sprintf("Cápsula %d", i), Body: "texto"}
		require.NoError(t, repo.Add(&capsule))
	}

	extra := models.Capsule{Title: "Una de más", Body: "texto"}
	err := repo.Add(&extra)
	require.Error(t, err)
	assert.True(t, errs.IsConstraintViolation(err))

	// Deleting one frees a slot.
	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, models.MaxCapsules)
	require.NoError(t, repo.Delete(all[0].ID))

	assert.NoError(t, repo.Add(&extra))
}

func TestCapsuleCapCountsInactive(t *testing.T) {
	d := newTestDB(t)
	repo := d.CapsuleRepo()

	for i := 0; i < models.MaxCapsules; i++ {
		capsule := models.Capsule{Title: fmt.Sprintf("Cápsula %d", i), Body: "texto"}
		require.NoError(t, repo.Add(&capsule))
		if i%2 == 0 {
			capsule.Active = false
			require.NoError(t, repo.Update(&capsule))
		}
	}

	extra := models.Capsule{Title: "Una de más", Body: "texto"}
	assert.True(t, errs.IsConstraintViolation(repo.Add(&extra)))
}

func TestCapsuleBodyLimit(t *testing.T) {
	d := newTestDB(t)
	repo := d.CapsuleRepo()

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	capsule := models.Capsule{Title: "Demasiado larga", Body: string(long)}
	err := repo.Add(&capsule)
	require.Error(t, err)

	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "body", apiErr.Field)
}

func TestActiveOrdered(t *testing.T) {
	d := newTestDB(t)
	repo := d.CapsuleRepo()

	second := models.Capsule{Title: "Segunda", Body: "texto", Order: 2}
	first := models.Capsule{Title: "Primera", Body: "texto", Order: 1}
	hidden := models.Capsule{Title: "Oculta", Body: "texto"}
	require.NoError(t, repo.Add(&second))
	require.NoError(t, repo.Add(&first))
	require.NoError(t, repo.Add(&hidden))
	hidden.Active = false
	require.NoError(t, repo.Update(&hidden))

	active, err := repo.ActiveOrdered()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, second.ID, active[1].ID)
}
