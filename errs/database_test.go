package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFromDBTranslation(t *testing.T) {
	cases := []struct {
		name   string
		cause  error
		status int
		check  func(error) bool
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, IsNotFound},
		{"postgres duplicate", errors.New(`duplicate key value violates unique constraint "idx_articulos_slug" (SQLSTATE 23505)`), http.StatusConflict, IsConstraintViolation},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: articulos.slug"), http.StatusConflict, IsConstraintViolation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := FromDB("create", "article", tc.cause)
			require.NotNil(t, apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.True(t, tc.check(apiErr))
		})
	}
}

func TestFromDBNilAndPassthrough(t *testing.T) {
	assert.Nil(t, FromDB("find", "article", nil))

	// An ApiErr raised below the store layer passes through untouched.
	original := ConstraintViolation("at most 5 capsules may exist")
	translated := FromDB("create", "capsule", original)
	assert.Same(t, original, translated)
}

func TestFromDBUnknownErrorIsInternal(t *testing.T) {
	apiErr := FromDB("find", "article", errors.New("disk on fire"))
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.True(t, errors.Is(apiErr, ErrDatabaseQuery))
}

func TestSentinelMatching(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("article")))
	assert.True(t, IsNotAuthorized(NotAuthorized("comment submission requires an active subscription")))
	assert.True(t, IsConstraintViolation(ConstraintViolation("slug already exists")))
	assert.False(t, IsNotFound(ConstraintViolation("slug already exists")))
}
