package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sergiorueda9090/camilo/database"
	"github.com/sergiorueda9090/camilo/models"
)

const testAdminSecret = "test-secret"

func newTestServer(t *testing.T) (http.Handler, database.Database) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(db))

	d := database.New(db)
	handler := newRouter(d, withConfig(map[string]string{
		"ADMIN_TOKEN_SECRET": testAdminSecret,
	}))
	return handler, d
}

func seedPublished(t *testing.T, d database.Database, title string, publishedAt time.Time) models.Article {
	t.Helper()
	author := models.Author{Name: "Autor de " + title}
	require.NoError(t, d.AuthorRepo().Add(&author))
	at := publishedAt
	article := models.Article{
		Title:       title,
		Body:        "contenido",
		AuthorID:    author.ID,
		Status:      models.StatusPublished,
		PublishedAt: &at,
		CreatedAt:   at,
	}
	require.NoError(t, d.ArticleRepo().Add(&article))
	return article
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, mutate ...func(*http.Request)) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, m := range mutate {
		m(req)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func withSession(id string) func(*http.Request) {
	return func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: sessionCookie, Value: id})
	}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "editor",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testAdminSecret))
	require.NoError(t, err)
	return token
}

func asAdmin(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func TestGetArticleIncrementsViews(t *testing.T) {
	handler, d := newTestServer(t)
	article := seedPublished(t, d, "Columna vista", time.Now().UTC())

	rec, body := doJSON(t, handler, http.MethodGet, "/article/"+article.Slug, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := body["article"].(map[string]any)
	assert.Equal(t, float64(1), detail["views"])

	rec, body = doJSON(t, handler, http.MethodGet, "/article/"+article.Slug, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail = body["article"].(map[string]any)
	assert.Equal(t, float64(2), detail["views"])
}

func TestGetArticleNotFound(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, body := doJSON(t, handler, http.MethodGet, "/article/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "error", body["status"])
}

func TestGetArticleHidesDrafts(t *testing.T) {
	handler, d := newTestServer(t)
	author := models.Author{Name: "Autor"}
	require.NoError(t, d.AuthorRepo().Add(&author))
	draft := models.Article{Title: "Borrador", Body: "contenido", AuthorID: author.ID, Status: models.StatusDraft}
	require.NoError(t, d.ArticleRepo().Add(&draft))

	rec, _ := doJSON(t, handler, http.MethodGet, "/article/"+draft.Slug, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHomePayload(t *testing.T) {
	handler, d := newTestServer(t)
	base := time.Now().UTC()
	seedPublished(t, d, "Columna vieja", base.Add(-2*time.Hour))
	latest := seedPublished(t, d, "Columna nueva", base)

	rec, body := doJSON(t, handler, http.MethodGet, "/home", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	featured := body["featured"].(map[string]any)
	assert.Equal(t, latest.Slug, featured["slug"])

	archive := body["archive"].([]any)
	require.Len(t, archive, 1)
	first := archive[0].(map[string]any)
	assert.Equal(t, "columna-vieja", first["slug"])
}

func TestSubmitCommentEchoFlow(t *testing.T) {
	handler, d := newTestServer(t)
	article := seedPublished(t, d, "Columna comentable", time.Now().UTC())

	session := withSession("session-echo")
	rec, body := doJSON(t, handler, http.MethodPost, "/article/"+article.Slug+"/comments", map[string]string{
		"email": "desconocido@example.com",
		"text":  "mi opinión",
	}, session)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "not_authorized", body["reason"])

	// The next detail render for the same session carries the echo once.
	rec, body = doJSON(t, handler, http.MethodGet, "/article/"+article.Slug, nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	echo, ok := body["echo"].(map[string]any)
	require.True(t, ok, "expected echo in first render after rejection")
	assert.Equal(t, "mi opinión", echo["text"])
	assert.Equal(t, "desconocido@example.com", echo["email"])

	rec, body = doJSON(t, handler, http.MethodGet, "/article/"+article.Slug, nil, session)
	require.Equal(t, http.StatusOK, rec.Code)
	_, ok = body["echo"]
	assert.False(t, ok, "echo must be read-once")

	// A different session never sees it.
	_, body = doJSON(t, handler, http.MethodGet, "/article/"+article.Slug, nil, withSession("other"))
	_, ok = body["echo"]
	assert.False(t, ok)
}

func TestSubmitCommentFromActiveSubscriber(t *testing.T) {
	handler, d := newTestServer(t)
	article := seedPublished(t, d, "Columna comentable", time.Now().UTC())

	sub, _, err := d.SubscriberRepo().LookupOrCreate("lector@example.com", "Lector")
	require.NoError(t, err)
	_, err = d.SubscriberRepo().SetActive([]uuid.UUID{sub.ID}, true)
	require.NoError(t, err)

	rec, body := doJSON(t, handler, http.MethodPost, "/article/"+article.Slug+"/comments", map[string]string{
		"email": "lector@example.com",
		"text":  "gran columna",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])

	_, body = doJSON(t, handler, http.MethodGet, "/article/"+article.Slug, nil)
	comments := body["comments"].([]any)
	require.Len(t, comments, 1)
}

func TestRegisterSubscriberUniform(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, body := doJSON(t, handler, http.MethodPost, "/subscribers", map[string]string{
		"email": "lector@example.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, body["created"])

	rec, body = doJSON(t, handler, http.MethodPost, "/subscribers", map[string]string{
		"email": "lector@example.com",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, body["created"])
}

func TestAdminRequiresBearerToken(t *testing.T) {
	handler, _ := newTestServer(t)

	rec, _ := doJSON(t, handler, http.MethodGet, "/admin/articles", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, handler, http.MethodGet, "/admin/articles", nil, asAdmin("garbage"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = doJSON(t, handler, http.MethodGet, "/admin/articles", nil, asAdmin(adminToken(t)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminCapsuleCapOverHTTP(t *testing.T) {
	handler, _ := newTestServer(t)
	token := adminToken(t)

	for i := 0; i < models.MaxCapsules; i++ {
		rec, _ := doJSON(t, handler, http.MethodPost, "/admin/capsule", map[string]any{
			"title": "Cápsula",
			"body":  "texto",
			"order": i,
		}, asAdmin(token))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, body := doJSON(t, handler, http.MethodPost, "/admin/capsule", map[string]any{
		"title": "Una de más",
		"body":  "texto",
	}, asAdmin(token))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "error", body["status"])
}

func TestAdminUpdateKeepsSlugOnRename(t *testing.T) {
	handler, d := newTestServer(t)
	article := seedPublished(t, d, "Columna original", time.Now().UTC())
	token := adminToken(t)

	rec, body := doJSON(t, handler, http.MethodPut, "/admin/article/"+article.ID.String(), map[string]any{
		"title":    "Columna renombrada",
		"body":     article.Body,
		"authorId": article.AuthorID.String(),
		"status":   "published",
	}, asAdmin(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, article.Slug, body["slug"])

	// Still reachable under its original address.
	got, err := d.ArticleRepo().FindBySlug(article.Slug)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Columna renombrada", got.Title)
	assert.NotEmpty(t, got.Slug)

	// An explicit new slug in the payload does move it.
	rec, body = doJSON(t, handler, http.MethodPut, "/admin/article/"+article.ID.String(), map[string]any{
		"title":    "Columna renombrada",
		"slug":     "direccion-nueva",
		"body":     article.Body,
		"authorId": article.AuthorID.String(),
		"status":   "published",
	}, asAdmin(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "direccion-nueva", body["slug"])

	got, err = d.ArticleRepo().FindBySlug("direccion-nueva")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestAdminDisplayListUpdates(t *testing.T) {
	handler, _ := newTestServer(t)
	token := adminToken(t)

	rec, body := doJSON(t, handler, http.MethodPost, "/admin/ticker-item", map[string]any{
		"text": "Nueva columna cada lunes",
	}, asAdmin(token))
	require.Equal(t, http.StatusCreated, rec.Code)
	itemID := body["id"].(string)

	rec, body = doJSON(t, handler, http.MethodPut, "/admin/ticker-item/"+itemID, map[string]any{
		"text":  "Nueva columna cada viernes",
		"order": 2,
	}, asAdmin(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Nueva columna cada viernes", body["text"])

	rec, body = doJSON(t, handler, http.MethodPost, "/admin/social-link", map[string]any{
		"name": "Twitter",
		"url":  "https://twitter.com/columna",
	}, asAdmin(token))
	require.Equal(t, http.StatusCreated, rec.Code)
	linkID := body["id"].(string)

	rec, body = doJSON(t, handler, http.MethodPut, "/admin/social-link/"+linkID, map[string]any{
		"name": "YouTube",
		"url":  "https://youtube.com/@columna",
	}, asAdmin(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "YouTube", body["name"])

	rec, body = doJSON(t, handler, http.MethodPost, "/admin/archive-column", map[string]any{
		"title": "Columna externa",
		"date":  "2019-05-01T00:00:00Z",
	}, asAdmin(token))
	require.Equal(t, http.StatusCreated, rec.Code)
	entryID := body["id"].(string)

	rec, body = doJSON(t, handler, http.MethodPut, "/admin/archive-column/"+entryID, map[string]any{
		"title": "Columna externa corregida",
		"date":  "2019-05-01T00:00:00Z",
		"url":   "https://diario.example.com/columna",
	}, asAdmin(token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Columna externa corregida", body["title"])
}

func TestAdminSingletonCreateOnce(t *testing.T) {
	handler, _ := newTestServer(t)
	token := adminToken(t)

	rec, _ := doJSON(t, handler, http.MethodPost, "/admin/author-profile", map[string]string{
		"name": "Camilo",
	}, asAdmin(token))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = doJSON(t, handler, http.MethodPost, "/admin/author-profile", map[string]string{
		"name": "Otro",
	}, asAdmin(token))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
