package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/locallibrary/catalog/pkg/auth"
	"github.com/locallibrary/catalog/pkg/config"
	"github.com/locallibrary/catalog/pkg/database"
	"github.com/locallibrary/catalog/pkg/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type client struct {
	t *testing.T
	e *echo.Echo
}

func newClient(t *testing.T) *client {
	t.Helper()

	cfg := config.NewForTest()
	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	e, err := NewEcho(cfg, db)
	require.NoError(t, err)

	return &client{t: t, e: e}
}

func (cl *client) do(method, path, body string, key string) *httptest.ResponseRecorder {
	cl.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if key != "" {
		req.Header.Set(auth.HeaderAPIKey, key)
	}
	rec := httptest.NewRecorder()
	cl.e.ServeHTTP(rec, req)
	return rec
}

func (cl *client) write(method, path, body string) *httptest.ResponseRecorder {
	return cl.do(method, path, body, "test-api-key")
}

func TestHello(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(http.MethodGet, "/hello", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"Hello world"`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	cl := newClient(t)

	rec := cl.do(http.MethodGet, "/shelves", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found.")
}

func TestAustenScenario(t *testing.T) {
	cl := newClient(t)

	rec := cl.write(http.MethodPost, "/authors", `{"first_name": "Jane", "last_name": "Austen"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id": 1, "first_name": "Jane", "last_name": "Austen", "date_of_birth": null, "date_of_death": null}`, rec.Body.String())

	rec = cl.write(http.MethodPost, "/genres", `{"name": "Fiction"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id": 1, "name": "Fiction"}`, rec.Body.String())

	rec = cl.write(http.MethodPost, "/languages", `{"name": "English"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id": 1, "name": "English"}`, rec.Body.String())

	rec = cl.write(http.MethodPost, "/books", `{"title": "Emma", "author_id": 1, "summary": "...", "isbn": "123", "genre_ids": [1], "language_id": 1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"id": 1, "title": "Emma", "author_id": 1, "summary": "...", "isbn": "123", "genre_ids": [1], "language_id": 1}`, rec.Body.String())

	rec = cl.write(http.MethodPost, "/bookinstances", `{"book_id": 1, "imprint": "Penguin 2020", "status": "available"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var instance struct {
		ID      string  `json:"id"`
		Status  string  `json:"status"`
		DueBack *string `json:"due_back"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &instance))
	assert.NotEmpty(t, instance.ID)
	assert.Equal(t, "available", instance.Status)
	assert.Nil(t, instance.DueBack)

	rec = cl.do(http.MethodGet, "/bookinstances", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), instance.ID)

	rec = cl.write(http.MethodDelete, "/bookinstances/"+instance.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true}`, rec.Body.String())

	rec = cl.do(http.MethodGet, "/bookinstances/"+instance.ID, "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenreDeleteDetachesFromBook(t *testing.T) {
	cl := newClient(t)

	require.Equal(t, http.StatusCreated, cl.write(http.MethodPost, "/authors", `{"first_name": "Jane", "last_name": "Austen"}`).Code)
	require.Equal(t, http.StatusCreated, cl.write(http.MethodPost, "/genres", `{"name": "Fiction"}`).Code)
	require.Equal(t, http.StatusCreated, cl.write(http.MethodPost, "/genres", `{"name": "Romance"}`).Code)
	require.Equal(t, http.StatusCreated, cl.write(http.MethodPost, "/languages", `{"name": "English"}`).Code)
	require.Equal(t, http.StatusCreated, cl.write(http.MethodPost, "/books", `{"title": "Emma", "author_id": 1, "isbn": "123", "genre_ids": [1, 2], "language_id": 1}`).Code)

	rec := cl.write(http.MethodDelete, "/genres/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = cl.do(http.MethodGet, "/books/1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"genre_ids":[2]`)
}

func TestMutationsWithoutCredentialChangeNothing(t *testing.T) {
	cl := newClient(t)

	for _, tc := range []struct {
		method, path, body string
	}{
		{http.MethodPost, "/authors", `{"first_name": "Jane", "last_name": "Austen"}`},
		{http.MethodPost, "/genres", `{"name": "Fiction"}`},
		{http.MethodPost, "/languages", `{"name": "English"}`},
		{http.MethodPost, "/books", `{}`},
		{http.MethodPost, "/bookinstances", `{}`},
	} {
		for _, key := range []string{"", "wrong"} {
			rec := cl.do(tc.method, tc.path, tc.body, key)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, tc.path)
		}

		rec := cl.do(http.MethodGet, tc.path, "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String(), tc.path)
	}
}

func TestJWTMode(t *testing.T) {
	cfg := config.NewForTest()
	cfg.AuthMode = config.AuthModeJWT
	cfg.JWTSecret = "signing-secret"

	db, err := database.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	e, err := NewEcho(cfg, db)
	require.NoError(t, err)
	cl := &client{t: t, e: e}

	rec := cl.do(http.MethodPost, "/genres", `{"name": "Fiction"}`, "test-api-key")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := auth.IssueToken("signing-secret", "librarian", 0)
	require.NoError(t, err)
	rec = cl.do(http.MethodPost, "/genres", `{"name": "Fiction"}`, token)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}
