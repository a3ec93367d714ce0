package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-backend/internal/domains/author/model"
	"cms-backend/internal/shared/apperror"
)

type fakeService struct {
	create  func(req *model.CreateAuthorRequest) (*model.Author, error)
	getByID func(id int64) (*model.Author, error)
	list    func(filter model.AuthorFilter) ([]model.Author, int64, error)
	update  func(id int64, req *model.UpdateAuthorRequest) (*model.Author, error)
	delete  func(id int64) error
}

func (f *fakeService) Create(_ context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	return f.create(req)
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*model.Author, error) {
	return f.getByID(id)
}

func (f *fakeService) List(_ context.Context, filter model.AuthorFilter) ([]model.Author, int64, error) {
	return f.list(filter)
}

func (f *fakeService) Update(_ context.Context, id int64, req *model.UpdateAuthorRequest) (*model.Author, error) {
	return f.update(id, req)
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	return f.delete(id)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *struct {
		Limit  int   `json:"limit"`
		Offset int   `json:"offset"`
		Total  int64 `json:"total"`
	} `json:"meta"`
}

func newRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthorHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateAuthor(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeService{create: func(req *model.CreateAuthorRequest) (*model.Author, error) {
			return &model.Author{ID: 1, Name: req.Name, PhoneNumber: req.PhoneNumber}, nil
		}}

		w, env := do(t, newRouter(svc), http.MethodPost, "/api/v1/authors", `{"name":"Jane Doe","phone_number":"5551234567"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, env.Success)

		var data model.AuthorResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Jane Doe", data.Name)
		assert.Equal(t, "5551234567", *data.PhoneNumber)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := &fakeService{create: func(*model.CreateAuthorRequest) (*model.Author, error) {
			return nil, model.NameTakenError()
		}}

		w, env := do(t, newRouter(svc), http.MethodPost, "/api/v1/authors", `{"name":"Jane Doe"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, model.MsgNameTaken, env.Error.Message)
		assert.Equal(t, model.MsgNameTaken, env.Error.Details[model.FieldName])
	})

	t.Run("malformed body", func(t *testing.T) {
		w, env := do(t, newRouter(&fakeService{}), http.MethodPost, "/api/v1/authors", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, env.Success)
	})
}

func TestGetAuthor(t *testing.T) {
	svc := &fakeService{getByID: func(id int64) (*model.Author, error) {
		if id == 1 {
			return &model.Author{ID: 1, Name: "Jane Doe"}, nil
		}
		return nil, fmt.Errorf("%w: %w", model.ErrAuthorNotFound, apperror.ErrNotFound)
	}}
	r := newRouter(svc)

	w, _ := do(t, r, http.MethodGet, "/api/v1/authors/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, r, http.MethodGet, "/api/v1/authors/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "AUTHOR_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "author not found", env.Error.Message)

	w, _ = do(t, r, http.MethodGet, "/api/v1/authors/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/authors/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAuthors(t *testing.T) {
	var got model.AuthorFilter
	svc := &fakeService{list: func(filter model.AuthorFilter) ([]model.Author, int64, error) {
		got = filter
		return []model.Author{{ID: 1, Name: "Jane Doe"}}, 42, nil
	}}

	w, env := do(t, newRouter(svc), http.MethodGet, "/api/v1/authors?search=ja&offset=10", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ja", got.Search)
	assert.Equal(t, model.DefaultLimit, got.Limit)
	require.NotNil(t, env.Meta)
	assert.Equal(t, int64(42), env.Meta.Total)
	assert.Equal(t, 10, env.Meta.Offset)
	assert.Equal(t, model.DefaultLimit, env.Meta.Limit)
}

func TestUpdateAuthor(t *testing.T) {
	svc := &fakeService{update: func(id int64, req *model.UpdateAuthorRequest) (*model.Author, error) {
		if req.PhoneNumber != nil {
			return nil, apperror.NewValidation(model.FieldPhoneNumber, model.MsgPhoneNumber)
		}
		return &model.Author{ID: id, Name: *req.Name}, nil
	}}
	r := newRouter(svc)

	w, env := do(t, r, http.MethodPatch, "/api/v1/authors/3", `{"name":"New"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	w, env = do(t, r, http.MethodPatch, "/api/v1/authors/3", `{"phone_number":"1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, model.MsgPhoneNumber, env.Error.Message)
}

func TestDeleteAuthor(t *testing.T) {
	svc := &fakeService{delete: func(id int64) error {
		if id == 1 {
			return nil
		}
		return errors.New("connection refused")
	}}
	r := newRouter(svc)

	w, _ := do(t, r, http.MethodDelete, "/api/v1/authors/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, env := do(t, r, http.MethodDelete, "/api/v1/authors/2", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", env.Error.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
