package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cms-backend/internal/domains/post/model"
)

// fakeService validates requests the same way the real service does
type fakeService struct {
	posts map[int64]*model.Post
	last  model.PostFilter
}

func (f *fakeService) Create(_ context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := req.ToEntity()
	if err != nil {
		return nil, err
	}
	p.ID = int64(len(f.posts) + 1)
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	return p, nil
}

func (f *fakeService) List(_ context.Context, filter model.PostFilter) ([]model.Post, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}
	f.last = filter
	out := []model.Post{}
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeService) Update(_ context.Context, id int64, req *model.UpdatePostRequest) (*model.Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, model.ErrPostNotFound
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := req.ApplyTo(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	if _, ok := f.posts[id]; !ok {
		return model.ErrPostNotFound
	}
	delete(f.posts, id)
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewPostHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var raw string
	switch b := body.(type) {
	case nil:
	case string:
		raw = b
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		raw = string(buf)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestPostLifecycle(t *testing.T) {
	svc := &fakeService{posts: map[int64]*model.Post{}}
	r := newRouter(svc)
	content := strings.Repeat("x", model.MinContentLength)

	w, env := do(t, r, http.MethodPost, "/api/v1/posts", map[string]any{
		"title":    "Top 10 Secrets",
		"content":  content,
		"category": "Fiction",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created model.PostResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Nil(t, created.Summary)

	w, env = do(t, r, http.MethodPatch, "/api/v1/posts/1", map[string]any{"category": "Non-Fiction"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated model.PostResponse
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, model.CategoryNonFiction, updated.Category)

	w, _ = do(t, r, http.MethodGet, "/api/v1/posts?category=Non-Fiction&limit=5", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.CategoryNonFiction, svc.last.Category)
	assert.Equal(t, 5, svc.last.Limit)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/posts/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "POST_NOT_FOUND", env.Error.Code)
}

func TestCreatePostValidation(t *testing.T) {
	r := newRouter(&fakeService{posts: map[int64]*model.Post{}})

	w, env := do(t, r, http.MethodPost, "/api/v1/posts", map[string]any{
		"title":    "A Normal Headline",
		"content":  "short",
		"category": "Fantasy",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Equal(t, model.MsgCategory, env.Error.Message)
	assert.Equal(t, model.MsgContentLength, env.Error.Details[model.FieldContent])
	assert.Contains(t, env.Error.Details, model.FieldTitle)
}

func TestListPostsUnknownCategory(t *testing.T) {
	r := newRouter(&fakeService{posts: map[int64]*model.Post{}})

	w, env := do(t, r, http.MethodGet, "/api/v1/posts?category=Poetry", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, model.MsgCategory, env.Error.Message)
}

func TestInvalidPostID(t *testing.T) {
	r := newRouter(&fakeService{posts: map[int64]*model.Post{}})

	w, env := do(t, r, http.MethodDelete, "/api/v1/posts/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid post id", env.Error.Message)

	w, _ = do(t, r, http.MethodPatch, "/api/v1/posts/1", "not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
