package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"cms-backend/internal/domains/post/model"
	"cms-backend/internal/domains/post/service"
	"cms-backend/internal/shared/response"
)

type PostHandler struct {
	service service.ServiceInterface
}

func NewPostHandler(svc service.ServiceInterface) *PostHandler {
	return &PostHandler{
		service: svc,
	}
}

func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.POST("", h.Create)
		posts.GET("", h.List)
		posts.GET("/:id", h.GetByID)
		posts.PATCH("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}

// POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Create post successfully", p.ToResponse())
}

// GET /api/v1/posts/:id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Get post successfully", p.ToResponse())
}

// GET /api/v1/posts?category=Fiction&limit=20&offset=0
func (h *PostHandler) List(c *gin.Context) {
	var filter model.PostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	filter.Normalize()

	posts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	data := make([]model.PostResponse, len(posts))
	for i := range posts {
		data[i] = *posts[i].ToResponse()
	}

	response.SuccessWithMeta(c, http.StatusOK, "Success", data, &response.Meta{
		Limit:  filter.Limit,
		Offset: filter.Offset,
		Total:  total,
	})
}

// PATCH /api/v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Update post successfully", p.ToResponse())
}

// DELETE /api/v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Delete post successfully", nil)
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	if response.Validation(c, err) {
		return
	}

	status := model.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("post request failed")
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.ErrorResponse(c, status, model.ToErrorCode(err), model.ErrPostNotFound.Error())
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid post id")
		return 0, false
	}
	return id, true
}
