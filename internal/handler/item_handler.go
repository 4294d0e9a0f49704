package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/application"
	"github.com/shareit-app/backend/internal/httpx"
	"github.com/shareit-app/backend/internal/middleware"
)

// ItemHandler handles HTTP requests for item operations.
type ItemHandler struct {
	service *application.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *application.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers all item routes on the given router group. Search
// is public; everything else identifies the caller.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup) {
	items := r.Group("/items")
	items.GET("/search", h.Search)

	authed := items.Group("")
	authed.Use(middleware.RequireUserID())
	{
		authed.POST("", h.CreateItem)
		authed.PATCH("/:id", h.UpdateItem)
		authed.GET("/:id", h.GetItem)
		authed.GET("", h.ListByOwner)
		authed.POST("/:id/comment", h.AddComment)
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.CreateItem(c.Request.Context(), ownerID, req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// UpdateItem handles PATCH /items/:id.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.BadRequest(c, "invalid item id")
		return
	}
	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.UpdateItem(c.Request.Context(), ownerID, itemID, req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// GetItem handles GET /items/:id.
func (h *ItemHandler) GetItem(c *gin.Context) {
	viewerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.BadRequest(c, "invalid item id")
		return
	}
	result, err := h.service.GetItem(c.Request.Context(), viewerID, itemID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// ListByOwner handles GET /items?from=&size=.
func (h *ItemHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	from, size, err := parsePagination(c)
	if err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.ListByOwner(c.Request.Context(), ownerID, from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// Search handles GET /items/search?text=&from=&size=.
func (h *ItemHandler) Search(c *gin.Context) {
	from, size, err := parsePagination(c)
	if err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// AddComment handles POST /items/:id/comment.
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.BadRequest(c, "invalid item id")
		return
	}
	var req application.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.AddComment(c.Request.Context(), authorID, itemID, req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}
