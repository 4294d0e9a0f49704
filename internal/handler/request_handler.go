package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shareit-app/backend/internal/application"
	"github.com/shareit-app/backend/internal/httpx"
	"github.com/shareit-app/backend/internal/middleware"
)

// RequestHandler handles HTTP requests for item requests.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers all item-request routes on the given router group.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(middleware.RequireUserID())
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListOwn)
		requests.GET("/all", h.ListAll)
		requests.GET("/:id", h.GetRequest)
	}
}

// CreateRequest handles POST /requests.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	var req application.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// ListOwn handles GET /requests.
func (h *RequestHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	result, err := h.service.ListOwn(c.Request.Context(), userID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// ListAll handles GET /requests/all?from=&size=.
func (h *RequestHandler) ListAll(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	from, size, err := parsePagination(c)
	if err != nil {
		httpx.BadRequest(c, err.Error())
		return
	}
	result, err := h.service.ListAll(c.Request.Context(), userID, from, size)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}

// GetRequest handles GET /requests/:id.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, httpx.ErrorResponse{Error: "missing user id"})
		return
	}
	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.BadRequest(c, "invalid request id")
		return
	}
	result, err := h.service.GetRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, result)
}
