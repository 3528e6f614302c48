package handler

import (
	"errors"
	"io"
	"net/http"

	"curling-registry/internal/services"
	"curling-registry/internal/transport/httpdto"
	registry_errors "curling-registry/pkg/errors"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidBody  = "Invalid request body"
	msgUserNotFound = "User not found"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles POST /register.
func (h *UserHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	// An empty body is an empty registration and fails validation like one.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.String(http.StatusBadRequest, msgInvalidBody)
		return
	}

	created, location, err := h.service.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		if registry_errors.IsValidationError(err) {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		_ = c.Error(err)
		return
	}

	c.Header("Location", location)
	c.JSON(http.StatusCreated, httpdto.FromUser(created))
}

// Delete handles DELETE /user/:userId.
func (h *UserHandler) Delete(c *gin.Context) {
	err := h.service.Remove(c.Request.Context(), c.Param("userId"))
	if errors.Is(err, registry_errors.ErrNotFound) {
		c.String(http.StatusNotFound, msgUserNotFound)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /user.
func (h *UserHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, httpdto.FromUserSlice(h.service.ListAll(c.Request.Context())))
}
