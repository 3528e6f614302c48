package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type RootHandler struct{}

func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

func (h *RootHandler) Get(c *gin.Context) {
	c.String(http.StatusOK, "A GET Request")
}

// Echo answers with the JSON body it received.
func (h *RootHandler) Echo(c *gin.Context) {
	var body any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.String(http.StatusBadRequest, msgInvalidBody)
		return
	}
	c.JSON(http.StatusOK, body)
}
