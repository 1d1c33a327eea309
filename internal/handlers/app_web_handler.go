package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AppWebHandler struct{}

func NewAppWebHandler() *AppWebHandler {
	return &AppWebHandler{}
}

func (h *AppWebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "login",
	})
}

func (h *AppWebHandler) PeoplePage(c *gin.Context) {
	c.HTML(http.StatusOK, "base", gin.H{
		"Page": "people",
	})
}
