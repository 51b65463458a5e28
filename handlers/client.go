package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eletrigo/models"
	"eletrigo/services/client"
	"eletrigo/utils"
)

// ClientHandler exposes client registration, login and profile updates.
type ClientHandler struct {
	Clients client.Service
}

func NewClientHandler(svc client.Service) *ClientHandler {
	return &ClientHandler{Clients: svc}
}

func (h *ClientHandler) RegisterHandler(c *gin.Context) {
	var input models.ClientRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Clients.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ClientHandler) LoginHandler(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	account, err := h.Clients.Login(input.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *ClientHandler) UpdateProfileHandler(c *gin.Context) {
	var input models.ClientProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Clients.UpdateProfile(c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
