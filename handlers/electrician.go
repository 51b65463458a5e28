package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eletrigo/models"
	"eletrigo/services/electrician"
	"eletrigo/utils"
)

// ElectricianHandler exposes electrician registration, login and the admin
// approval transition.
type ElectricianHandler struct {
	Electricians electrician.Service
}

func NewElectricianHandler(svc electrician.Service) *ElectricianHandler {
	return &ElectricianHandler{Electricians: svc}
}

func (h *ElectricianHandler) RegisterHandler(c *gin.Context) {
	var input models.ElectricianRegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Electricians.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ElectricianHandler) LoginHandler(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	account, err := h.Electricians.Login(input.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *ElectricianHandler) SetApprovalHandler(c *gin.Context) {
	var input models.ApprovalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Electricians.SetApproval(c.Param("id"), input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
