package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eletrigo/models"
	"eletrigo/services/ledger"
	"eletrigo/utils"
)

// ServiceHandler exposes the ledger commands to the dashboards.
type ServiceHandler struct {
	Ledger ledger.Service
	Logger *zap.Logger
}

func NewServiceHandler(svc ledger.Service, logger *zap.Logger) *ServiceHandler {
	return &ServiceHandler{Ledger: svc, Logger: logger}
}

type commandResult struct {
	rec models.ServiceRecord
	err error
}

// RequestServiceHandler creates a service request. The ledger applies the
// configured simulated latency before the command body runs.
func (h *ServiceHandler) RequestServiceHandler(c *gin.Context) {
	var input models.ServiceRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ch := make(chan commandResult, 1)
	h.Ledger.RequestServiceAfter(input, func(rec models.ServiceRecord, err error) {
		ch <- commandResult{rec, err}
	})
	res := <-ch
	if res.err != nil {
		respondError(c, res.err)
		return
	}
	c.JSON(http.StatusCreated, res.rec)
}

// AcceptServiceHandler claims a requested service for an electrician.
func (h *ServiceHandler) AcceptServiceHandler(c *gin.Context) {
	serviceID := c.Param("id")
	var input models.AcceptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ch := make(chan commandResult, 1)
	h.Ledger.AcceptServiceAfter(serviceID, input.ElectricianID, input.ETA, func(rec models.ServiceRecord, err error) {
		ch <- commandResult{rec, err}
	})
	res := <-ch
	if res.err != nil {
		respondError(c, res.err)
		return
	}
	c.JSON(http.StatusOK, res.rec)
}

// AdvanceServiceHandler marks an assignment arrived or completed.
func (h *ServiceHandler) AdvanceServiceHandler(c *gin.Context) {
	serviceID := c.Param("id")
	var input models.AdvanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec, err := h.Ledger.AdvanceService(serviceID, input.ElectricianID, input.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CancelServiceHandler cancels a requested or accepted service.
func (h *ServiceHandler) CancelServiceHandler(c *gin.Context) {
	serviceID := c.Param("id")
	var input models.CancelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec, err := h.Ledger.CancelService(serviceID, input.ActorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// SendMessageHandler appends a chat message to the service conversation.
func (h *ServiceHandler) SendMessageHandler(c *gin.Context) {
	serviceID := c.Param("id")
	var input models.MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec, err := h.Ledger.SendMessage(serviceID, input.Sender, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// RateServiceHandler records a rating for a completed service.
func (h *ServiceHandler) RateServiceHandler(c *gin.Context) {
	serviceID := c.Param("id")
	var input models.RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rec, err := h.Ledger.RateService(serviceID, input.Role, input.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
