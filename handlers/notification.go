package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eletrigo/services/notification"
	"eletrigo/utils"
)

// NotificationHandler serves and dismisses the transient notification feed.
type NotificationHandler struct {
	Emitter notification.Emitter
}

func NewNotificationHandler(e notification.Emitter) *NotificationHandler {
	return &NotificationHandler{Emitter: e}
}

func (h *NotificationHandler) FeedHandler(c *gin.Context) {
	feed := h.Emitter.Feed(c.Param("userId"))
	c.JSON(http.StatusOK, gin.H{"notifications": feed})
}

func (h *NotificationHandler) DismissHandler(c *gin.Context) {
	if !h.Emitter.Dismiss(c.Param("userId"), c.Param("id")) {
		utils.JSONError(c, http.StatusNotFound, "not found", "notification already gone")
		return
	}
	c.Status(http.StatusNoContent)
}
