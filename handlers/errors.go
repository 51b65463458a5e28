package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eletrigo/services/ledger"
	"eletrigo/utils"
)

// respondError maps the command taxonomy onto HTTP statuses: validation 400,
// not-found 404, guard conflicts 409, anything else 500.
func respondError(c *gin.Context, err error) {
	var ve *ledger.ValidationError
	var ce *ledger.StateConflictError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, "validation failed", err.Error())
	case ledger.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.As(err, &ce):
		utils.JSONError(c, http.StatusConflict, "conflict", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}
