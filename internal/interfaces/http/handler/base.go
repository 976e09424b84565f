// Package handler contains the gin HTTP handlers. Response bodies
// follow the wire shapes in the dto package.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fooddelivery/backend/internal/domain/shared"
	"github.com/fooddelivery/backend/internal/interfaces/http/dto"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Error sends an error response with the given status and message
func (h *BaseHandler) Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, message)
}

// HandleDomainError converts domain errors to HTTP responses. Handlers
// that need to echo an identifier back build the body themselves.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.ErrorResponse{Error: domainErr.Message})
		return
	}
	h.Error(c, http.StatusInternalServerError, "Internal server error")
}
