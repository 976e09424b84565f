package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	contactapp "github.com/fooddelivery/backend/internal/application/contact"
	"github.com/fooddelivery/backend/internal/domain/shared"
	"github.com/fooddelivery/backend/internal/infrastructure/logger"
	"github.com/fooddelivery/backend/internal/interfaces/http/dto"
)

// ContactHandler handles the contact registry endpoints
type ContactHandler struct {
	BaseHandler
	service *contactapp.Service
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service *contactapp.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers contact routes
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	contacts := rg.Group("/api/contacts")
	{
		contacts.GET("/check", h.Check)
		contacts.POST("", h.Save)
		contacts.POST("/login", h.Login)
		contacts.GET("", h.List)
		contacts.GET("/:phone", h.Get)
		contacts.PUT("/:phone", h.Update)
		contacts.DELETE("/:phone", h.Delete)
	}
}

// Check reports whether a phone number belongs to a new or known contact
func (h *ContactHandler) Check(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		h.BadRequest(c, "Phone number required")
		return
	}

	exists, err := h.service.CheckExists(c.Request.Context(), phone)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckContactResponse{
		IsNewContact: !exists,
		PhoneNumber:  phone,
	})
}

// Save creates a contact or refreshes an existing one
func (h *ContactHandler) Save(c *gin.Context) {
	var req contactapp.UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Phone number required")
		return
	}

	contact, isNew, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("contact saved",
		zap.String("phone", contact.PhoneNumber),
		zap.Bool("is_new", isNew),
	)

	c.JSON(http.StatusOK, dto.SaveContactResponse{
		Success: true,
		IsNew:   isNew,
		Contact: contact,
	})
}

// Login refreshes the last login timestamp of a known contact
func (h *ContactHandler) Login(c *gin.Context) {
	var req contactapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Phone number required")
		return
	}

	contact, err := h.service.Login(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		h.contactError(c, err, req.PhoneNumber)
		return
	}

	c.JSON(http.StatusOK, dto.ContactResponse{
		Success: true,
		Contact: contact,
	})
}

// Get returns one contact by phone number
func (h *ContactHandler) Get(c *gin.Context) {
	phone := c.Param("phone")

	contact, err := h.service.Get(c.Request.Context(), phone)
	if err != nil {
		h.contactError(c, err, phone)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// List returns every registered contact
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ContactListResponse{
		Total:    len(contacts),
		Contacts: contacts,
	})
}

// Update applies a partial name update to a contact
func (h *ContactHandler) Update(c *gin.Context) {
	phone := c.Param("phone")

	var req contactapp.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	contact, err := h.service.Update(c.Request.Context(), phone, req)
	if err != nil {
		h.contactError(c, err, phone)
		return
	}

	c.JSON(http.StatusOK, dto.ContactResponse{
		Success: true,
		Contact: contact,
	})
}

// Delete removes a contact from the registry
func (h *ContactHandler) Delete(c *gin.Context) {
	phone := c.Param("phone")

	if err := h.service.Delete(c.Request.Context(), phone); err != nil {
		h.contactError(c, err, phone)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteContactResponse{
		Success:     true,
		Message:     "Contact deleted",
		PhoneNumber: phone,
	})
}

// contactError maps a lookup failure to the wire shape that echoes the
// phone number on 404s
func (h *ContactHandler) contactError(c *gin.Context, err error, phone string) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == dto.ErrCodeNotFound {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:       "Contact not found",
			PhoneNumber: phone,
		})
		return
	}
	h.HandleDomainError(c, err)
}
