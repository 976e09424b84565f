package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/fooddelivery/backend/internal/application/cart"
	"github.com/fooddelivery/backend/internal/domain/shared"
	"github.com/fooddelivery/backend/internal/infrastructure/logger"
	"github.com/fooddelivery/backend/internal/interfaces/http/dto"
)

// CartHandler handles the shopping cart endpoints
type CartHandler struct {
	BaseHandler
	service *cartapp.Service
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service *cartapp.Service) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/api/cart")
	{
		cart.GET("", h.Get)
		cart.POST("/add", h.Add)
		cart.POST("/update", h.Update)
		cart.DELETE("/delete/:itemId", h.Delete)
		cart.DELETE("/clear", h.Clear)
		cart.GET("/all", h.List)
	}
}

// Get returns the lines of one cart as a bare array
func (h *CartHandler) Get(c *gin.Context) {
	phone := c.Query("phone")
	shopID, ok := h.shopIDQuery(c, phone)
	if !ok {
		return
	}

	lines, err := h.service.Get(c.Request.Context(), phone, shopID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, lines)
}

// Add puts a product into a cart, merging with an existing line
func (h *CartHandler) Add(c *gin.Context) {
	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Missing required fields")
		return
	}

	line, cart, err := h.service.AddItem(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("cart item added",
		zap.String("phone", req.Phone),
		zap.Int64("shop_id", req.ShopID),
		zap.Int64("product_id", req.ProductID),
		zap.Int("quantity", line.Quantity),
	)

	c.JSON(http.StatusOK, dto.AddToCartResponse{
		Success: true,
		Item:    line,
		Cart:    cart,
	})
}

// Update sets the quantity of a line, removing it at zero and below
func (h *CartHandler) Update(c *gin.Context) {
	var req cartapp.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:    "Missing required fields",
			Required: []string{"cartId", "productId", "quantity"},
		})
		return
	}

	line, cart, removed, err := h.service.UpdateQuantity(c.Request.Context(), req)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == dto.ErrCodeNotFound {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:     "Product not found in cart",
				ProductID: req.ProductID,
			})
			return
		}
		h.HandleDomainError(c, err)
		return
	}

	if removed {
		c.JSON(http.StatusOK, dto.RemoveFromCartResponse{
			Success:   true,
			Message:   "Item removed from cart",
			ProductID: req.ProductID,
		})
		return
	}

	c.JSON(http.StatusOK, dto.UpdateCartResponse{
		Success: true,
		Message: "Cart updated",
		Item:    line,
		Cart:    cart,
	})
}

// Delete removes one line by its ID
func (h *CartHandler) Delete(c *gin.Context) {
	if c.Query("phone") == "" {
		h.BadRequest(c, "Phone number required")
		return
	}

	// an unparseable id matches no line
	itemID, err := strconv.ParseInt(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Item not found"})
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), itemID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SimpleResponse{
		Success: true,
		Message: "Item deleted from cart",
	})
}

// Clear removes a whole cart
func (h *CartHandler) Clear(c *gin.Context) {
	phone := c.Query("phone")
	shopID, ok := h.shopIDQuery(c, phone)
	if !ok {
		return
	}

	if err := h.service.Clear(c.Request.Context(), phone, shopID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SimpleResponse{
		Success: true,
		Message: "Cart cleared",
	})
}

// List returns a snapshot of every cart
func (h *CartHandler) List(c *gin.Context) {
	carts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CartListResponse{
		Total: len(carts),
		Carts: carts,
	})
}

// shopIDQuery validates the phone and shopId query pair shared by the
// cart read and clear endpoints
func (h *CartHandler) shopIDQuery(c *gin.Context, phone string) (int64, bool) {
	shopIDRaw := c.Query("shopId")
	if phone == "" || shopIDRaw == "" {
		h.BadRequest(c, "Phone and shopId required")
		return 0, false
	}

	shopID, err := strconv.ParseInt(shopIDRaw, 10, 64)
	if err != nil {
		h.BadRequest(c, "Phone and shopId required")
		return 0, false
	}
	return shopID, true
}
