package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/fooddelivery/backend/internal/application/catalog"
	"github.com/fooddelivery/backend/internal/domain/catalog"
	"github.com/fooddelivery/backend/internal/interfaces/http/dto"
)

// CatalogHandler handles the shop and product catalog endpoints
type CatalogHandler struct {
	BaseHandler
	service *catalogapp.Service
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(service *catalogapp.Service) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers catalog routes. The shop list lives under
// /api/user and the product endpoints under /user, matching the paths
// the deployed clients call.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/api/user/shops", h.Shops)

	shops := rg.Group("/user/shops")
	{
		shops.GET("/:shopId/products", h.ShopProducts)
		shops.GET("/:shopId/products/:productId", h.Product)
	}
}

// Shops returns the marketplace shop list as a bare array
func (h *CatalogHandler) Shops(c *gin.Context) {
	shops, err := h.service.Shops(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, shops)
}

// ShopProducts returns every product of one shop as a bare array
func (h *CatalogHandler) ShopProducts(c *gin.Context) {
	shopID, err := strconv.ParseInt(c.Param("shopId"), 10, 64)
	if err != nil || shopID == 0 {
		h.BadRequest(c, "ShopId required")
		return
	}

	products, err := h.service.ShopProducts(c.Request.Context(), shopID)
	if err != nil {
		if errors.Is(err, catalog.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:  "Shop not found",
				ShopID: shopID,
			})
			return
		}
		h.HandleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// Product returns one product of one shop
func (h *CatalogHandler) Product(c *gin.Context) {
	shopID, shopErr := strconv.ParseInt(c.Param("shopId"), 10, 64)
	productID, productErr := strconv.ParseInt(c.Param("productId"), 10, 64)
	if shopErr != nil || productErr != nil || shopID == 0 || productID == 0 {
		h.BadRequest(c, "ShopId and ProductId required")
		return
	}

	product, err := h.service.Product(c.Request.Context(), shopID, productID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrShopNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:  "Shop not found",
				ShopID: shopID,
			})
		case errors.Is(err, catalog.ErrProductNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error:     "Product not found",
				ShopID:    shopID,
				ProductID: productID,
			})
		default:
			h.HandleDomainError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, product)
}
