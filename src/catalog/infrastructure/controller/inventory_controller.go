package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos/src/catalog/application/request"
	"pos/src/catalog/application/usecase"
	"pos/src/catalog/domain/entity"
)

// InventoryController maneja las peticiones HTTP de existencias
type InventoryController struct {
	listInventoryUC   *usecase.ListInventoryUseCase
	adjustInventoryUC *usecase.AdjustInventoryUseCase
	restockUC         *usecase.RestockUseCase
	lowStockReportUC  *usecase.LowStockReportUseCase
}

// NewInventoryController crea una nueva instancia del controlador
func NewInventoryController(
	listInventoryUC *usecase.ListInventoryUseCase,
	adjustInventoryUC *usecase.AdjustInventoryUseCase,
	restockUC *usecase.RestockUseCase,
	lowStockReportUC *usecase.LowStockReportUseCase,
) *InventoryController {
	return &InventoryController{
		listInventoryUC:   listInventoryUC,
		adjustInventoryUC: adjustInventoryUC,
		restockUC:         restockUC,
		lowStockReportUC:  lowStockReportUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *InventoryController) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/inventory")
	{
		inventory.GET("", c.ListInventory)
		inventory.GET("/low-stock", c.LowStockReport)
		inventory.POST("/:product_id/adjust", c.AdjustInventory)
		inventory.POST("/:product_id/restock", c.Restock)
	}
}

// ListInventory lista el inventario valorizado
func (c *InventoryController) ListInventory(ctx *gin.Context) {
	search := ctx.Query("search")
	lowStockOnly := ctx.Query("low_stock_only") == "true"

	resp, err := c.listInventoryUC.Execute(ctx.Request.Context(), search, lowStockOnly)
	if err != nil {
		log.Printf("Error listing inventory: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// LowStockReport lista productos a reponer
func (c *InventoryController) LowStockReport(ctx *gin.Context) {
	resp, err := c.lowStockReportUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error building low stock report: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AdjustInventory aplica un ajuste manual de existencias
func (c *InventoryController) AdjustInventory(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	var req request.AdjustInventoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.adjustInventoryUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrNegativeInventory) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Inventory cannot be negative"})
			return
		}
		log.Printf("Error adjusting inventory: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Restock repone existencias de un producto
func (c *InventoryController) Restock(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	var req request.RestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.restockUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrInvalidQuantity) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error restocking product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
