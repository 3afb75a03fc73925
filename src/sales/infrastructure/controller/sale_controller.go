package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogEntity "pos/src/catalog/domain/entity"
	customerEntity "pos/src/customers/domain/entity"
	"pos/src/sales/application/request"
	"pos/src/sales/application/usecase"
	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
)

// SaleController maneja las peticiones HTTP de ventas
type SaleController struct {
	createSaleUC   *usecase.CreateSaleUseCase
	voidSaleUC     *usecase.VoidSaleUseCase
	getSaleUC      *usecase.GetSaleUseCase
	listSalesUC    *usecase.ListSalesUseCase
	dailySummaryUC *usecase.DailySummaryUseCase
	getReceiptUC   *usecase.GetReceiptUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	createSaleUC *usecase.CreateSaleUseCase,
	voidSaleUC *usecase.VoidSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	dailySummaryUC *usecase.DailySummaryUseCase,
	getReceiptUC *usecase.GetReceiptUseCase,
) *SaleController {
	return &SaleController{
		createSaleUC:   createSaleUC,
		voidSaleUC:     voidSaleUC,
		getSaleUC:      getSaleUC,
		listSalesUC:    listSalesUC,
		dailySummaryUC: dailySummaryUC,
		getReceiptUC:   getReceiptUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("", c.CreateSale)
		sales.GET("", c.ListSales)
		sales.GET("/daily-summary", c.DailySummary)
		sales.GET("/:sale_id", c.GetSale)
		sales.POST("/:sale_id/void", c.VoidSale)
		sales.GET("/:sale_id/receipt", c.GetReceipt)
	}
}

// CreateSale registra una venta
func (c *SaleController) CreateSale(ctx *gin.Context) {
	var req request.CreateSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	sale, err := c.createSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating sale: %v", err)

		if errors.Is(err, customerEntity.ErrCustomerNotFound) || errors.Is(err, catalogEntity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, catalogEntity.ErrInsufficientStock) || errors.Is(err, entity.ErrDuplicateSyncID) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, entity.ErrEmptySale) || errors.Is(err, entity.ErrInvalidPaymentType) ||
			errors.Is(err, entity.ErrCustomerRequired) || errors.Is(err, catalogEntity.ErrInvalidQuantity) ||
			errors.Is(err, catalogEntity.ErrNonIntegerQuantity) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error creating sale",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, sale)
}

// ListSales lista ventas con filtros opcionales
func (c *SaleController) ListSales(ctx *gin.Context) {
	filter := port.SaleFilter{}
	filter.Page, _ = strconv.Atoi(ctx.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	if raw := ctx.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id format"})
			return
		}
		filter.CustomerID = &customerID
	}
	if raw := ctx.Query("payment_type"); raw != "" {
		paymentType := entity.PaymentType(raw)
		if !paymentType.IsValid() {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment_type"})
			return
		}
		filter.PaymentType = &paymentType
	}
	if raw := ctx.Query("status"); raw != "" {
		status := entity.SaleStatus(raw)
		filter.Status = &status
	}
	if raw := ctx.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected RFC3339"})
			return
		}
		filter.From = &from
	}
	if raw := ctx.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected RFC3339"})
			return
		}
		filter.To = &to
	}

	sales, err := c.listSalesUC.Execute(ctx.Request.Context(), filter)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, sales)
}

// DailySummary retorna el resumen de ventas de un día (default: hoy)
func (c *SaleController) DailySummary(ctx *gin.Context) {
	date := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	summary, err := c.dailySummaryUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		log.Printf("Error building daily summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// GetSale busca una venta por id
func (c *SaleController) GetSale(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return
	}

	sale, err := c.getSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		log.Printf("Error getting sale: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, sale)
}

// VoidSale anula una venta
func (c *SaleController) VoidSale(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return
	}

	sale, err := c.voidSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		if errors.Is(err, entity.ErrSaleAlreadyVoided) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error voiding sale: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, sale)
}

// GetReceipt genera el ticket PDF de una venta
func (c *SaleController) GetReceipt(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id format"})
		return
	}

	pdf, err := c.getReceiptUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
			return
		}
		log.Printf("Error generating receipt: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", saleID.String()[:8])
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
