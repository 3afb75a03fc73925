package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos/src/customers/application/request"
	"pos/src/customers/application/usecase"
	"pos/src/customers/domain/entity"
)

// CustomerController maneja las peticiones HTTP de clientes y cuenta corriente
type CustomerController struct {
	createCustomerUC *usecase.CreateCustomerUseCase
	getCustomerUC    *usecase.GetCustomerUseCase
	updateCustomerUC *usecase.UpdateCustomerUseCase
	deleteCustomerUC *usecase.DeleteCustomerUseCase
	recordPaymentUC  *usecase.RecordPaymentUseCase
	getLedgerUC      *usecase.GetLedgerUseCase
	debtorsUC        *usecase.DebtorsUseCase
}

// NewCustomerController crea una nueva instancia del controlador
func NewCustomerController(
	createCustomerUC *usecase.CreateCustomerUseCase,
	getCustomerUC *usecase.GetCustomerUseCase,
	updateCustomerUC *usecase.UpdateCustomerUseCase,
	deleteCustomerUC *usecase.DeleteCustomerUseCase,
	recordPaymentUC *usecase.RecordPaymentUseCase,
	getLedgerUC *usecase.GetLedgerUseCase,
	debtorsUC *usecase.DebtorsUseCase,
) *CustomerController {
	return &CustomerController{
		createCustomerUC: createCustomerUC,
		getCustomerUC:    getCustomerUC,
		updateCustomerUC: updateCustomerUC,
		deleteCustomerUC: deleteCustomerUC,
		recordPaymentUC:  recordPaymentUC,
		getLedgerUC:      getLedgerUC,
		debtorsUC:        debtorsUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.POST("", c.CreateCustomer)
		customers.GET("", c.ListCustomers)
		customers.GET("/debtors", c.ListDebtors)
		customers.GET("/:customer_id", c.GetCustomer)
		customers.PATCH("/:customer_id", c.UpdateCustomer)
		customers.DELETE("/:customer_id", c.DeleteCustomer)
		customers.POST("/:customer_id/payments", c.RecordPayment)
		customers.GET("/:customer_id/ledger", c.GetLedger)
	}
}

// CreateCustomer maneja el alta de cliente
func (c *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req request.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	customer, err := c.createCustomerUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating customer: %v", err)

		if errors.Is(err, entity.ErrPhoneAlreadyUsed) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, entity.ErrCustomerNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error creating customer",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, customer)
}

// ListCustomers lista clientes con búsqueda opcional
func (c *CustomerController) ListCustomers(ctx *gin.Context) {
	search := ctx.Query("search")

	customers, err := c.getCustomerUC.List(ctx.Request.Context(), search)
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       customers,
		"total_count": len(customers),
	})
}

// ListDebtors lista clientes con deuda pendiente
func (c *CustomerController) ListDebtors(ctx *gin.Context) {
	debtors, err := c.debtorsUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing debtors: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, debtors)
}

// GetCustomer busca un cliente por id
func (c *CustomerController) GetCustomer(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id format"})
		return
	}

	customer, err := c.getCustomerUC.ByID(ctx.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		log.Printf("Error getting customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// UpdateCustomer edita un cliente existente
func (c *CustomerController) UpdateCustomer(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id format"})
		return
	}

	var req request.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	customer, err := c.updateCustomerUC.Execute(ctx.Request.Context(), customerID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if errors.Is(err, entity.ErrPhoneAlreadyUsed) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, entity.ErrCustomerNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// DeleteCustomer elimina un cliente sin ventas ni asientos asociados
func (c *CustomerController) DeleteCustomer(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id format"})
		return
	}

	if err := c.deleteCustomerUC.Execute(ctx.Request.Context(), customerID); err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if errors.Is(err, entity.ErrCustomerHasSales) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting customer: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}

// RecordPayment registra un pago de cuenta corriente
func (c *CustomerController) RecordPayment(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id format"})
		return
	}

	var req request.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	payment, err := c.recordPaymentUC.Execute(ctx.Request.Context(), customerID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		if errors.Is(err, entity.ErrNoOutstandingBalance) || errors.Is(err, entity.ErrPaymentExceedsDebt) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, entity.ErrInvalidAmount) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error recording payment: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// GetLedger retorna el ledger paginado de un cliente
func (c *CustomerController) GetLedger(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer_id format"})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	ledger, err := c.getLedgerUC.Execute(ctx.Request.Context(), customerID, page, limit)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		log.Printf("Error getting ledger: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, ledger)
}
