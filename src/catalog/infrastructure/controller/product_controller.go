package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pos/src/catalog/application/request"
	"pos/src/catalog/application/usecase"
	"pos/src/catalog/domain/entity"
)

// ProductController maneja las peticiones HTTP del catálogo de productos
type ProductController struct {
	createProductUC *usecase.CreateProductUseCase
	getProductUC    *usecase.GetProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	getProductUC *usecase.GetProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		createProductUC: createProductUC,
		getProductUC:    getProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.POST("", c.CreateProduct)
		products.GET("", c.ListProducts)
		products.GET("/barcode/:barcode", c.GetProductByBarcode)
		products.GET("/:product_id", c.GetProduct)
		products.PATCH("/:product_id", c.UpdateProduct)
		products.DELETE("/:product_id", c.DeleteProduct)
	}
}

// CreateProduct maneja el alta de producto
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating product: %v", err)

		if errors.Is(err, entity.ErrBarcodeAlreadyUsed) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, entity.ErrInvalidPrice) || errors.Is(err, entity.ErrInvalidCost) ||
			errors.Is(err, entity.ErrInvalidPricingUnit) || errors.Is(err, entity.ErrBarcodeRequired) ||
			errors.Is(err, entity.ErrProductNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error creating product",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// ListProducts lista productos con búsqueda y paginación
func (c *ProductController) ListProducts(ctx *gin.Context) {
	search := ctx.Query("search")
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	products, total, err := c.getProductUC.List(ctx.Request.Context(), search, page, limit)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       products,
		"total_count": total,
		"page":        page,
		"limit":       limit,
	})
}

// GetProduct busca un producto por id
func (c *ProductController) GetProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	product, err := c.getProductUC.ByID(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error getting product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// GetProductByBarcode busca un producto por barcode (escaneo POS)
func (c *ProductController) GetProductByBarcode(ctx *gin.Context) {
	barcode := ctx.Param("barcode")

	product, err := c.getProductUC.ByBarcode(ctx.Request.Context(), barcode)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("Error getting product by barcode: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// UpdateProduct edita un producto existente
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := c.updateProductUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrInvalidPrice) || errors.Is(err, entity.ErrInvalidCost) ||
			errors.Is(err, entity.ErrInvalidPricingUnit) || errors.Is(err, entity.ErrProductNameRequired) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error updating product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct elimina un producto sin ventas asociadas
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	if err := c.deleteProductUC.Execute(ctx.Request.Context(), productID); err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrProductHasSales) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
