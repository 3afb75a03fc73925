package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apiConfig "pos/src/api/config"
	catalogUseCase "pos/src/catalog/application/usecase"
	catalogController "pos/src/catalog/infrastructure/controller"
	catalogPersistence "pos/src/catalog/infrastructure/persistence"
	customerUseCase "pos/src/customers/application/usecase"
	customerController "pos/src/customers/infrastructure/controller"
	customerPersistence "pos/src/customers/infrastructure/persistence"
	notificationPort "pos/src/notifications/domain/port"
	notificationBroker "pos/src/notifications/infrastructure/broker"
	saleUseCase "pos/src/sales/application/usecase"
	saleController "pos/src/sales/infrastructure/controller"
	salePersistence "pos/src/sales/infrastructure/persistence"
	saleReceipt "pos/src/sales/infrastructure/receipt"
	sharedConfig "pos/src/shared/infrastructure/config"
)

func main() {
	log.Println("🚀 POS Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for POS service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled for POS service")
	}

	// Configurar GZIP y otros middlewares compartidos
	gzipSharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, gzipSharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := sharedConfig.GetEnv("DB_HOST", "localhost")
	dbPort := sharedConfig.GetEnv("DB_PORT", "5432")
	dbUser := sharedConfig.GetEnv("DB_USER", "postgres")
	dbPassword := sharedConfig.GetEnv("DB_PASSWORD", "postgres")
	dbName := sharedConfig.GetEnv("DB_NAME", "pos_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a pos_db: %s", connStr)

	// Conectar a la base de datos (opcional para bootstrap)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		if err := db.Ping(); err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Println("✅ Conexión a pos_db establecida con éxito")
		}
	}

	// Notificador de stock bajo vía RabbitMQ (opcional)
	var notifier notificationPort.LowStockNotifier
	rabbitURL := os.Getenv("RABBITMQ_URL")
	if rabbitURL != "" {
		rabbitNotifier, err := notificationBroker.NewRabbitMQNotifier(rabbitURL)
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al conectar a RabbitMQ: %v", err)
			log.Println("⚠️  Continuando sin notificaciones de stock bajo")
			notifier = notificationBroker.NewNoopNotifier()
		} else {
			defer rabbitNotifier.Close()
			log.Println("✅ Conexión a RabbitMQ establecida con éxito")
			notifier = rabbitNotifier
		}
	} else {
		log.Println("⚠️  RABBITMQ_URL no configurada, notificaciones deshabilitadas")
		notifier = notificationBroker.NewNoopNotifier()
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = sharedConfig.GetEnv("SERVICE_VERSION", "1.0.0")
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	if db != nil {
		setupModules(v1, db, notifier)
	} else {
		log.Println("⚠️  Módulos de negocio deshabilitados (sin DB)")
	}

	// Iniciar el servidor
	port := sharedConfig.GetEnv("PORT", "8080")
	log.Printf("✅ Servidor POS Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupModules configura los módulos de catálogo, clientes y ventas
func setupModules(router *gin.RouterGroup, db *sql.DB, notifier notificationPort.LowStockNotifier) {
	log.Println("Configurando módulos...")

	// Repositorios
	productRepo := catalogPersistence.NewProductPostgresRepository(db)
	inventoryRepo := catalogPersistence.NewInventoryPostgresRepository(db)
	customerRepo := customerPersistence.NewCustomerPostgresRepository(db)
	ledgerRepo := customerPersistence.NewLedgerPostgresRepository(db)
	saleRepo := salePersistence.NewSalePostgresRepository(db)

	// Módulo catálogo
	createProductUC := catalogUseCase.NewCreateProductUseCase(productRepo, inventoryRepo)
	getProductUC := catalogUseCase.NewGetProductUseCase(productRepo)
	updateProductUC := catalogUseCase.NewUpdateProductUseCase(productRepo)
	deleteProductUC := catalogUseCase.NewDeleteProductUseCase(productRepo)
	listInventoryUC := catalogUseCase.NewListInventoryUseCase(inventoryRepo)
	adjustInventoryUC := catalogUseCase.NewAdjustInventoryUseCase(productRepo, inventoryRepo, notifier)
	restockUC := catalogUseCase.NewRestockUseCase(productRepo, inventoryRepo)
	lowStockReportUC := catalogUseCase.NewLowStockReportUseCase(inventoryRepo)

	productCtrl := catalogController.NewProductController(createProductUC, getProductUC, updateProductUC, deleteProductUC)
	inventoryCtrl := catalogController.NewInventoryController(listInventoryUC, adjustInventoryUC, restockUC, lowStockReportUC)

	// Módulo clientes
	createCustomerUC := customerUseCase.NewCreateCustomerUseCase(customerRepo)
	getCustomerUC := customerUseCase.NewGetCustomerUseCase(customerRepo, ledgerRepo)
	updateCustomerUC := customerUseCase.NewUpdateCustomerUseCase(customerRepo, ledgerRepo)
	deleteCustomerUC := customerUseCase.NewDeleteCustomerUseCase(customerRepo)
	recordPaymentUC := customerUseCase.NewRecordPaymentUseCase(customerRepo, ledgerRepo)
	getLedgerUC := customerUseCase.NewGetLedgerUseCase(customerRepo, ledgerRepo)
	debtorsUC := customerUseCase.NewDebtorsUseCase(customerRepo, ledgerRepo)

	customerCtrl := customerController.NewCustomerController(
		createCustomerUC, getCustomerUC, updateCustomerUC, deleteCustomerUC,
		recordPaymentUC, getLedgerUC, debtorsUC)

	// Módulo ventas
	receiptGenerator := saleReceipt.NewPDFReceiptGenerator(sharedConfig.GetEnv("POS_STORE_NAME", ""))
	createSaleUC := saleUseCase.NewCreateSaleUseCase(saleRepo, productRepo, inventoryRepo, customerRepo, notifier)
	voidSaleUC := saleUseCase.NewVoidSaleUseCase(saleRepo)
	getSaleUC := saleUseCase.NewGetSaleUseCase(saleRepo)
	listSalesUC := saleUseCase.NewListSalesUseCase(saleRepo)
	dailySummaryUC := saleUseCase.NewDailySummaryUseCase(saleRepo)
	getReceiptUC := saleUseCase.NewGetReceiptUseCase(saleRepo, customerRepo, receiptGenerator)

	saleCtrl := saleController.NewSaleController(createSaleUC, voidSaleUC, getSaleUC, listSalesUC, dailySummaryUC, getReceiptUC)

	// Registrar rutas
	productCtrl.RegisterRoutes(router)
	inventoryCtrl.RegisterRoutes(router)
	customerCtrl.RegisterRoutes(router)
	saleCtrl.RegisterRoutes(router)

	log.Println("Módulos configurados exitosamente")
}
