package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ulule/limiter/v3"

	"github.com/jhoicas/Tienda-api/internal/domain/entity"
	"github.com/jhoicas/Tienda-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Auth             AuthService
	Customers        CustomerService
	Accounts         AccountService
	Sales            SaleService
	Payments         PaymentService
	Suppliers        SupplierService
	SupplierPayments SupplierPaymentService
	Products         ProductService
	Business         BusinessService
	Dashboard        DashboardService
	DB               Pinger
	JWTSecret        string
	LoginLimiter     *limiter.Limiter // nil: login sin límite
	Logger           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Públicas
	api.Get("/health", NewHealthHandler(deps.DB).Check)

	authHandler := NewAuthHandler(deps.Auth)
	loginChain := []fiber.Handler{}
	if deps.LoginLimiter != nil {
		loginChain = append(loginChain, RateLimit(deps.LoginLimiter, log.Component("ratelimit")))
	}
	loginChain = append(loginChain, authHandler.Login)
	api.Post("/auth/login", loginChain...)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Get("/auth/me", authHandler.Me)

	// Clientes y cartera
	customerHandler := NewCustomerHandler(deps.Customers)
	accountHandler := NewAccountHandler(deps.Accounts)
	customers := protected.Group("/clientes")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)
	customers.Get("/:id/saldo", accountHandler.Balance)
	customers.Get("/:id/estado-cuenta", accountHandler.Statement)
	customers.Get("/:id/estado-cuenta/pdf", accountHandler.StatementPDF)
	protected.Get("/estado-cuentas", accountHandler.List)

	// Ventas: las rutas fijas van antes de /:id
	saleHandler := NewSaleHandler(deps.Sales)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	sales := protected.Group("/ventas")
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/pendientes", saleHandler.Pending)
	sales.Get("/hoy/estadisticas", dashboardHandler.TodayStats)
	sales.Get("/cliente/:id", saleHandler.ByCustomer)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", adminOnly, saleHandler.Delete)

	// Abonos
	paymentHandler := NewPaymentHandler(deps.Payments)
	payments := protected.Group("/abonos")
	payments.Post("/", paymentHandler.Create)
	payments.Get("/cliente/:id", paymentHandler.ByCustomer)
	payments.Get("/cliente/:id/total", paymentHandler.Total)

	// Proveedores
	supplierHandler := NewSupplierHandler(deps.Suppliers)
	suppliers := protected.Group("/proveedores")
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", adminOnly, supplierHandler.Delete)

	supplierPaymentHandler := NewSupplierPaymentHandler(deps.SupplierPayments)
	supplierPayments := protected.Group("/pagos-proveedores")
	supplierPayments.Post("/", supplierPaymentHandler.Create)
	supplierPayments.Get("/proveedor/:id", supplierPaymentHandler.BySupplier)
	supplierPayments.Get("/proveedor/:id/total", supplierPaymentHandler.Total)
	supplierPayments.Delete("/:id", adminOnly, supplierPaymentHandler.Delete)

	// Productos
	productHandler := NewProductHandler(deps.Products)
	products := protected.Group("/productos")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/proveedor/:id", productHandler.BySupplier)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Negocio y tablero
	businessHandler := NewBusinessHandler(deps.Business)
	protected.Get("/negocio", businessHandler.Get)
	protected.Put("/negocio/:id", adminOnly, businessHandler.Update)
	protected.Get("/dashboard/resumen", dashboardHandler.GetSummary)
}
