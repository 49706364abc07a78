package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/raizvet/backoffice-api/internal/application/auth"
	"github.com/raizvet/backoffice-api/internal/application/payables"
	"github.com/raizvet/backoffice-api/internal/application/stock"
	"github.com/raizvet/backoffice-api/internal/application/usecase"
	"github.com/raizvet/backoffice-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	PayableUC         *payables.PayableUseCase
	LifecycleUC       *payables.LifecycleUseCase
	AgendaUC          *payables.AgendaUseCase
	SupplierUC        *usecase.SupplierUseCase
	PaymentMethodUC   *usecase.PaymentMethodUseCase
	FinanceAccountUC  *usecase.FinanceAccountUseCase
	DepotUC           *usecase.DepotUseCase
	MovementUC        *stock.MovementUseCase
	HospitalizationUC *usecase.HospitalizationUseCase
	AuthUC            *auth.AuthUseCase
	JWTSecret         string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login e bootstrap públicos; cadastro de usuário restrito a admin)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/companies", authHandler.CreateCompany)
	authGroup.Get("/companies/me",
		AuthMiddleware(deps.JWTSecret),
		authHandler.GetCompany)
	authGroup.Put("/companies/me",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.UpdateCompany)
	authGroup.Post("/users",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.RegisterUser)
	authGroup.Get("/users",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		authHandler.ListUsers)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Contas a pagar
	payablesGroup := protected.Group("/payables")
	payableHandler := NewPayableHandler(deps.PayableUC, deps.LifecycleUC)
	agendaHandler := NewAgendaHandler(deps.AgendaUC)
	payablesGroup.Get("/agenda", agendaHandler.Agenda)
	payablesGroup.Get("/agenda/pdf", agendaHandler.ExportPDF)
	payablesGroup.Get("/agenda/xlsx", agendaHandler.ExportXLSX)
	payablesGroup.Get("/options", payableHandler.Options)
	payablesGroup.Post("/", payableHandler.Create)
	payablesGroup.Get("/", payableHandler.List)
	payablesGroup.Get("/:id", payableHandler.GetByID)
	payablesGroup.Put("/:id", payableHandler.Update)
	payablesGroup.Delete("/:id", payableHandler.Delete)
	payablesGroup.Delete("/:id/installments/:number", payableHandler.DeleteInstallment)
	payablesGroup.Patch("/:id/installments/:number/status", payableHandler.Transition)

	// Fornecedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/search", supplierHandler.Search)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Formas de pagamento
	methods := protected.Group("/payment-methods")
	methodHandler := NewPaymentMethodHandler(deps.PaymentMethodUC)
	methods.Post("/", methodHandler.Create)
	methods.Get("/", methodHandler.List)
	methods.Get("/:id", methodHandler.GetByID)
	methods.Put("/:id", methodHandler.Update)
	methods.Delete("/:id", methodHandler.Delete)

	// Contas correntes e plano de contas
	financeHandler := NewFinanceAccountHandler(deps.FinanceAccountUC)
	banks := protected.Group("/bank-accounts")
	banks.Post("/", financeHandler.CreateBankAccount)
	banks.Get("/", financeHandler.ListBankAccounts)
	banks.Put("/:id", financeHandler.UpdateBankAccount)
	banks.Delete("/:id", financeHandler.DeleteBankAccount)
	ledgers := protected.Group("/ledger-accounts")
	ledgers.Post("/", financeHandler.CreateLedgerAccount)
	ledgers.Get("/", financeHandler.ListLedgerAccounts)
	ledgers.Put("/:id", financeHandler.UpdateLedgerAccount)
	ledgers.Delete("/:id", financeHandler.DeleteLedgerAccount)

	// Estoque (zerar depósito é restrito a admin)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.DepotUC, deps.MovementUC)
	stockGroup.Post("/depots", stockHandler.CreateDepot)
	stockGroup.Get("/depots", stockHandler.ListDepots)
	stockGroup.Put("/depots/:id", stockHandler.UpdateDepot)
	stockGroup.Delete("/depots/:id", stockHandler.DeleteDepot)
	stockGroup.Get("/depots/:id/levels", stockHandler.Levels)
	stockGroup.Post("/depots/:id/zero", RequireRole(entity.RoleAdmin), stockHandler.ZeroDepot)
	stockGroup.Post("/movements", stockHandler.RegisterMovement)
	stockGroup.Get("/movements", stockHandler.Movements)

	// Quadro de internação
	stays := protected.Group("/hospitalizations")
	stayHandler := NewHospitalizationHandler(deps.HospitalizationUC)
	stays.Get("/board", stayHandler.Board)
	stays.Post("/", stayHandler.Create)
	stays.Get("/:id", stayHandler.GetByID)
	stays.Put("/:id", stayHandler.Update)
	stays.Delete("/:id", stayHandler.Delete)
}
