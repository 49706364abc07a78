package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raizvet/backoffice-api/internal/application/auth"
	"github.com/raizvet/backoffice-api/internal/application/payables"
	"github.com/raizvet/backoffice-api/internal/application/stock"
	"github.com/raizvet/backoffice-api/internal/application/usecase"
	"github.com/raizvet/backoffice-api/internal/infrastructure/events"
	infraexcel "github.com/raizvet/backoffice-api/internal/infrastructure/excel"
	"github.com/raizvet/backoffice-api/internal/infrastructure/metrics"
	infrapdf "github.com/raizvet/backoffice-api/internal/infrastructure/pdf"
	"github.com/raizvet/backoffice-api/internal/infrastructure/postgres"
	httpRouter "github.com/raizvet/backoffice-api/internal/interfaces/http"
	"github.com/raizvet/backoffice-api/pkg/config"
	"github.com/raizvet/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(pool)
	bankAccountRepo := postgres.NewBankAccountRepository(pool)
	ledgerAccountRepo := postgres.NewLedgerAccountRepository(pool)
	payableRepo := postgres.NewPayableRepository(pool)
	depotRepo := postgres.NewDepotRepository(pool)
	levelRepo := postgres.NewStockLevelRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	stayRepo := postgres.NewHospitalizationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Publisher de eventos: AMQP_URL vazia desliga a publicação.
	var publisher payables.EventPublisher = events.NoopPublisher{}
	if cfg.AMQP.URL != "" {
		amqpPub, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao broker AMQP")
		}
		defer amqpPub.Close()
		publisher = amqpPub
	} else {
		log.Warn().Msg("AMQP_URL não definida, eventos de status desligados")
	}

	recorder := metrics.NewPrometheusRecorder(nil)

	payableUC := payables.NewPayableUseCase(
		payableRepo, supplierRepo, paymentMethodRepo, bankAccountRepo, ledgerAccountRepo,
	)
	lifecycleUC := payables.NewLifecycleUseCase(payableRepo, supplierRepo, publisher, recorder)
	agendaUC := payables.NewAgendaUseCase(
		payableRepo, recorder,
		infrapdf.NewAgendaReport(cfg.App.Name),
		infraexcel.NewAgendaExport(),
	)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	paymentMethodUC := usecase.NewPaymentMethodUseCase(paymentMethodRepo)
	financeAccountUC := usecase.NewFinanceAccountUseCase(bankAccountRepo, ledgerAccountRepo)
	depotUC := usecase.NewDepotUseCase(depotRepo)
	movementUC := stock.NewMovementUseCase(txRunner, depotRepo, levelRepo, movementRepo)
	hospitalizationUC := usecase.NewHospitalizationUseCase(stayRepo)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PayableUC:         payableUC,
		LifecycleUC:       lifecycleUC,
		AgendaUC:          agendaUC,
		SupplierUC:        supplierUC,
		PaymentMethodUC:   paymentMethodUC,
		FinanceAccountUC:  financeAccountUC,
		DepotUC:           depotUC,
		MovementUC:        movementUC,
		HospitalizationUC: hospitalizationUC,
		AuthUC:            authUC,
		JWTSecret:         cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
