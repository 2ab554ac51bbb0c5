package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aurumprivate/aurum-leads/internal/infra/database"
	"github.com/aurumprivate/aurum-leads/internal/infra/http/handlers"
	appmiddleware "github.com/aurumprivate/aurum-leads/internal/infra/http/middleware"
	"github.com/aurumprivate/aurum-leads/internal/infra/mail"
	"github.com/aurumprivate/aurum-leads/internal/infra/notify"
	"github.com/aurumprivate/aurum-leads/internal/infra/queue"
	"github.com/aurumprivate/aurum-leads/internal/infra/worker"
	"github.com/aurumprivate/aurum-leads/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositórios
	leadRepo := database.NewLeadRepository(db)
	followUpRepo := database.NewFollowUpRepository(db)

	// 2. Canais de alerta
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	var emailSender queue.AlertSender
	if os.Getenv("MAIL_HOST") != "" {
		emailSender = mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), 587,
			os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
			os.Getenv("ALERT_TO"),
		)
	}

	var webhookSender queue.AlertSender
	if webhook := notify.NewClient(); webhook.Configured() {
		webhookSender = webhook
	}

	// 3. Worker de alertas (consome a fila e entrega email/webhook)
	alertWorker := queue.NewWorker(rabbitMQ.Ch, emailSender, webhookSender)
	go alertWorker.Start(queue.QueueName)

	// 4. UseCases
	addLeadUC := usecase.NewAddLeadUseCase(leadRepo, followUpRepo, producer)
	checkFollowUpsUC := usecase.NewCheckFollowUpsUseCase(leadRepo, followUpRepo, producer)
	dashboardUC := usecase.NewDashboardUseCase(leadRepo, followUpRepo)

	// 5. Worker de follow-ups (varredura periódica, cancelável)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	followUpWorker := worker.NewFollowUpWorker(checkFollowUpsUC, tickIntervalFromEnv())
	go followUpWorker.Start(ctx)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(addLeadUC, leadRepo)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// 7. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://aurumprivate.com", "*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/leads", leadHandler.CaptureLead)
	r.Get("/leads", leadHandler.ListByCategory)
	r.Get("/dashboard", dashboardHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + envOr("PORT", "8080")
	srv := &http.Server{Addr: port, Handler: r}

	go func() {
		log.Printf("🔥 Aurum Leads API rodando na porta %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func tickIntervalFromEnv() time.Duration {
	raw := os.Getenv("FOLLOWUP_TICK_INTERVAL")
	if raw == "" {
		return 0 // usa o default do worker (60s)
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️ FOLLOWUP_TICK_INTERVAL inválido (%q), usando default", raw)
		return 0
	}
	return d
}
