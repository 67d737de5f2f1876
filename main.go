package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"

	"github.com/sagnik22dey/RoasGuy/config"
	"github.com/sagnik22dey/RoasGuy/controllers"
	"github.com/sagnik22dey/RoasGuy/logger"
	"github.com/sagnik22dey/RoasGuy/metrics"
	"github.com/sagnik22dey/RoasGuy/middleware"
	"github.com/sagnik22dey/RoasGuy/routes"
	"github.com/sagnik22dey/RoasGuy/services"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	catalog := config.LoadCatalog()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()
	log := logger.Log

	// Missing credentials are logged, not fatal: the page routes must stay
	// up even when the payment path is misconfigured. The affected API
	// calls fail when invoked.
	if cfg.PaymentsConfigured() {
		log.Info("Razorpay credentials loaded", zap.String("key_id", maskKey(cfg.RazorpayKeyID)))
	} else {
		log.Warn("Razorpay credentials NOT loaded; order creation and verification will fail")
	}
	if cfg.EnrollmentConfigured() {
		log.Info("Graphy credentials loaded", zap.String("mid", maskKey(cfg.GraphyMID)))
	} else {
		log.Warn("Graphy credentials NOT loaded; enrollment calls will fail")
	}

	metrics.Register()

	rzpClient := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	orderSvc := services.NewOrderService(rzpClient.Order, cfg.RazorpayKeyID, catalog, log)

	graphy := services.NewGraphyClient(cfg.GraphyMID, cfg.GraphyAPIKey, catalog, log)
	queue := services.NewEnrollmentQueue(graphy, cfg.EnrollmentQueueSize, cfg.EnrollmentWorkers, log)
	queue.Start(context.Background())

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	pages := controllers.NewPageController(cfg.ComponentsDir, log)
	payments := &controllers.PaymentController{
		Orders:    orderSvc,
		Queue:     queue,
		KeyID:     cfg.RazorpayKeyID,
		KeySecret: cfg.RazorpayKeySecret,
		Logger:    log,
	}
	routes.Register(r, pages, payments, cfg)

	log.Info("RoasGuy backend running", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed", zap.Error(err))
	}
}

// maskKey keeps the first few characters of a credential for log
// correlation without leaking it.
func maskKey(key string) string {
	if len(key) <= 6 {
		return "******"
	}
	return key[:6] + "..."
}
