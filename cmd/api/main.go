package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"paradise/internal/config"
	"paradise/internal/database"
	"paradise/internal/middleware"
	"paradise/internal/modules/analytics"
	"paradise/internal/modules/auth"
	"paradise/internal/modules/content"
	"paradise/internal/modules/health"
	"paradise/internal/modules/lead"
	"paradise/internal/notify"
	jwtsvc "paradise/internal/pkg/jwt"
	"paradise/internal/pkg/ratelimit"
	"paradise/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// repositories
	leadRepo := repository.NewLeadRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	portfolioRepo := repository.NewPortfolioRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)

	// notification fan-out; unconfigured channels stay nil and are skipped
	var adminSender, replySender, chatSender notify.Sender
	if cfg.EmailConfigured() {
		adminSender = notify.NewAdminEmailSender(cfg)
		replySender = notify.NewAutoReplySender(cfg)
	} else {
		log.Println("email senders disabled: EMAIL_HOST_USER / ADMIN_EMAIL not set")
	}
	if cfg.TelegramConfigured() {
		chatSender = notify.NewTelegramSender(cfg)
	} else {
		log.Println("telegram sender disabled: TELEGRAM_BOT_TOKEN / TELEGRAM_CHAT_ID not set")
	}

	jwtService := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	// services
	leadService := lead.NewService(leadRepo, adminSender, replySender, chatSender, cfg.UploadDir, cfg.MaxUploadSize)
	analyticsService := analytics.NewService(analyticsRepo)
	contentService := content.NewService(portfolioRepo, productRepo)
	authService := auth.NewService(userRepo, jwtService)

	// handlers
	leadHandler := lead.NewHandler(leadService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	contentHandler := content.NewHandler(contentService)
	authHandler := auth.NewHandler(authService)
	healthHandler := health.NewHandler(db, cfg.EnableHealthCheck)

	// contact form rate limiter
	limiter := ratelimit.New(cfg.ContactRateLimit, cfg.ContactRateWindow)
	stopPruning := make(chan struct{})
	defer close(stopPruning)
	limiter.StartPruning(10*time.Minute, stopPruning)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// request access log only below WARNING; errors are always logged
	if !strings.EqualFold(cfg.LogLevel, "warning") && !strings.EqualFold(cfg.LogLevel, "error") {
		r.Use(gin.Logger())
	}
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.AllowedHosts(cfg.AllowedHosts))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.MaxMultipartMemory = cfg.MaxUploadSize

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Check)

		api.POST("/leads/submit", middleware.RateLimit(limiter), leadHandler.Submit)
		api.POST("/analytics/track", analyticsHandler.Track)

		api.GET("/content/portfolio", contentHandler.Portfolio)
		api.GET("/content/products", contentHandler.Products)
		api.GET("/content/products/:slug", contentHandler.ProductBySlug)

		api.POST("/auth/login", authHandler.Login)
	}

	admin := api.Group("/admin", middleware.JWTAuth(jwtService))
	{
		admin.GET("/me", authHandler.Me)

		admin.GET("/leads", leadHandler.List)
		admin.GET("/leads/stats", leadHandler.Stats)
		admin.GET("/leads/export", leadHandler.Export)
		admin.GET("/leads/:id", leadHandler.Get)
		admin.PATCH("/leads/:id", leadHandler.Update)
		admin.DELETE("/leads/:id", leadHandler.Delete)

		admin.GET("/analytics/dashboard", analyticsHandler.Dashboard)
		admin.GET("/analytics/report", analyticsHandler.Report)

		admin.GET("/portfolio", contentHandler.AdminListPortfolio)
		admin.POST("/portfolio", contentHandler.AdminCreatePortfolio)
		admin.GET("/portfolio/:id", contentHandler.AdminGetPortfolio)
		admin.PUT("/portfolio/:id", contentHandler.AdminUpdatePortfolio)
		admin.DELETE("/portfolio/:id", contentHandler.AdminDeletePortfolio)

		admin.GET("/products", contentHandler.AdminListProducts)
		admin.POST("/products", contentHandler.AdminCreateProduct)
		admin.GET("/products/:id", contentHandler.AdminGetProduct)
		admin.PUT("/products/:id", contentHandler.AdminUpdateProduct)
		admin.DELETE("/products/:id", contentHandler.AdminDeleteProduct)
		admin.POST("/products/:id/images", contentHandler.AdminAddProductImage)
		admin.DELETE("/products/:id/images/:imageId", contentHandler.AdminDeleteProductImage)
	}

	// uploaded lead attachments and media
	r.Static("/media", cfg.UploadDir)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
