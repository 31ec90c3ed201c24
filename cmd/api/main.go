package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/school-api/internal/config"
	"github.com/yourusername/school-api/internal/handler"
	"github.com/yourusername/school-api/internal/middleware"
	pgRepo "github.com/yourusername/school-api/internal/repository/postgres"
	"github.com/yourusername/school-api/internal/service"
	"github.com/yourusername/school-api/pkg/auth"
	"github.com/yourusername/school-api/pkg/database"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Loading configuration from %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Repositories
	userRepo := pgRepo.NewUserRepo(db)
	otpRepo := pgRepo.NewPasswordResetOTPRepo(db)
	refreshTokenRepo := pgRepo.NewRefreshTokenRepo(db)
	attendanceRepo := pgRepo.NewAttendanceRepo(db)
	studentRepo := pgRepo.NewStudentRepo(db)
	markRepo := pgRepo.NewStudentMarkRepo(db)
	admissionRepo := pgRepo.NewAdmissionRepo(db)
	eventPostRepo := pgRepo.NewEventPostRepo(db)
	shortsRepo := pgRepo.NewShortsRepo(db)
	supportMessageRepo := pgRepo.NewSupportMessageRepo(db)

	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Email delivery falls back to log-only when no API key is set.
	var emailService service.EmailService
	if cfg.Email.ResendAPIKey != "" {
		emailService, err = service.NewResendEmailService(cfg.Email.ResendAPIKey, cfg.Email.From)
		if err != nil {
			log.Printf("Failed to initialize email service: %v", err)
			os.Exit(1)
		}
	} else {
		log.Println("RESEND_API_KEY not set, emails will only be logged")
		emailService = &service.NoopEmailService{}
	}

	// Services
	authService, err := service.NewAuthService(userRepo, refreshTokenRepo, jwtService,
		time.Duration(cfg.JWT.RefreshLifetimeHrs)*time.Hour)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}

	// Background cleanup of expired refresh tokens, stopped on shutdown.
	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		log.Println("Starting periodic cleanup of expired refresh tokens (every hour)")

		for {
			select {
			case <-ticker.C:
				if err := authService.CleanupExpiredTokens(); err != nil {
					log.Printf("Failed to clean up expired refresh tokens: %v", err)
				}
			case <-cleanupCtx.Done():
				log.Println("Stopping refresh token cleanup goroutine")
				return
			}
		}
	}()

	resetService, err := service.NewPasswordResetService(userRepo, otpRepo, refreshTokenRepo,
		emailService, cfg.Email.ResetBaseURL)
	if err != nil {
		log.Printf("Failed to initialize PasswordResetService: %v", err)
		os.Exit(1)
	}

	attendanceService, err := service.NewAttendanceService(attendanceRepo)
	if err != nil {
		log.Printf("Failed to initialize AttendanceService: %v", err)
		os.Exit(1)
	}

	studentService, err := service.NewStudentService(studentRepo)
	if err != nil {
		log.Printf("Failed to initialize StudentService: %v", err)
		os.Exit(1)
	}

	markService, err := service.NewMarkService(markRepo)
	if err != nil {
		log.Printf("Failed to initialize MarkService: %v", err)
		os.Exit(1)
	}

	admissionService, err := service.NewAdmissionService(admissionRepo)
	if err != nil {
		log.Printf("Failed to initialize AdmissionService: %v", err)
		os.Exit(1)
	}

	eventService, err := service.NewEventService(eventPostRepo, cfg.Uploads.Dir)
	if err != nil {
		log.Printf("Failed to initialize EventService: %v", err)
		os.Exit(1)
	}

	shortsService, err := service.NewShortsService(shortsRepo, cfg.Uploads.Dir)
	if err != nil {
		log.Printf("Failed to initialize ShortsService: %v", err)
		os.Exit(1)
	}

	supportService, err := service.NewSupportService(supportMessageRepo, cfg.OpenAI.APIKey)
	if err != nil {
		log.Printf("Failed to initialize SupportService: %v", err)
		os.Exit(1)
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	resetHandler := handler.NewPasswordResetHandler(resetService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService, studentService)
	markHandler := handler.NewMarkHandler(markService)
	admissionHandler := handler.NewAdmissionHandler(admissionService)
	eventHandler := handler.NewEventHandler(eventService)
	shortsHandler := handler.NewShortsHandler(shortsService)
	chatHandler := handler.NewChatHandler(supportService)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	rateLimiter := middleware.NewRateLimiter(redisClient)
	loginLimit := rateLimiter.Limit(middleware.LoginRateLimitConfig())
	otpLimit := rateLimiter.Limit(middleware.OTPRateLimitConfig())

	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded flyers and videos
	router.Static("/uploads", cfg.Uploads.Dir)

	api := router.Group("/api")
	{
		// Admin auth
		api.POST("/admin-login/", loginLimit, authHandler.Login)
		api.POST("/token/refresh/", authHandler.Refresh)

		// Password reset
		api.POST("/admin-forgot-password/", otpLimit, resetHandler.ForgotPassword)
		api.POST("/admin-send-otp/", otpLimit, resetHandler.SendOTP)
		api.POST("/admin-verify-otp/", otpLimit, resetHandler.VerifyOTP)
		api.POST("/admin-reset-password/", otpLimit, resetHandler.ResetPassword)

		// Public endpoints
		api.POST("/admission/", admissionHandler.Submit)
		api.GET("/posts/", eventHandler.List)
		api.GET("/posts/:id/", eventHandler.Get)
		api.GET("/shorts/", shortsHandler.List)
		api.GET("/shorts/:id/", shortsHandler.Get)
		api.POST("/ai-chat/", chatHandler.Ask)

		// Admin-only endpoints
		admin := api.Group("/")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.AdminOnly())
		{
			admin.GET("admin-dashboard/", authHandler.Dashboard)
			admin.GET("admissiondata/", admissionHandler.List)

			admin.POST("save-attendance/", attendanceHandler.Save)
			admin.GET("get-attendance/", attendanceHandler.Get)
			admin.GET("attendance-summary/", attendanceHandler.Summary)
			admin.PUT("attendance/:id/", attendanceHandler.Update)
			admin.DELETE("attendance/:id/", attendanceHandler.Delete)

			admin.GET("students/", attendanceHandler.ListStudents)
			admin.POST("students/", attendanceHandler.AddStudent)
			admin.DELETE("students/:id/", attendanceHandler.RemoveStudent)

			admin.GET("marks/", markHandler.List)
			admin.POST("marks/", markHandler.Create)
			admin.GET("marks/export/", markHandler.Export)
			admin.DELETE("marks/clear_all/", markHandler.ClearAll)
			admin.DELETE("marks/clear_division/:division/", markHandler.ClearDivision)
			admin.PUT("marks/:id/", markHandler.Update)
			admin.DELETE("marks/:id/", markHandler.Delete)

			admin.POST("posts/", eventHandler.Create)
			admin.DELETE("posts/:id/", eventHandler.Delete)

			admin.POST("shorts/", shortsHandler.Create)
			admin.DELETE("shorts/:id/", shortsHandler.Delete)

			admin.GET("ai-chat/history/", chatHandler.History)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	cleanupCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
