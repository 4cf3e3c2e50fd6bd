package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/intervu/config"
	"github.com/lshigami/intervu/database"
	_ "github.com/lshigami/intervu/docs" // Swagger docs
	"github.com/lshigami/intervu/internal/controller"
	adminctrl "github.com/lshigami/intervu/internal/controller/admin"
	userctrl "github.com/lshigami/intervu/internal/controller/user"
	"github.com/lshigami/intervu/internal/logger"
	"github.com/lshigami/intervu/internal/metrics"
	"github.com/lshigami/intervu/internal/middleware"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/lshigami/intervu/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Interview Practice Feedback API
// @version 1.0
// @description Stores AI-evaluated mock interview attempts and serves interview and feedback history.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewStores, // Interview and feedback repositories plus a Pinger
			NewGinEngine,
		),

		fx.Provide(
			service.NewGeminiEvaluator,
			service.NewFeedbackService,
			func(ir repository.InterviewRepository, fr repository.FeedbackRepository, cfg *config.Config) service.InterviewService {
				return service.NewInterviewService(ir, fr, cfg.AvailableLimit)
			},
		),

		fx.Provide(
			userctrl.NewFeedbackController,
			userctrl.NewInterviewController,
			adminctrl.NewAdminInterviewController,
			controller.NewHealthController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // zerolog already wrote the line
	}))
	r.Use(gin.Recovery())
	r.Use(metrics.GinMiddleware())
	r.Use(middleware.SecureHeaders())

	corsCfg := cors.Config{
		AllowOrigins:  cfg.Server.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 || corsCfg.AllowOrigins[0] == "*" {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", metrics.Handler())

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	feedbackCtrl *userctrl.FeedbackController,
	interviewCtrl *userctrl.InterviewController,
	adminInterviewCtrl *adminctrl.AdminInterviewController,
	healthCtrl *controller.HealthController,
) {
	router.GET("/healthz", healthCtrl.Health)

	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/interviews", adminInterviewCtrl.CreateInterview)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/healthz", healthCtrl.Health)
		userAPIGroup.GET("/interviews", interviewCtrl.GetUserInterviews)
		userAPIGroup.GET("/interviews/:interview_id", interviewCtrl.GetInterview)
		userAPIGroup.GET("/available-interviews", interviewCtrl.GetAvailableInterviews)
		userAPIGroup.GET("/users/:user_id/history", interviewCtrl.GetInterviewHistory)

		userAPIGroup.GET("/feedback", feedbackCtrl.GetFeedbacks)
		userAPIGroup.POST("/feedback", middleware.EvaluationRateLimit(cfg.FeedbackRateLimit), feedbackCtrl.CreateFeedback)
		userAPIGroup.GET("/feedback/latest", feedbackCtrl.GetLatestFeedback)
		userAPIGroup.GET("/attempts/:feedback_id", feedbackCtrl.GetFeedbackAttempt)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Interview feedback API starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
