package main

import (
	"context"
	"net/http"
	"time"

	"github.com/csprep/backend/config"
	"github.com/csprep/backend/database"
	_ "github.com/csprep/backend/docs" // Swagger docs - auto-generated
	"github.com/csprep/backend/internal/controller"
	"github.com/csprep/backend/internal/logger"
	"github.com/csprep/backend/internal/middleware"
	"github.com/csprep/backend/internal/model"
	"github.com/csprep/backend/internal/repository"
	"github.com/csprep/backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CS Prep Assessment API
// @version 1.0
// @description MCQ question bank, randomized quiz sampling and per-user rolling statistics.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewResultRepository,
			repository.NewProfileRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.DefaultSubjectTable,
			service.NewSubjectNormalizer,
			service.NewDifficultyClassifier,
			service.NewScorerService,
			service.NewStatsService,
			service.NewQuestionBankService,
			service.NewAssessmentService,
			service.NewProfileService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewAssessmentController,
			controller.NewProfileController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
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
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	assessmentCtrl *controller.AssessmentController,
	profileCtrl *controller.ProfileController,
) {
	api := router.Group("/api/v1")

	assessment := api.Group("/assessment")
	{
		assessment.GET("/overview", assessmentCtrl.GetOverview)
		assessment.GET("/questions", assessmentCtrl.GetQuestions)
		assessment.POST("/seed-csv", assessmentCtrl.SeedFromCSV)

		authed := assessment.Group("", middleware.RequireAuth(cfg.JWTSecret))
		authed.POST("/submit", assessmentCtrl.SubmitAssessment)
		authed.GET("/result/:result_id", assessmentCtrl.GetResultDetail)
	}

	profile := api.Group("/profile", middleware.RequireAuth(cfg.JWTSecret))
	{
		profile.GET("/me", profileCtrl.GetMyProfile)
		profile.GET("/history", profileCtrl.GetHistory)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assessment API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.UserProfile{},
		&model.Question{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
