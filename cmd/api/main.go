package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/engineering-compass-api/api/swagger"
	"github.com/noah-isme/engineering-compass-api/internal/handler"
	"github.com/noah-isme/engineering-compass-api/internal/llm"
	"github.com/noah-isme/engineering-compass-api/internal/middleware"
	"github.com/noah-isme/engineering-compass-api/internal/repository"
	"github.com/noah-isme/engineering-compass-api/internal/service"
	"github.com/noah-isme/engineering-compass-api/pkg/cache"
	"github.com/noah-isme/engineering-compass-api/pkg/config"
	"github.com/noah-isme/engineering-compass-api/pkg/database"
	"github.com/noah-isme/engineering-compass-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/engineering-compass-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/engineering-compass-api/pkg/middleware/requestid"
)

// @title Engineering Compass API
// @version 1.0.0
// @description Career guidance backend for engineering students
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsService := service.NewMetricsService()

	var cacheService *service.CacheService
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheService = service.NewCacheService(cacheRepo, metricsService, cfg.Dashboard.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	studentRepo := repository.NewStudentRepository(db)
	generator := llm.NewClient(llm.Params{Config: cfg.Advisor, Logger: logr})

	authService := service.NewAuthService(service.AuthServiceParams{
		Repo:   studentRepo,
		Cache:  cacheService,
		Logger: logr,
		Config: cfg.JWT,
	})
	studentService := service.NewStudentService(service.StudentServiceParams{
		Repo:     studentRepo,
		Cache:    cacheService,
		Logger:   logr,
		CacheTTL: cfg.Dashboard.CacheTTL,
	})
	skillsService := service.NewSkillsService(service.SkillsServiceParams{
		Repo:      studentRepo,
		Cache:     cacheService,
		Generator: generator,
		Logger:    logr,
	})
	careerService := service.NewCareerService(service.CareerServiceParams{
		Repo:   studentRepo,
		Cache:  cacheService,
		Logger: logr,
	})
	communityService := service.NewCommunityService(service.CommunityServiceParams{
		Repo:   studentRepo,
		Cache:  cacheService,
		Logger: logr,
	})
	advisorService := service.NewAdvisorService(service.AdvisorServiceParams{
		Repo:      studentRepo,
		Cache:     cacheService,
		Generator: generator,
		Logger:    logr,
	})

	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService)
	skillsHandler := handler.NewSkillsHandler(skillsService)
	careerHandler := handler.NewCareerHandler(careerService)
	communityHandler := handler.NewCommunityHandler(communityService)
	advisorHandler := handler.NewAdvisorHandler(advisorService)
	metricsHandler := handler.NewMetricsHandler(metricsService)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsService))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", middleware.JWT(authService), authHandler.Me)
		auth.PUT("/profile", middleware.JWT(authService), authHandler.UpdateProfile)
		auth.POST("/interest-quiz", middleware.JWT(authService), authHandler.InterestQuiz)
	}

	students := api.Group("/students", middleware.JWT(authService))
	{
		students.GET("/dashboard", studentHandler.Dashboard)
		students.PUT("/cgpa", studentHandler.UpdateCGPA)
		students.GET("/cgpa/export", studentHandler.ExportCGPA)
		students.POST("/timeline-goals", studentHandler.SetTimelineGoals)
		students.PUT("/timeline-goals/:semester/:goalId", studentHandler.ToggleGoal)
		students.POST("/weekly-focus", studentHandler.SetWeeklyFocus)
		students.PUT("/weekly-focus/:taskId", studentHandler.ToggleTask)
		students.POST("/initialize-sample-data", studentHandler.InitializeSampleData)
		students.GET("/opportunities", studentHandler.Opportunities)
	}

	skills := api.Group("/skills", middleware.JWT(authService))
	{
		skills.GET("/learning-paths", skillsHandler.LearningPaths)
		skills.POST("/assessment", skillsHandler.SubmitAssessment)
		skills.GET("/recommended", skillsHandler.Recommended)
		skills.GET("/progress", skillsHandler.PathsProgress)
		skills.POST("/start-path", skillsHandler.StartPath)
		skills.POST("/complete-step", skillsHandler.CompleteStep)
		skills.POST("/add-goal", skillsHandler.AddGoal)
		skills.POST("/ai-assessment", skillsHandler.AIAssessment)
	}

	career := api.Group("/career", middleware.JWT(authService))
	{
		career.POST("/resume", careerHandler.UpdateResume)
		career.GET("/resume/export", careerHandler.ExportResume)
		career.GET("/companies", careerHandler.Companies)
		career.GET("/mock-interview", careerHandler.MockInterview)
		career.POST("/interview-feedback", careerHandler.InterviewFeedback)
	}

	community := api.Group("/community", middleware.JWT(authService))
	{
		community.GET("/students", communityHandler.Cohort)
		community.POST("/connect", communityHandler.Connect)
		community.GET("/connections", communityHandler.Connections)
		community.PUT("/connections/:connectionId", communityHandler.DecideConnection)
		community.GET("/forums", communityHandler.Forums)
		community.GET("/events", communityHandler.Events)
	}

	ai := api.Group("/ai", middleware.JWT(authService))
	{
		ai.POST("/recommendations", advisorHandler.Recommendations)
		ai.POST("/chat", advisorHandler.Chat)
		ai.POST("/weekly-focus", advisorHandler.WeeklyFocus)
		ai.POST("/project-ideas", advisorHandler.ProjectIdeas)
		ai.POST("/resume-enhancement", advisorHandler.EnhanceResume)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
