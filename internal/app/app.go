package app

import (
	"context"
	"edu_agent_backend/internal/config"
	"edu_agent_backend/internal/controller"
	"edu_agent_backend/internal/repository"
	"edu_agent_backend/internal/service"
	"edu_agent_backend/pkg/database"
	"edu_agent_backend/pkg/logger"
	"edu_agent_backend/pkg/monitoring"
	"edu_agent_backend/pkg/security"
	"edu_agent_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

// ApplyConfig picks up hot-reloadable settings. Only the AI endpoint is
// swapped at runtime; server, database and redis changes need a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config.AI = cfg.AI
	a.services.ai.UpdateConfig(cfg.AI)
	logger.Log.Info("configuration reloaded", zap.String("aiModel", cfg.AI.Model))
}

type repositories struct {
	student   *repository.StudentRepository
	record    *repository.RecordRepository
	session   *repository.SessionRepository
	worksheet *repository.WorksheetRepository
	doubt     *repository.DoubtRepository
}

type services struct {
	ai        *service.AIService
	profile   *service.ProfileService
	student   *service.StudentService
	session   *service.SessionService
	worksheet *service.WorksheetService
	doubt     *service.DoubtService
	insights  *service.InsightsService
}

type controllers struct {
	student   *controller.StudentController
	profile   *controller.ProfileController
	session   *controller.SessionController
	worksheet *controller.WorksheetController
	doubt     *controller.DoubtController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		student:   repository.NewStudentRepository(db),
		record:    repository.NewRecordRepository(db),
		session:   repository.NewSessionRepository(db),
		worksheet: repository.NewWorksheetRepository(db),
		doubt:     repository.NewDoubtRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.ai = service.NewAIService(cfg.AI)
	s.profile = service.NewProfileService(repos.student, repos.record, rdb, cfg.Profile.CacheTTL(), logger.Log)
	s.student = service.NewStudentService(repos.student, repos.record, s.profile, logger.Log)
	s.session = service.NewSessionService(repos.session, s.profile, s.ai, logger.Log)
	s.worksheet = service.NewWorksheetService(repos.worksheet, s.profile, s.ai, logger.Log)
	s.doubt = service.NewDoubtService(repos.doubt, s.student, s.profile, s.ai, logger.Log)
	s.insights = service.NewInsightsService(s.student, s.profile)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		student:   controller.NewStudentController(s.student),
		profile:   controller.NewProfileController(s.student, s.profile, s.insights),
		session:   controller.NewSessionController(s.session),
		worksheet: controller.NewWorksheetController(s.worksheet),
		doubt:     controller.NewDoubtController(s.doubt),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("edu-agent", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
