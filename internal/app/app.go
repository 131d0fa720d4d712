package app

import (
	"ai_survey_backend/internal/config"
	"ai_survey_backend/internal/controller"
	"ai_survey_backend/internal/repository"
	"ai_survey_backend/internal/service"
	"ai_survey_backend/internal/web"
	"ai_survey_backend/pkg/configwatcher"
	"ai_survey_backend/pkg/database"
	"ai_survey_backend/pkg/logger"
	"ai_survey_backend/pkg/monitoring"
	"ai_survey_backend/pkg/security"
	"ai_survey_backend/pkg/tracing"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type App struct {
	Config      *config.Config
	Router      *gin.Engine
	DB          *gorm.DB
	sessions    *service.SurveySessionService
	rateLimiter *security.RateLimiter
	tracer      *sdktrace.TracerProvider
}

type controllers struct {
	survey *controller.SurveyController
	page   *controller.PageController
	health *controller.HealthController
}

func (a *App) initControllers(sessions *service.SurveySessionService, db *gorm.DB) *controllers {
	return &controllers{
		survey: controller.NewSurveyController(sessions),
		page:   controller.NewPageController(sessions),
		health: controller.NewHealthController(db, sessions),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(a.rateLimiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware(cfg.Tracing.ServiceName))
	}

	router.Use(monitoring.MetricsMiddleware())
}

// applyConfig 配置热更新：只调整日志级别和限流，其余配置需重启生效
func (a *App) applyConfig(cfg *config.Config) {
	logger.SetMode(cfg.Server.Mode)
	a.rateLimiter.SetLimit(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
	logger.Log.Info("Applied reloaded config",
		zap.String("mode", cfg.Server.Mode),
		zap.Int("rate_limit", cfg.RateLimit.MaxRequests),
		zap.Duration("rate_window", cfg.RateLimit.Window()),
	)
}

// NewApp 初始化依赖；仅迁移模式下只建表不组装路由
func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate {
		if err := database.Migrate(db, cfg.Survey.Collection); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	if cfg.MigrateOnly {
		return app
	}

	repo := repository.NewSurveyResponseRepository(db)
	app.sessions = service.NewSurveySessionService(repo, cfg.Survey)
	app.rateLimiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
	controllers := app.initControllers(app.sessions, db)

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	app.Router = router

	tmpl, err := web.Templates()
	if err != nil {
		logger.Log.Fatal("Failed to parse page templates", zap.Error(err))
	}
	router.SetHTMLTemplate(tmpl)

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	// 启动服务器
	g.Go(func() error {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		a.sessions.Run(gctx)
		return nil
	})

	g.Go(func() error {
		a.rateLimiter.Run(gctx)
		return nil
	})

	g.Go(func() error {
		return configwatcher.WatchConfig(gctx, a.Config.ConfigDir, a.applyConfig)
	})

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if a.tracer != nil {
			if err := a.tracer.Shutdown(shutdownCtx); err != nil {
				logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server stopped with error", zap.Error(err))
	}
	logger.Log.Info("Server exiting")
}
