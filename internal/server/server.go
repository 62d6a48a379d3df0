package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/catalog/internal/category"
	categorydomain "github.com/smallbiznis/catalog/internal/category/domain"
	"github.com/smallbiznis/catalog/internal/config"
	obslogger "github.com/smallbiznis/catalog/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/catalog/internal/observability/metrics"
	"github.com/smallbiznis/catalog/internal/product"
	productdomain "github.com/smallbiznis/catalog/internal/product/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	category.Module,
	product.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

type Params struct {
	fx.In

	Cfg         config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	ProductSvc  productdomain.Service
	CategorySvc categorydomain.Service
}

type Server struct {
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	productSvc  productdomain.Service
	categorySvc categorydomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:         p.Cfg,
		db:          p.DB,
		log:         p.Log.Named("http.server"),
		productSvc:  p.ProductSvc,
		categorySvc: p.CategorySvc,
	}
}

func NewEngine(cfg config.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           !cfg.IsProduction(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerRoutes(s *Server, r *gin.Engine) {
	r.POST("/products", s.CreateProduct)
	r.GET("/products", s.ListProducts)
	r.GET("/products/:id", s.GetProductByID)
	r.PATCH("/products/:id", s.UpdateProduct)
	r.DELETE("/products/:id", s.DeleteProduct)

	r.POST("/categories", s.CreateCategory)
	r.GET("/categories", s.ListCategories)
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("http server shutting down")
			return srv.Shutdown(ctx)
		},
	})
}
