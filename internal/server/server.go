// Package server wires the HTTP surface over the invoice and report services.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jesus-or/facturas/internal/config"
	"github.com/jesus-or/facturas/internal/invoice"
	invoicedomain "github.com/jesus-or/facturas/internal/invoice/domain"
	"github.com/jesus-or/facturas/internal/observability"
	"github.com/jesus-or/facturas/internal/providers/pdftext"
	"github.com/jesus-or/facturas/internal/report"
	reportdomain "github.com/jesus-or/facturas/internal/report/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	observability.Module,
	pdftext.Module,
	invoice.Module,
	report.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *observability.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(observability.GinMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, metrics *observability.Metrics) *gin.Engine {
	return NewEngine(log, metrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	invoiceSvc invoicedomain.Service
	reportSvc  reportdomain.Service
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	InvoiceSvc invoicedomain.Service
	ReportSvc  reportdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		invoiceSvc: p.InvoiceSvc,
		reportSvc:  p.ReportSvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Invoices --------
	api.POST("/invoices", s.UploadInvoice)
	api.POST("/invoices/text", s.IngestInvoiceText)
	api.GET("/invoices", s.ListInvoices)

	// -------- Reports --------
	api.GET("/reports/monthly", s.GetMonthlyReport)
	api.GET("/reports/services", s.GetServiceReport)
}
