// Package server exposes the emission pipeline over HTTP. Thin layer:
// bind JSON, call the pipeline, map errors. Batch emission and rate
// limiting against the authority stay with the caller.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rezonia/nfce-engine/internal/accesskey"
	"github.com/rezonia/nfce-engine/internal/emitter"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	pipeline *emitter.Pipeline
	logger   *zap.Logger
}

// NewServer creates a new API server around the given pipeline. A nil
// logger disables logging.
func NewServer(config *Config, pipeline *emitter.Pipeline, logger *zap.Logger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if pipeline == nil {
		pipeline = emitter.NewPipeline()
	}

	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		config:   config,
		router:   router,
		pipeline: pipeline,
		logger:   logger,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/emit", s.handleEmit)
		v1.POST("/accesskey/verify", s.handleVerifyKey)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleEmit(c *gin.Context) {
	var req EmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	result, err := s.pipeline.Emit(c.Request.Context(), req.Order, req.Issuer, req.Authority, req.TechResp, req.Emission)
	if err != nil {
		s.logger.Error("emission failed",
			zap.String("order_id", req.Order.ID),
			zap.Int64("number", req.Emission.Number),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "emission failed", Details: err.Error()})
		return
	}

	s.logger.Info("document emitted",
		zap.String("order_id", req.Order.ID),
		zap.String("access_key", result.AccessKey))

	c.JSON(http.StatusOK, EmitResponse{
		XML:        result.XML,
		AccessKey:  result.AccessKey,
		DocumentID: result.DocumentID,
		QRCode:     result.QRCode,
		ConsultURL: result.ConsultURL,
	})
}

func (s *Server) handleVerifyKey(c *gin.Context) {
	var req VerifyKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	if !accesskey.Verify(req.Key) {
		c.JSON(http.StatusOK, VerifyKeyResponse{Valid: false})
		return
	}

	seg := accesskey.Key(req.Key).Segments()
	c.JSON(http.StatusOK, VerifyKeyResponse{
		Valid: true,
		Segments: &KeySegments{
			UF:           seg.UF,
			YearMonth:    seg.YearMonth,
			CNPJ:         seg.CNPJ,
			Model:        seg.Model,
			Series:       seg.Series,
			Number:       seg.Number,
			EmissionType: seg.EmissionType,
			RandomCode:   seg.RandomCode,
			CheckDigit:   seg.CheckDigit,
		},
	})
}
