package server

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/config"
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/server/handlers"
	"github.com/DdhawanAllyGPO/order-comparison-tool/internal/store"
)

//go:embed static
var staticFiles embed.FS

// Server is the HTTP server for the comparison tool.
type Server struct {
	router *gin.Engine
	store  *store.Store
	api    *handlers.Handlers
}

// NewServer creates the server with an empty session store.
func NewServer(cfg *config.AppConfig) *Server {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	sessionStore := store.New()

	s := &Server{
		router: gin.Default(),
		store:  sessionStore,
		api:    handlers.NewHandlers(sessionStore, cfg.MaxUploadBytes()),
	}

	s.setupRoutes()

	return s
}

// setupRoutes wires the API and the embedded page.
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	api := s.router.Group("/api")
	{
		api.POST("/upload/:kind", s.api.UploadFile)
		api.GET("/status", s.api.GetStatus)
		api.GET("/report", s.api.GetReport)
		api.GET("/report/csv", s.api.DownloadCSV)
		api.DELETE("/uploads", s.api.Reset)
	}

	s.router.GET("/", func(c *gin.Context) {
		data, err := staticFiles.ReadFile("static/index.html")
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run starts the server.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// GetStore returns the session store (used by tests).
func (s *Server) GetStore() *store.Store {
	return s.store
}
