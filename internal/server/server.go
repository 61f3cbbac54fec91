// Package server exposes the badge preview dashboard.
package server

import (
	"embed"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/aggregator"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/hub"
	"github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/runlog"
)

//go:embed all:web
var webFS embed.FS

// Server holds the Gin engine and dependencies for the preview dashboard.
type Server struct {
	engine     *gin.Engine
	hub        *hub.Hub
	aggregator *aggregator.Aggregator
	dir        string
	port       string
}

// New creates the dashboard server over the given output directory.
func New(h *hub.Hub, agg *aggregator.Aggregator, dir, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	s := &Server{
		engine:     engine,
		hub:        h,
		aggregator: agg,
		dir:        dir,
		port:       port,
	}

	s.setupRoutes()
	return s
}

// serveEmbedded reads a file from the embedded FS and writes it with the
// given content type. The file is read once at startup.
func serveEmbedded(webContent fs.FS, name string, contentType string) gin.HandlerFunc {
	data, err := fs.ReadFile(webContent, name)
	return func(c *gin.Context) {
		if err != nil {
			c.String(http.StatusNotFound, "file not found: %s", name)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}

// badgeNames restricts /badges to the two rendered artifacts.
var badgeNames = map[string]bool{
	runlog.JokeBadge: true,
	runlog.NewsBadge: true,
}

func (s *Server) setupRoutes() {
	webContent, _ := fs.Sub(webFS, "web")

	s.engine.GET("/", serveEmbedded(webContent, "index.html", "text/html; charset=utf-8"))

	// Badges are re-read per request so a fresh run shows up immediately.
	s.engine.GET("/badges/:name", func(c *gin.Context) {
		name := c.Param("name")
		if !badgeNames[name] {
			c.String(http.StatusNotFound, "unknown badge: %s", name)
			return
		}
		c.Header("Cache-Control", "no-store")
		c.File(filepath.Join(s.dir, name))
	})

	s.engine.GET("/healthz", func(c *gin.Context) {
		stats := s.aggregator.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"uptime":     stats.Uptime,
			"total_runs": stats.TotalRuns,
			"last_run":   stats.LastRun,
		})
	})

	s.engine.GET("/api/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.aggregator.Snapshot())
	})

	s.engine.GET("/ws", s.handleWebSocket)
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.port)
}
