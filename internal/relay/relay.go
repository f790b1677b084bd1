// Package relay fronts the admin API for the browser panel: it forwards
// the two program endpoints, absorbs one redirect hop, answers CORS
// preflights and serves the static panel assets.
package relay

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"aztv-panel/internal/config"
)

type Server struct {
	cfg      *config.Config
	router   *gin.Engine
	upstream *http.Client
}

func New(cfg *config.Config) *Server {
	if cfg.Server.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:    cfg,
		router: gin.Default(),
		upstream: &http.Client{
			Timeout: time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
			// Redirects are followed manually in roundTrip so the hop
			// repeats the same method and body.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	// CORS Configuration. Preflights get an empty 204 from here.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}

	s.router.Use(cors.New(corsConfig))
}

func (s *Server) setupRoutes() {
	// Health Check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "aztv-panel"})
	})

	api := s.router.Group("/api")
	{
		api.POST("/list", s.forward("list", s.cfg.Upstream.ListURL))
		api.POST("/create", s.forward("create", s.cfg.Upstream.CreateURL))
	}

	// Everything else is the static panel bundle.
	s.router.NoRoute(s.serveStatic)
}

// forward proxies the request body to the fixed upstream endpoint and
// passes the upstream status and body through verbatim. Failing to
// reach the upstream is the one case where the relay answers for
// itself, with a uniform 502.
func (s *Server) forward(endpoint, target string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			proxied.WithLabelValues(endpoint, "error").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		timer := prometheus.NewTimer(upstreamDuration)
		status, data, err := s.roundTrip(c.Request.Context(), target, body)
		timer.ObserveDuration()
		if err != nil {
			log.Printf("❌ Proxy error (%s): %v", endpoint, err)
			proxied.WithLabelValues(endpoint, "error").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		proxied.WithLabelValues(endpoint, outcomeLabel(status)).Inc()
		c.Data(status, "application/json", data)
	}
}

// roundTrip posts the body upstream and follows at most one redirect,
// repeating the same method and body on the second hop the way the
// admin API expects. A redirect on the second hop is handed back as-is;
// there is no loop detection beyond the single follow.
func (s *Server) roundTrip(ctx context.Context, target string, body []byte) (int, []byte, error) {
	status, header, data, err := s.post(ctx, target, body)
	if err != nil {
		return 0, nil, err
	}
	if status >= 300 && status < 400 {
		if loc := header.Get("Location"); loc != "" {
			log.Printf("🔄 Redirect %d → %s", status, loc)
			status, _, data, err = s.post(ctx, loc, body)
			if err != nil {
				return 0, nil, err
			}
		}
	}
	return status, data, nil
}

func (s *Server) post(ctx context.Context, target string, body []byte) (int, http.Header, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return 0, nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.upstream.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}
	if s.cfg.Server.LogLevel == "debug" {
		log.Printf("📥 Upstream %d: %s", resp.StatusCode, truncate(data, 500))
	}
	return resp.StatusCode, resp.Header, data, nil
}

func outcomeLabel(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "ok"
	case status >= 300 && status < 400:
		return "redirect"
	default:
		return "upstream_error"
	}
}

// serveStatic answers unmatched paths from the static root, mapping "/"
// to index.html. Content type is derived from the file extension by
// http.ServeFile.
func (s *Server) serveStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	rel := c.Request.URL.Path
	if rel == "/" {
		rel = "/index.html"
	}
	path := filepath.Join(s.cfg.Server.StaticDir, filepath.Clean(rel))
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	c.File(path)
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}

// Start runs the server on the configured address
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
