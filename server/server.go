package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chaos-io/peptide-catalog/auth"
	"github.com/chaos-io/peptide-catalog/catalog"
	"github.com/chaos-io/peptide-catalog/storage"
)

// Prefixes under which every API route is mounted. Both serve identical handlers.
var Prefixes = []string{"", "/api"}

const shutdownTimeout = 10 * time.Second

type Options struct {
	StaticDir       string
	MaxUploadMB     int64
	RequestTimeout  time.Duration
	LoginRatePerMin int
}

type Server struct {
	store  *catalog.Store
	auth   *auth.Authenticator
	images storage.ImageStore
	opts   Options
	engine *gin.Engine
}

func New(store *catalog.Store, authn *auth.Authenticator, images storage.ImageStore, opts Options) *Server {
	if opts.StaticDir == "" {
		opts.StaticDir = "static"
	}
	if opts.MaxUploadMB <= 0 {
		opts.MaxUploadMB = 32
	}

	s := &Server{
		store:  store,
		auth:   authn,
		images: images,
		opts:   opts,
	}
	s.engine = s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = s.opts.MaxUploadMB << 20

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(CORS())
	r.Use(Timeout(s.opts.RequestTimeout))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	var login []gin.HandlerFunc
	if s.opts.LoginRatePerMin > 0 {
		limiter := NewRateLimiter(perMinute(s.opts.LoginRatePerMin), s.opts.LoginRatePerMin, 5*time.Minute)
		login = append(login, limiter.Middleware())
	}
	login = append(login, s.login)

	for _, prefix := range Prefixes {
		g := r.Group(prefix)
		g.GET("/", s.root)
		if prefix != "" {
			g.GET("", s.root)
		}
		g.GET("/products", s.listProducts)
		g.POST("/products", s.createProduct)
		g.GET("/products/:id", s.getProduct)
		g.POST("/login", login...)
		g.Static("/static", s.opts.StaticDir)
	}

	r.NoRoute(func(c *gin.Context) {
		abortWithDetail(c, http.StatusNotFound, "Not Found")
	})
	return r
}

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("catalog server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zap.L().Info("shutting down catalog server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
