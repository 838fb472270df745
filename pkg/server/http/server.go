package http_server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
	"github.com/rajit909/portfolio-api/config"
	"github.com/rajit909/portfolio-api/internal/middleware"
	"github.com/rajit909/portfolio-api/pkg/metrics"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rajit909/portfolio-api/docs"
)

// HealthCheck godoc
//
//	@Summary		Health Check
//	@Description	Returns status 200 if the service is running
//	@Tags			Health
//	@Produce		plain
//	@Success		200	{string}	string	"OK"
//	@Router			/health [get]

type Server struct {
	App    *gin.Engine
	notify chan error

	address  string
	timeout  time.Duration
	authGate gin.HandlerFunc
}

// New builds the gin engine with the global middleware stack. Routes
// are registered by the caller on s.App before Start.
func New(env *config.Env, opts ...Option) *Server {
	s := &Server{
		App:     nil,
		notify:  make(chan error, 1),
		address: _defaultAddr,
		timeout: _defaultTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.App = s.initGinServer(env)

	return s
}

func timeoutResponse(c *gin.Context) {
	c.String(http.StatusRequestTimeout, "timeout")
}
func timeoutMiddleware(to time.Duration) gin.HandlerFunc {
	return timeout.New(
		timeout.WithTimeout(to),
		timeout.WithResponse(timeoutResponse),
	)
}

func (s *Server) initGinServer(env *config.Env) *gin.Engine {

	if env.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationIDMiddleware())
	r.Use(timeoutMiddleware(s.timeout))

	if env.MetricsConfig.Enabled {
		m := metrics.GetMonitor("/metrics")
		m.Use(r)
	}

	if env.CORSConfig.Enabled {
		corsConfig := cors.Config{
			AllowOrigins:     env.CORSConfig.AllowedOrigins,
			AllowMethods:     env.CORSConfig.AllowedMethods,
			AllowHeaders:     env.CORSConfig.AllowedHeaders,
			ExposeHeaders:    env.CORSConfig.ExposedHeaders,
			AllowCredentials: env.CORSConfig.AllowCredentials,
			MaxAge:           time.Duration(env.CORSConfig.MaxAge) * time.Second,
		}

		r.Use(cors.New(corsConfig))
	}

	// The gate runs after the ambient middleware and before every
	// route, so the admin surface is unreachable without a verified
	// identity.
	if s.authGate != nil {
		r.Use(s.authGate)
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.AbortWithStatusJSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
	return r
}

// Start runs the listener in the background; failures surface on
// Notify.
func (s *Server) Start() {
	go func() {
		s.notify <- s.App.Run(s.address)
		close(s.notify)
	}()
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown -.
func (s *Server) Shutdown() error {
	return nil
}
