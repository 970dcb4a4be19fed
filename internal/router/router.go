// Package router sets up the gin engine, its middlewares and the API routes.
package router

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/income-recorder/backend/internal/controllers/healthz"
	v1 "github.com/income-recorder/backend/internal/controllers/v1"
	"github.com/income-recorder/backend/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time with ldflags.
var version = "0.0.0"

// Config sets up the router and middlewares.
func Config() (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "This HTTP method is not allowed for the endpoint you called"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	registerPrometheusMetrics()

	log.Info().Str("version", version).Msg("Router")

	return r, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows attaching the same routes to
// different base paths.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	healthz.RegisterRoutes(group.Group("/healthz"))

	// API v1 setup
	v1Group := group.Group("/v1")
	{
		v1Group.GET("", GetV1)
		v1Group.OPTIONS("", OptionsV1)
	}

	co.RegisterRecordRoutes(v1Group.Group("/records"))
	co.RegisterExportRoutes(v1Group.Group("/export"))
	co.RegisterStatsRoutes(v1Group.Group("/stats"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/healthz"` // Application health
	Version string `json:"version" example:"https://example.com/version"` // Application version
	Metrics string `json:"metrics" example:"https://example.com/metrics"` // Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/v1"`           // List of v1 endpoints
}

// GetRoot returns the entrypoint for the API, listing all endpoints.
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Version: url + "/version",
			Metrics: url + "/metrics",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // The software version of the backend
}

// GetVersion returns the software version of the API.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns an empty response with the allowed HTTP verbs.
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns an empty response with the allowed HTTP verbs.
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Records string `json:"records" example:"https://example.com/v1/records"` // Income records
	Export  string `json:"export" example:"https://example.com/v1/export"`   // Income sheet CSV export
	Stats   string `json:"stats" example:"https://example.com/v1/stats"`     // Aggregate statistics
}

// GetV1 returns general information about the v1 API.
func GetV1(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Records: url + "/v1/records",
			Export:  url + "/v1/export",
			Stats:   url + "/v1/stats",
		},
	})
}

// OptionsV1 returns an empty response with the allowed HTTP verbs.
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
