package router

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bucket-budget/backend/internal/httperror"
	"github.com/bucket-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// URLMiddleware sets the base URL of the API so that handlers can build
// absolute links.
//
// The URL is taken from the API_URL environment variable, without a trailing
// slash.
func URLMiddleware() gin.HandlerFunc {
	url := strings.TrimSuffix(os.Getenv("API_URL"), "/")

	return func(c *gin.Context) {
		c.Set(string(models.ContextURL), url)
		c.Next()
	}
}

// UserMiddleware resolves the user the request acts for.
//
// Authentication happens in front of the backend. The authenticating proxy
// sets the X-User-ID header to the ID of the authenticated user, requests
// without a resolvable user are rejected.
func UserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader("X-User-ID"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.NewFromString("the X-User-ID header must be set to a valid user ID"))
			return
		}

		user, err := models.GetUser(models.DB, id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.NewFromString("there is no user with the ID set in the X-User-ID header"))
			return
		}

		c.Set(string(models.ContextUser), user)
		c.Next()
	}
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// Registration happens exactly once per process, the router itself can be
// built multiple times.
func init() {
	prometheus.MustRegister(requestCount, requestDuration)
}

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
