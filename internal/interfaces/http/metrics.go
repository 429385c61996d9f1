package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var httpRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total de peticiones HTTP por método, ruta y código de estado.",
	},
	[]string{"method", "path", "status"},
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
}

// MetricsMiddleware cuenta cada petición atendida (etiquetas: método, ruta, status).
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		path := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		httpRequestsTotal.WithLabelValues(c.Method(), path, status).Inc()
		return err
	}
}

// MetricsHandler expone el registro de Prometheus en formato texto.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
