package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/travigo/stopfinder/pkg/api/routes"
	"github.com/travigo/stopfinder/pkg/finder"
)

// NewApp builds the web api around an already loaded finder. Request metrics
// are registered on registry and served from /metrics.
func NewApp(stopFinder *finder.Finder, registry *prometheus.Registry) *fiber.App {
	metrics := NewMetrics(registry)

	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger(metrics))

	webApp.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.StopsRouter(group.Group("/stops"), stopFinder)
	routes.JourneyRouter(group.Group("/journey"), stopFinder)
	routes.DistanceRouter(group.Group("/distance"))

	return webApp
}

func SetupServer(listen string, stopFinder *finder.Finder) error {
	webApp := NewApp(stopFinder, prometheus.NewRegistry())

	return webApp.Listen(listen)
}
