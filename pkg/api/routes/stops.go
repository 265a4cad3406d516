package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/stopfinder/pkg/finder"
	"github.com/travigo/stopfinder/pkg/stops"
)

func StopsRouter(router fiber.Router, stopFinder *finder.Finder) {
	router.Get("/search", func(c *fiber.Ctx) error {
		return searchStops(c, stopFinder)
	})
	router.Get("/:identifier", func(c *fiber.Ctx) error {
		return getStop(c, stopFinder)
	})
}

func searchStops(c *fiber.Ctx, stopFinder *finder.Finder) error {
	var filter *stops.Filter
	if expression := c.Query("filter"); expression != "" {
		compiled, err := stops.CompileFilter(expression)
		if err != nil {
			return sendError(c, err)
		}
		filter = compiled
	}

	results, err := stopFinder.Search(c.Query("q"), filter)
	if err != nil {
		return sendError(c, err)
	}

	if results == nil {
		results = []stops.StopRecord{}
	}

	return sendReduced(c, results)
}

func getStop(c *fiber.Ctx, stopFinder *finder.Finder) error {
	identifier := c.Params("identifier")

	stop, exists, err := stopFinder.Lookup(identifier)
	if err != nil {
		return sendError(c, err)
	}
	if !exists {
		return sendNotFound(c, identifier)
	}

	return sendReduced(c, stop)
}
