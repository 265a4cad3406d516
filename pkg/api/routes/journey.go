package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/stopfinder/pkg/finder"
	"github.com/travigo/stopfinder/pkg/geodesy"
)

func JourneyRouter(router fiber.Router, stopFinder *finder.Finder) {
	router.Get("/", func(c *fiber.Ctx) error {
		return getJourney(c, stopFinder)
	})
}

func DistanceRouter(router fiber.Router) {
	router.Get("/", getDistance)
}

func getJourney(c *fiber.Ctx, stopFinder *finder.Finder) error {
	fromIdentifier := c.Query("from")
	toIdentifier := c.Query("to")

	from, exists, err := stopFinder.Lookup(fromIdentifier)
	if err != nil {
		return sendError(c, err)
	}
	if !exists {
		return sendNotFound(c, fromIdentifier)
	}

	to, exists, err := stopFinder.Lookup(toIdentifier)
	if err != nil {
		return sendError(c, err)
	}
	if !exists {
		return sendNotFound(c, toIdentifier)
	}

	journey, err := stopFinder.Journey(from, to)
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, journey)
}

func getDistance(c *fiber.Ctx) error {
	measurement, err := finder.Measure(c.Query("from"), c.Query("to"), c.Query("mode", string(geodesy.TravelModeWalking)))
	if err != nil {
		return sendError(c, err)
	}

	return sendReduced(c, measurement)
}
