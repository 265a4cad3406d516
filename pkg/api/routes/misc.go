package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/travigo/stopfinder/pkg/stoperrors"
)

const (
	detailBasic    = "basic"
	detailDetailed = "detailed"
)

func sendError(c *fiber.Ctx, err error) error {
	switch {
	case stoperrors.IsValidation(err):
		c.SendStatus(fiber.StatusBadRequest)
	case stoperrors.IsParse(err):
		c.SendStatus(fiber.StatusServiceUnavailable)
		return c.JSON(fiber.Map{
			"error": "No stop data available: " + err.Error(),
		})
	default:
		c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}

func sendNotFound(c *fiber.Ctx, identifier string) error {
	c.SendStatus(fiber.StatusNotFound)
	return c.JSON(fiber.Map{
		"error":      "Could not find Stop matching Stop Identifier",
		"identifier": identifier,
	})
}

// sendReduced writes value with only the fields in the group picked by the
// detail query parameter.
func sendReduced(c *fiber.Ctx, value any) error {
	detail := c.Query("detail", detailBasic)
	if detail != detailBasic && detail != detailDetailed {
		return sendError(c, stoperrors.NewValidationError("detail", detail, "basic or detailed"))
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{detail},
	}, value)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce response",
		})
	}

	return c.JSON(reduced)
}
