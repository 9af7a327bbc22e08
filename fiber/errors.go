package fiber

import (
	"errors"

	"github.com/fwojciec/coverletter"
	"github.com/gofiber/fiber/v2"
)

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	coverletter.EINVALID:     fiber.StatusBadRequest,
	coverletter.ENOTFOUND:    fiber.StatusNotFound,
	coverletter.EINTERNAL:    fiber.StatusInternalServerError,
	coverletter.EUNAVAILABLE: fiber.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return fiber.StatusInternalServerError
}

// errorResponse is the body of every failed API response.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeError writes err as a JSON failure with the mapped status code.
func writeError(c *fiber.Ctx, err error) error {
	status := ErrorStatusCode(coverletter.ErrorCode(err))
	return c.Status(status).JSON(errorResponse{Error: coverletter.ErrorMessage(err)})
}

// errorHandler renders errors returned from handlers and Fiber itself,
// such as unknown routes and oversized bodies.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(errorResponse{Error: fe.Message})
	}
	return writeError(c, err)
}
