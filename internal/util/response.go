package util

import (
	"runtime/debug"

	"github.com/campuspulse/feedback-api/internal/config"
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the JSON error envelope. The detail field is the only
// part clients should rely on; dev_message and trace are filled outside
// production.
type ErrorBody struct {
	Detail     string `json:"detail"`
	DevMessage string `json:"dev_message,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// ErrorResponse sends a JSON error with the given status code.
func ErrorResponse(c *fiber.Ctx, code int, detail string, errs ...error) error {
	body := ErrorBody{Detail: detail}

	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			body.DevMessage = errs[0].Error()
			body.Trace = string(debug.Stack())
		}
	}

	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(body)
}
