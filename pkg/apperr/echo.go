package apperr

import "github.com/labstack/echo/v4"

// Respond writes err as the standard failure body.
func Respond(c echo.Context, err error) error {
	body := echo.Map{
		"success": false,
		"code":    KindOf(err).String(),
		"message": err.Error(),
	}
	if fields := FieldsOf(err); len(fields) > 0 {
		body["fields"] = fields
	}
	return c.JSON(Status(err), body)
}
