package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError traduce un error de servicio (normalmente *fiber.Error)
// a la respuesta JSON consistente de helper.Error.
// Si no es *fiber.Error, cae a 500 con el mensaje original.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
