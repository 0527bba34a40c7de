package middleware

import "github.com/gofiber/fiber/v2"

// Role allows the request through only when the token role matches one of
// the given roles. Finer checks (e.g. evaluator membership lookup for plan
// reviews) happen in the usecases, which see the database.
func Role(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: no role"})
		}

		for _, role := range allowedRoles {
			if role == userRole {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: insufficient role"})
	}
}
