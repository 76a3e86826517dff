package handlers

import (
	"github.com/gofiber/fiber/v2"

	"guesthouse/internal/domain"
	applog "guesthouse/internal/log"
	"guesthouse/internal/services"
)

const sessionCookie = "sid"

// LoadUser puts the signed-in user into Locals for templates. It never blocks a request.
func LoadUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sid := c.Cookies(sessionCookie); sid != "" {
			if u, err := auth.CurrentUser(c.UserContext(), sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	}
}

func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(sessionCookie)
		if sid == "" {
			return c.Redirect("/login")
		}
		u, _ := c.Locals("user").(*domain.User)
		if u == nil {
			var err error
			if u, err = auth.CurrentUser(c.UserContext(), sid); err != nil || u == nil {
				return c.Redirect("/login")
			}
		}
		if !u.IsAdmin() {
			applog.Security(c, "access.denied.admin", map[string]any{"user_id": u.ID})
			return notFound(c, fiber.StatusForbidden, "Access denied")
		}
		c.Locals("user", u)
		return c.Next()
	}
}
