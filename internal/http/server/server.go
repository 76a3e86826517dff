// Package server assembles the fiber application: middleware, static files and routes.
package server

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"

	"guesthouse/internal/config"
	"guesthouse/internal/http/handlers"
	applog "guesthouse/internal/log"
	"guesthouse/internal/metrics"
)

// Options carries what New needs besides the handlers.
type Options struct {
	Views  fiber.Views
	Static fs.FS
	// Registry, when set and no separate metrics address is configured, is served at /metrics.
	Registry *prometheus.Registry
	// LoginLimit caps login attempts per IP per 10 minutes; 0 means 5.
	LoginLimit int
	// PageLimit caps requests per IP per minute; 0 means 60.
	PageLimit int
}

// ErrorHandler logs the error and shows a friendly page without internals.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	if fe, ok := err.(*fiber.Error); ok && fe.Code < 500 {
		status = fe.Code
		msg = http.StatusText(fe.Code)
	}
	applog.Error(c, "server.error", err, map[string]any{"status": status})
	if rerr := c.Status(status).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(status).SendString(msg)
	}
	return nil
}

func New(cfg config.Config, deps *handlers.Deps, opts Options) *fiber.App {
	if opts.LoginLimit <= 0 {
		opts.LoginLimit = 5
	}
	if opts.PageLimit <= 0 {
		opts.PageLimit = 60
	}

	app := fiber.New(fiber.Config{
		Views:        opts.Views,
		ErrorHandler: ErrorHandler,
		// room images are uploaded through the admin
		BodyLimit: 10 << 20,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(metrics.Middleware())
	app.Use(helmet.New())
	app.Use(handlers.LoadUser(deps.AuthSvc))
	app.Use(limiter.New(limiter.Config{
		Max:        opts.PageLimit,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || p == "/healthz"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.page.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many requests. Please slow down.")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   cfg.CookieSecure,
		ContextKey:     "csrf",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"reason": err.Error()})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	if opts.Static != nil {
		app.Use("/static", filesystem.New(filesystem.Config{
			Root:   http.FS(opts.Static),
			MaxAge: 3600,
		}))
	}

	// ---------- Auth ----------
	app.Get("/login", deps.Auth.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        opts.LoginLimit,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), deps.Auth.Login)
	app.Post("/logout", deps.Auth.Logout)

	// ---------- Admin ----------
	admin := app.Group("/admin", handlers.RequireAdmin(deps.AuthSvc))
	admin.Get("/", deps.Admin.Dashboard)
	admin.Get("/content", deps.Admin.ContentEditor)
	admin.Post("/content", deps.Admin.SaveContent)
	admin.Get("/property", deps.Admin.PropertyForm)
	admin.Post("/property", deps.Admin.SaveProperty)
	admin.Post("/media", deps.Admin.UploadImage)
	admin.Get("/rooms", deps.Rooms.List)
	admin.Get("/rooms/new", deps.Rooms.New)
	admin.Post("/rooms", deps.Rooms.Create)
	admin.Get("/rooms/:id/edit", deps.Rooms.Edit)
	admin.Post("/rooms/:id", deps.Rooms.Update)
	admin.Get("/rooms/:id/delete", deps.Rooms.ConfirmDelete)
	admin.Post("/rooms/:id/delete", deps.Rooms.Delete)
	admin.Post("/rooms/:id/move", deps.Rooms.Move)

	// ---------- Public ----------
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	if opts.Registry != nil && cfg.MetricsAddr == "" {
		app.Get("/metrics", handlers.RequireAdmin(deps.AuthSvc), adaptor.HTTPHandler(metrics.Handler(opts.Registry)))
	}
	app.Post("/contact", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.contact.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).SendString("Too many messages. Please try again later.")
		},
	}), deps.Site.SendContact)
	app.Get("/", deps.Site.Home)
	app.Get("/:lang", deps.Site.Lang)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Page not found"})
	})
	return app
}
