package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"employeehub/internal/config"
	"employeehub/internal/domain"
	applog "employeehub/internal/log"
	"employeehub/internal/metrics"
)

// NewApp builds the fiber app with the global middleware and every route.
func NewApp(cfg config.Config, d *Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "employeehub",
		ErrorHandler: ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))
	app.Use(metrics.Middleware())
	if cfg.RateLimit > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit,
			Expiration: time.Minute,
			Next: func(c *fiber.Ctx) bool {
				p := c.Path()
				return p == "/healthz" || strings.HasPrefix(p, "/metrics")
			},
			LimitReached: func(c *fiber.Ctx) error {
				c.Status(fiber.StatusTooManyRequests)
				applog.Security(c, "rate.limit.hit", nil)
				return c.JSON(fiber.Map{"message": "too many requests"})
			},
		}))
	}

	Mount(app, d)
	return app
}

// Mount binds every route to its guard chain and handler.
func Mount(app *fiber.App, d *Deps) {
	authn := Authenticate(d.Auth)
	role := func(r string) fiber.Handler { return Authorize(d.Users, r) }

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("employee management app is running...")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", metrics.Handler())

	app.Post("/jwt", d.AuthHandler.Issue)

	// Users. Fixed segments go before /users/:id.
	app.Get("/users", authn, role(domain.RoleAdmin), d.UserHandler.List)
	app.Get("/users/employees", authn, role(domain.RoleHR), d.EmployeeHandler.List)
	for _, r := range []string{domain.RoleAdmin, domain.RoleHR, domain.RoleEmployee} {
		app.Get("/users/"+r+"/:email", authn, SelfOnly("email"), d.UserHandler.RoleProbe(r))
	}
	app.Get("/users/:id", authn, role(domain.RoleAdmin), d.UserHandler.Get)
	app.Post("/users", d.UserHandler.Register)
	app.Patch("/users/fire/:id", d.UserHandler.Fire)
	app.Patch("/users/:id", d.UserHandler.Patch)

	// Employees
	app.Get("/employees", d.EmployeeHandler.List)
	app.Get("/employees/:id", d.EmployeeHandler.Get)
	app.Patch("/employees/:id", d.EmployeeHandler.Verify)

	// Tasks
	app.Post("/tasks", authn, role(domain.RoleEmployee), d.TaskHandler.Create)
	app.Get("/tasks", d.TaskHandler.List)

	// Payments
	app.Post("/create-payment-intent", d.PaymentHandler.CreateIntent)
	app.Get("/payments/check/:month/:year", authn, d.PaymentHandler.Check)
	app.Get("/payments/:email", authn, SelfOnly("email"), d.PaymentHandler.ByEmail)
	app.Get("/payments", authn, d.PaymentHandler.List)
	app.Post("/payments", d.PaymentHandler.Record)
}
