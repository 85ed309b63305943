package router

import (
	"github.com/gofiber/fiber/v2"

	handlers "github.com/Saikrishnach4/financial/internal/http"
	"github.com/Saikrishnach4/financial/internal/reports"
	"github.com/Saikrishnach4/financial/internal/summary"
	"github.com/Saikrishnach4/financial/internal/transactions"
)

type Router struct {
	AuthHandler    *handlers.AuthHandler
	TxHandler      *transactions.Handler
	SummaryHandler *summary.Handler
	ReportsHandler *reports.Handler
	AuthMW         fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Get("/health", health)
	app.Get("/healthz", health)

	if r.AuthHandler != nil {
		app.Post("/auth/signup", RateLimitAuth(), r.AuthHandler.Signup)
		app.Post("/auth/login", RateLimitAuth(), r.AuthHandler.Login)
		app.Get("/auth/me", r.AuthMW, r.AuthHandler.Me)
	}

	// Summary and statement routes go first so "summary" is never read as a
	// transaction id.
	if r.SummaryHandler != nil {
		app.Get("/transactions/summary/:year/:month", r.AuthMW, r.SummaryHandler.Monthly)
		app.Get("/transactions/summary/:year/:month/week/:week", r.AuthMW, r.SummaryHandler.Weekly)
		app.Get("/transactions/summary/:year/:month/:day", r.AuthMW, r.SummaryHandler.Daily)
		app.Get("/transactions/summery/:year/:month", r.AuthMW, r.SummaryHandler.MonthlySpending)
	}

	if r.ReportsHandler != nil {
		app.Get("/transactions/statement/:year/:month", r.AuthMW, r.ReportsHandler.StatementPDF)
	}

	if r.TxHandler != nil {
		app.Get("/transactions", r.AuthMW, r.TxHandler.List)
		app.Post("/transactions", RateLimitWrite(), r.AuthMW, r.TxHandler.Create)
		app.Put("/transactions/:id", RateLimitWrite(), r.AuthMW, r.TxHandler.Update)
		app.Delete("/transactions/:id", RateLimitWrite(), r.AuthMW, r.TxHandler.Delete)
	}
}

func health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"ok": true})
}
