package summary

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Saikrishnach4/financial/internal/transactions"
)

// Lister is the read surface the handlers need. *Repo implements it.
type Lister interface {
	FindRange(ctx context.Context, userID string, w Window, typ string) ([]transactions.Transaction, error)
}

type Handler struct {
	Repo Lister
}

func NewHandler(repo Lister) *Handler {
	return &Handler{Repo: repo}
}

// Monthly handles GET /transactions/summary/:year/:month with income and
// expense totals for the calendar month.
func (h *Handler) Monthly(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	year, month, err := yearMonth(c)
	if err != nil {
		return err
	}
	w, werr := MonthWindow(year, month)
	if werr != nil {
		return fiber.NewError(fiber.StatusBadRequest, werr.Error())
	}

	txs, err := h.Repo.FindRange(userContext(c), userID, w, "")
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(ComputeTotals(txs))
}

// Daily handles GET /transactions/summary/:year/:month/:day with the day's
// spending breakdown.
func (h *Handler) Daily(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	year, month, err := yearMonth(c)
	if err != nil {
		return err
	}
	day, err := intParam(c, "day")
	if err != nil {
		return err
	}
	w, werr := DayWindow(year, month, day)
	if werr != nil {
		return fiber.NewError(fiber.StatusBadRequest, werr.Error())
	}

	return h.spending(c, userID, w)
}

// Weekly handles GET /transactions/summary/:year/:month/week/:week with the
// spending breakdown for that week of the year, scoped to the month.
func (h *Handler) Weekly(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	year, month, err := yearMonth(c)
	if err != nil {
		return err
	}
	week, err := intParam(c, "week")
	if err != nil {
		return err
	}
	w, werr := MonthWeekWindow(year, month, week)
	if werr != nil {
		return fiber.NewError(fiber.StatusBadRequest, werr.Error())
	}

	return h.spending(c, userID, w)
}

// MonthlySpending handles GET /transactions/summery/:year/:month, the
// month-level category breakdown. The misspelled path is what the clients
// call; it stays for compatibility.
func (h *Handler) MonthlySpending(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	year, month, err := yearMonth(c)
	if err != nil {
		return err
	}
	w, werr := MonthWindow(year, month)
	if werr != nil {
		return fiber.NewError(fiber.StatusBadRequest, werr.Error())
	}

	return h.spending(c, userID, w)
}

func (h *Handler) spending(c *fiber.Ctx, userID string, w Window) error {
	if w.Empty() {
		return c.JSON(ComputeSpending(nil))
	}
	txs, err := h.Repo.FindRange(userContext(c), userID, w, transactions.TypeExpense)
	if err != nil {
		return serverErr(c, err)
	}
	return c.JSON(ComputeSpending(txs))
}

func yearMonth(c *fiber.Ctx) (int, int, error) {
	year, err := intParam(c, "year")
	if err != nil {
		return 0, 0, err
	}
	month, err := intParam(c, "month")
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func intParam(c *fiber.Ctx, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" must be a number")
	}
	return v, nil
}

func serverErr(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return fiber.NewError(fiber.StatusInternalServerError, "failed to compute summary")
}

func getUserID(c *fiber.Ctx) (string, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}

func userContext(c *fiber.Ctx) context.Context {
	if ctx := c.UserContext(); ctx != nil {
		return ctx
	}
	return context.Background()
}
