package reports

import (
	"bytes"
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/phpdave11/gofpdf"

	"github.com/Saikrishnach4/financial/internal/summary"
	"github.com/Saikrishnach4/financial/internal/transactions"
)

// Handler renders downloadable monthly statements.
type Handler struct {
	Pool *pgxpool.Pool
}

func NewHandler(pool *pgxpool.Pool) *Handler {
	return &Handler{Pool: pool}
}

// StatementPDF handles GET /transactions/statement/:year/:month and returns
// the month's transactions as a PDF with income/expense/net totals.
func (h *Handler) StatementPDF(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	year, err := c.ParamsInt("year")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "year must be a number")
	}
	month, err := c.ParamsInt("month")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "month must be a number")
	}
	w, werr := summary.MonthWindow(year, month)
	if werr != nil {
		return fiber.NewError(fiber.StatusBadRequest, werr.Error())
	}

	repo := summary.NewRepo(h.Pool)
	txs, err := repo.FindRange(userContext(c), userID, w, "")
	if err != nil {
		log.Printf("statement %s: %v", userID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build statement")
	}
	totals := summary.ComputeTotals(txs)

	period := w.Start.Format("January 2006")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(20, 20, 20)
	pdf.Cell(0, 10, "Monthly Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+period)
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expenses", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Net", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, totals.TotalIncome.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, totals.TotalExpenses.StringFixed(2), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, totals.TotalIncome.Sub(totals.TotalExpenses).StringFixed(2), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	colW := []float64{24, 28, 50, 58, 26}
	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "TYPE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[2], 8, "CATEGORY", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[3], 8, "DESCRIPTION", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[4], 8, "AMOUNT", "1", 1, "R", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(30, 30, 30)
	}
	writeHeader()

	for _, t := range txs {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
		}
		amt := t.Amount.StringFixed(2)
		if t.Type == transactions.TypeExpense {
			amt = "-" + amt
		}
		pdf.CellFormat(colW[0], 8, strings.ToUpper(t.Type), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, t.Date.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 8, trimTo(t.Category, 30), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 8, trimTo(t.Description, 40), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[4], 8, amt, "1", 1, "R", false, 0, "")
	}

	pdf.SetY(-18)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 10, "Generated "+time.Now().UTC().Format(time.RFC3339), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("statement pdf %s: %v", userID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build statement")
	}

	filename := "statement-" + w.Start.Format("2006-01") + ".pdf"
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func trimTo(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
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
