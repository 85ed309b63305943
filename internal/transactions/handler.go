package transactions

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Saikrishnach4/financial/internal/domain"
)

// Store is the persistence surface the handlers need. *Repo implements it.
type Store interface {
	List(ctx context.Context, userID string) ([]Transaction, error)
	Create(ctx context.Context, userID string, in Transaction) (Transaction, error)
	Update(ctx context.Context, userID, id string, in Transaction) (Transaction, error)
	Delete(ctx context.Context, userID, id string) (Transaction, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) List(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	items, err := h.Store.List(userContext(c), userID)
	if err != nil {
		return storeErr(c, err, "failed to load transactions")
	}
	return c.JSON(items)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	in, err := parseBody(c)
	if err != nil {
		return err
	}

	created, err := h.Store.Create(userContext(c), userID, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "user not found")
		}
		return storeErr(c, err, "transaction creation failed")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	in, err := parseBody(c)
	if err != nil {
		return err
	}

	updated, err := h.Store.Update(userContext(c), userID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}
		return storeErr(c, err, "transaction update failed")
	}
	return c.JSON(updated)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	userID, ok := getUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	deleted, err := h.Store.Delete(userContext(c), userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "transaction not found")
		}
		return storeErr(c, err, "transaction deletion failed")
	}
	return c.JSON(deleted)
}

func parseBody(c *fiber.Ctx) (Transaction, error) {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return Transaction{}, fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	in, err := req.Validate()
	if err != nil {
		return Transaction{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return in, nil
}

func parseID(c *fiber.Ctx) (string, error) {
	id := strings.TrimSpace(c.Params("id"))
	if _, err := uuid.Parse(id); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "invalid transaction id")
	}
	return id, nil
}

// storeErr logs the persistence failure and hides its details from the caller.
func storeErr(c *fiber.Ctx, err error, msg string) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return fiber.NewError(fiber.StatusInternalServerError, msg)
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
