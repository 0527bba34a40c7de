package handler

import (
	"errors"
	"strconv"

	"planning-backend/internal/model"
	"planning-backend/internal/repository"
	"planning-backend/internal/usecase"
	"planning-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// respondError maps domain errors onto HTTP statuses: validation failures
// 400, missing records 404, authorization failures 403, anything else 500.
func respondError(c *fiber.Ctx, err error) error {
	var weightErr *validation.WeightError
	var targetErr *validation.TargetError
	var budgetErr *validation.BudgetError

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Record not found"})
	case errors.Is(err, usecase.ErrNotEvaluator):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &weightErr),
		errors.As(err, &targetErr),
		errors.As(err, &budgetErr),
		errors.Is(err, usecase.ErrDateRange),
		errors.Is(err, usecase.ErrMissingObjective),
		errors.Is(err, usecase.ErrOnlyDraftSubmit),
		errors.Is(err, usecase.ErrOnlySubmittedReview),
		errors.Is(err, usecase.ErrDuplicateSubmission),
		errors.Is(err, repository.ErrCustomNeedsOrganization),
		errors.Is(err, model.ErrInitiativeParent):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// queryUint reads an optional numeric query parameter, nil when absent or
// malformed.
func queryUint(c *fiber.Ctx, key string) *uint {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}
