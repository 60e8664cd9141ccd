package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-console/internal/domain"
	"github.com/spec-kit/erp-console/internal/service"
	apperrors "github.com/spec-kit/erp-console/pkg/util/errorutil"
)

// ResourceHandler serves the uniform CRUD endpoints of one resource. One
// instance exists per entity kind; all of them share this implementation.
type ResourceHandler struct {
	service *service.ResourceService
}

// NewResourceHandler constructs handler.
func NewResourceHandler(resourceService *service.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: resourceService}
}

// Name returns the URL segment the handler mounts under.
func (h *ResourceHandler) Name() string {
	return h.service.Resource().Name
}

// List GET /api/{resource}. The entire table, newest first; filtering,
// sorting, and pagination are client concerns.
func (h *ResourceHandler) List(c *fiber.Ctx) error {
	records, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// Get GET /api/{resource}/:id.
func (h *ResourceHandler) Get(c *fiber.Ctx) error {
	record, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// Create POST /api/{resource}.
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	body := domain.Record{}
	if err := c.BodyParser(&body); err != nil {
		return apperrors.NewValidationError("invalid JSON body")
	}
	record, err := h.service.Create(c.Context(), body)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// Update PUT /api/{resource}/:id.
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	body := domain.Record{}
	if err := c.BodyParser(&body); err != nil {
		return apperrors.NewValidationError("invalid JSON body")
	}
	record, err := h.service.Update(c.Context(), c.Params("id"), body)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// Delete DELETE /api/{resource}/:id. The removed row is echoed back as
// confirmation.
func (h *ResourceHandler) Delete(c *fiber.Ctx) error {
	record, err := h.service.Delete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Deleted successfully",
		"deleted": record,
	})
}

// Export GET /api/{resource}/export?format=csv|xlsx.
func (h *ResourceHandler) Export(c *fiber.Ctx) error {
	format := c.Query("format", "csv")

	headers, rows, err := h.service.ExportRows(c.Context())
	if err != nil {
		return err
	}

	name := h.service.Resource().Name
	if format == "xlsx" {
		return writeExcel(c, name, headers, rows)
	}
	return writeCSV(c, name+".csv", headers, rows)
}
