package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/devhive-labs/portfolio-service/internal/api/dto"
	"github.com/devhive-labs/portfolio-service/internal/service"
)

// VisitsHandler exposes the visit ledger.
type VisitsHandler struct {
	visits *service.VisitService
}

// NewVisitsHandler constructs handler.
func NewVisitsHandler(visitService *service.VisitService) *VisitsHandler {
	return &VisitsHandler{visits: visitService}
}

// Track handles POST /api/visits/track. Source IP and user agent come from
// the request itself, not the payload.
func (h *VisitsHandler) Track(c *fiber.Ctx) error {
	var req dto.TrackVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	visit, recorded, err := h.visits.Track(c.Context(), req.UserID, req.Page, c.IP(), c.Get("User-Agent"))
	if err != nil {
		return err
	}
	if !recorded {
		return c.JSON(fiber.Map{"message": "visit already logged"})
	}
	return c.JSON(fiber.Map{"message": "visit logged", "data": dto.NewVisitResponse(visit)})
}

// List handles GET /api/visits/:userId, newest first.
func (h *VisitsHandler) List(c *fiber.Ctx) error {
	visits, err := h.visits.List(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewVisitResponses(visits)})
}

// DeleteOne handles DELETE /api/visits/:userId/:visitId.
func (h *VisitsHandler) DeleteOne(c *fiber.Ctx) error {
	if err := h.visits.DeleteOne(c.Context(), c.Params("userId"), c.Params("visitId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "visit deleted"})
}

// DeleteAll handles DELETE /api/visits/:userId.
func (h *VisitsHandler) DeleteAll(c *fiber.Ctx) error {
	removed, err := h.visits.DeleteAll(c.Context(), c.Params("userId"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "all visits deleted", "removed": removed})
}
