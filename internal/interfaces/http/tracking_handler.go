package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sgp-sistemas/sgp-api/internal/application/dto"
	"github.com/sgp-sistemas/sgp-api/internal/application/tracking"
)

// TrackingHandler endpoints de acompanhamento externo, sem sessão.
type TrackingHandler struct {
	trackingUseCase *tracking.UseCase
}

func NewTrackingHandler(trackingUseCase *tracking.UseCase) *TrackingHandler {
	return &TrackingHandler{trackingUseCase: trackingUseCase}
}

// Track POST /api/processes/track — modo token (token + senha do processo).
func (h *TrackingHandler) Track(c *fiber.Ctx) error {
	var req dto.TrackRequest
	if !bindAndValidate(c, &req) {
		return nil
	}
	resp, err := h.trackingUseCase.Track(req)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}

// Public GET /api/processes/:id/public — visão pública estreita.
func (h *TrackingHandler) Public(c *fiber.Ctx) error {
	resp, err := h.trackingUseCase.Public(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(resp)
}
