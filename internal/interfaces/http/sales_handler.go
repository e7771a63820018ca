package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/levantapedidos/levantapedidos-api/internal/application/dto"
	"github.com/levantapedidos/levantapedidos-api/internal/application/usecase"
)

// SalesHandler maneja los endpoints de resumen de ventas y pedido sugerido.
type SalesHandler struct {
	summaryUC   *usecase.SalesSummaryUseCase
	suggestedUC *usecase.SuggestedOrderUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(summaryUC *usecase.SalesSummaryUseCase, suggestedUC *usecase.SuggestedOrderUseCase) *SalesHandler {
	return &SalesHandler{summaryUC: summaryUC, suggestedUC: suggestedUC}
}

// Summary godoc
// @Summary      Resumen de pedido sugerido para un mes objetivo
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SalesSummaryRequest  true  "Cliente y mes objetivo"
// @Success      200   {object}  dto.OrderSummaryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/sales-summary [post]
func (h *SalesHandler) Summary(c *fiber.Ctx) error {
	var in dto.SalesSummaryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
		})
	}
	if in.ClientID == "" || in.Month == 0 || in.Year == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "clientId, month y year son requeridos",
		})
	}
	if in.Month < 1 || in.Month > 12 || in.Year < 2000 || in.Year > 2030 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "month debe estar en 1-12 y year en 2000-2030",
		})
	}

	out, err := h.summaryUC.Generate(c.Context(), in.ClientID, in.Month, in.Year)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(out)
}

// SuggestedOrder godoc
// @Summary      Resumen condensado del pedido sugerido para el mes siguiente
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientRequest  true  "Cliente"
// @Success      200   {object}  dto.SuggestedOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/suggested-order [post]
func (h *SalesHandler) SuggestedOrder(c *fiber.Ctx) error {
	var in dto.ClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo JSON inválido",
		})
	}
	if in.ClientID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "clientId es requerido",
		})
	}

	out, err := h.suggestedUC.Generate(c.Context(), in.ClientID)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(out)
}
