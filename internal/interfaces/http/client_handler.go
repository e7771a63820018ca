package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/levantapedidos/levantapedidos-api/internal/application/dto"
	"github.com/levantapedidos/levantapedidos-api/internal/application/usecase"
)

// ClientHandler maneja los endpoints de datos y precios del cliente.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Data godoc
// @Summary      Datos maestros del cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientRequest  true  "Cliente"
// @Success      200   {object}  dto.ClientDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/client-data [post]
func (h *ClientHandler) Data(c *fiber.Ctx) error {
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

	out, err := h.uc.Get(c.Context(), in.ClientID)
	if err != nil {
		return upstreamError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "cliente no encontrado",
		})
	}
	return c.JSON(out)
}

// Pricing godoc
// @Summary      Lista de precios específica del cliente
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientRequest  true  "Cliente"
// @Success      200   {array}   dto.ProductPriceDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/client-pricing [post]
func (h *ClientHandler) Pricing(c *fiber.Ctx) error {
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

	out, err := h.uc.Pricing(c.Context(), in.ClientID)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(out)
}
