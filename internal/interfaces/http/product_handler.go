package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/levantapedidos/levantapedidos-api/internal/application/dto"
	"github.com/levantapedidos/levantapedidos-api/internal/application/usecase"
)

// ProductSearchHandler maneja la búsqueda de productos del cliente.
type ProductSearchHandler struct {
	uc *usecase.ProductSearchUseCase
}

// NewProductSearchHandler construye el handler.
func NewProductSearchHandler(uc *usecase.ProductSearchUseCase) *ProductSearchHandler {
	return &ProductSearchHandler{uc: uc}
}

// Search godoc
// @Summary      Búsqueda de productos por clave o descripción
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductSearchRequest  true  "Cliente, término y límite opcional"
// @Success      200   {array}   dto.ProductPriceDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/product-search [post]
func (h *ProductSearchHandler) Search(c *fiber.Ctx) error {
	var in dto.ProductSearchRequest
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
	if len(in.SearchTerm) < 3 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "searchTerm es requerido (mínimo 3 caracteres)",
		})
	}

	out, err := h.uc.Search(c.Context(), in.ClientID, in.SearchTerm, in.Limit)
	if err != nil {
		return upstreamError(c, err)
	}
	return c.JSON(out)
}
