package usecase

import (
	"context"

	"github.com/levantapedidos/levantapedidos-api/internal/application/dto"
	"github.com/levantapedidos/levantapedidos-api/internal/application/ports"
)

// ClientUseCase consultas de datos maestros y lista de precios del cliente.
type ClientUseCase struct {
	sales ports.SalesDataService
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(sales ports.SalesDataService) *ClientUseCase {
	return &ClientUseCase{sales: sales}
}

// Get devuelve los datos maestros del cliente; nil si no existe.
func (uc *ClientUseCase) Get(ctx context.Context, clientID string) (*dto.ClientDTO, error) {
	client, err := uc.sales.ClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, nil
	}
	return dto.FromClient(*client), nil
}

// Pricing devuelve la lista total de productos del cliente con su precio
// específico cuando lo hay.
func (uc *ClientUseCase) Pricing(ctx context.Context, clientID string) ([]dto.ProductPriceDTO, error) {
	pricing, err := uc.sales.ClientPricing(ctx, clientID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductPriceDTO, 0, len(pricing))
	for _, p := range pricing {
		out = append(out, dto.FromClientPrice(p))
	}
	return out, nil
}
