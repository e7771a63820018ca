package ports

import (
	"context"
	"time"

	"github.com/levantapedidos/levantapedidos-api/internal/domain/entity"
)

// SalesDataService puerto hacia la API de consultas de DominioDZ.
// La implementación vive en internal/infrastructure/dominiodz.
type SalesDataService interface {
	// SalesByRange ventas del cliente entre from y to, ambos inclusive.
	SalesByRange(ctx context.Context, clientID string, from, to time.Time) ([]entity.SaleRecord, error)

	// ClientByID datos maestros del cliente; nil (sin error) si no existe.
	ClientByID(ctx context.Context, clientID string) (*entity.Client, error)

	// ClientPricing lista total de productos del cliente con su precio
	// específico cuando lo hay.
	ClientPricing(ctx context.Context, clientID string) ([]entity.ClientPrice, error)
}
