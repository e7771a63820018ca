package usecase

import (
	"context"
	"time"

	"github.com/levantapedidos/levantapedidos-api/internal/application/dto"
)

// SuggestedOrderUseCase resumen condensado del pedido sugerido para el mes
// calendario siguiente al actual. Reutiliza la tubería del resumen de ventas.
type SuggestedOrderUseCase struct {
	summary *SalesSummaryUseCase
	now     func() time.Time
}

// NewSuggestedOrderUseCase construye el caso de uso.
func NewSuggestedOrderUseCase(summary *SalesSummaryUseCase) *SuggestedOrderUseCase {
	return &SuggestedOrderUseCase{summary: summary, now: time.Now}
}

// WithClock reemplaza el reloj del caso de uso (tests).
func (uc *SuggestedOrderUseCase) WithClock(now func() time.Time) *SuggestedOrderUseCase {
	uc.now = now
	return uc
}

// Generate calcula el pedido sugerido para el mes siguiente y lo condensa en
// las métricas que muestra el panel del vendedor.
func (uc *SuggestedOrderUseCase) Generate(ctx context.Context, clientID string) (*dto.SuggestedOrderResponse, error) {
	// Mes siguiente al actual, con desborde de año.
	now := uc.now().UTC()
	target := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	month, year := int(target.Month()), target.Year()

	summary, err := uc.summary.generate(ctx, clientID, month, year)
	if err != nil {
		return nil, err
	}

	stock, sinStock := 0, 0
	for _, s := range summary.Suggestions {
		if s.Existencia > 0 {
			stock++
		}
		if s.Existencia == 0 && s.CantidadSugerida > 0 {
			sinStock++
		}
	}

	return &dto.SuggestedOrderResponse{
		PedidoSugeridoUnits: summary.Summary.TotalItems,
		PedidoSugeridoValue: summary.Summary.TotalValue.InexactFloat64(),
		UndsInicial:         summary.Summary.TotalItems,
		ValorMesActual:      summary.Summary.TotalValueAcumuladoMesActual.InexactFloat64(),
		Stock:               stock,
		SinStock:            sinStock,
		TotalProducts:       summary.Summary.TotalProducts,
		Month:               month,
		Year:                year,
	}, nil
}
