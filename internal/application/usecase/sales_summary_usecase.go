package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/levantapedidos/levantapedidos-api/internal/application/dto"
	"github.com/levantapedidos/levantapedidos-api/internal/application/ports"
	"github.com/levantapedidos/levantapedidos-api/internal/domain"
	"github.com/levantapedidos/levantapedidos-api/internal/domain/entity"
	"github.com/levantapedidos/levantapedidos-api/internal/domain/suggestion"
	"github.com/levantapedidos/levantapedidos-api/pkg/logger"
)

// SalesSummaryUseCase genera el pedido sugerido de un cliente para un mes
// objetivo: planifica las ventanas de comparación, consulta las ventas y la
// lista de precios en DominioDZ y ejecuta el motor de sugerencias.
type SalesSummaryUseCase struct {
	sales ports.SalesDataService
	log   *logger.Logger
	now   func() time.Time
}

// NewSalesSummaryUseCase construye el caso de uso.
func NewSalesSummaryUseCase(sales ports.SalesDataService, log *logger.Logger) *SalesSummaryUseCase {
	return &SalesSummaryUseCase{sales: sales, log: log, now: time.Now}
}

// WithClock reemplaza el reloj del caso de uso; lo usan los tests para fijar
// el mes en curso.
func (uc *SalesSummaryUseCase) WithClock(now func() time.Time) *SalesSummaryUseCase {
	uc.now = now
	return uc
}

// Generate produce el resumen completo listo para serializar.
func (uc *SalesSummaryUseCase) Generate(ctx context.Context, clientID string, month, year int) (*dto.OrderSummaryDTO, error) {
	summary, err := uc.generate(ctx, clientID, month, year)
	if err != nil {
		return nil, err
	}
	return dto.FromOrderSummary(*summary), nil
}

// generate devuelve el resumen de dominio; lo reutiliza el pedido sugerido
// del mes siguiente.
func (uc *SalesSummaryUseCase) generate(ctx context.Context, clientID string, month, year int) (*entity.OrderSummary, error) {
	last3Ranges, sameRanges := suggestion.PlanRanges(month, year)
	currentRange := suggestion.CurrentMonthRange(uc.now().UTC())

	// Fan-out: cada consulta de rango es independiente del resto, igual que
	// la lista de precios, así que todas se lanzan en paralelo. Los resultados
	// se recogen en posiciones fijas para que el orden de ensamblado sea
	// determinista aunque las goroutines terminen en cualquier orden.
	ranges := make([]suggestion.MonthRange, 0, len(last3Ranges)+len(sameRanges)+1)
	ranges = append(ranges, last3Ranges...)
	ranges = append(ranges, sameRanges...)
	ranges = append(ranges, currentRange)

	sales := make([][]entity.SaleRecord, len(ranges))
	errs := make([]error, len(ranges))

	var wg sync.WaitGroup
	for i, r := range ranges {
		wg.Add(1)
		go func(i int, r suggestion.MonthRange) {
			defer wg.Done()
			sales[i], errs[i] = uc.sales.SalesByRange(ctx, clientID, r.From, r.To)
		}(i, r)
	}

	var (
		pricing    []entity.ClientPrice
		pricingErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		pricing, pricingErr = uc.sales.ClientPricing(ctx, clientID)
	}()
	wg.Wait()

	// Un rango caído aporta cero registros; solo la falta de token es fatal.
	for i, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, domain.ErrTokenNotConfigured) {
			return nil, err
		}
		uc.log.Warn().Err(err).
			Str("cliente", clientID).
			Str("desde", ranges[i].From.Format("2006-01-02")).
			Str("hasta", ranges[i].To.Format("2006-01-02")).
			Msg("rango de ventas no disponible, se asume sin registros")
		sales[i] = nil
	}
	if pricingErr != nil {
		if errors.Is(pricingErr, domain.ErrTokenNotConfigured) {
			return nil, pricingErr
		}
		uc.log.Warn().Err(pricingErr).
			Str("cliente", clientID).
			Msg("lista de precios del cliente no disponible, se usan precios históricos")
		pricing = nil
	}

	n3 := len(last3Ranges)
	result := suggestion.Calculate(month, year, suggestion.Inputs{
		Last3Months:       suggestion.AggregateSales(flatten(sales[:n3])),
		SameMonthLastYear: suggestion.AggregateSales(flatten(sales[n3 : n3+len(sameRanges)])),
		CurrentMonth:      suggestion.AccumulateCurrentMonth(sales[len(ranges)-1]),
		ClientPricing:     pricing,
	})

	uc.log.Debug().
		Str("cliente", clientID).
		Int("mes", month).
		Int("anio", year).
		Int("productos", result.Summary.TotalProducts).
		Msg("pedido sugerido calculado")

	return &result, nil
}

// flatten concatena los lotes de un período conservando el orden de los rangos.
func flatten(batches [][]entity.SaleRecord) []entity.SaleRecord {
	var total int
	for _, b := range batches {
		total += len(b)
	}
	out := make([]entity.SaleRecord, 0, total)
	for _, b := range batches {
		out = append(out, b...)
	}
	return out
}
