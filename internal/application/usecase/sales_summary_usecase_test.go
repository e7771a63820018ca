package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levantapedidos/levantapedidos-api/internal/application/usecase"
	"github.com/levantapedidos/levantapedidos-api/internal/domain"
	"github.com/levantapedidos/levantapedidos-api/internal/domain/entity"
	"github.com/levantapedidos/levantapedidos-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del puerto SalesDataService: ventas indexadas por la fecha de inicio
// del rango, con errores inyectables por rango y para la lista de precios.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSalesService struct {
	mu         sync.Mutex
	sales      map[string][]entity.SaleRecord // clave: from en formato 2006-01-02
	rangeErr   map[string]error
	pricing    []entity.ClientPrice
	pricingErr error
	client     *entity.Client
	calls      int
}

func newFakeSalesService() *fakeSalesService {
	return &fakeSalesService{
		sales:    make(map[string][]entity.SaleRecord),
		rangeErr: make(map[string]error),
	}
}

func (f *fakeSalesService) SalesByRange(_ context.Context, _ string, from, _ time.Time) ([]entity.SaleRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	key := from.Format("2006-01-02")
	if err := f.rangeErr[key]; err != nil {
		return nil, err
	}
	return f.sales[key], nil
}

func (f *fakeSalesService) ClientByID(_ context.Context, _ string) (*entity.Client, error) {
	return f.client, nil
}

func (f *fakeSalesService) ClientPricing(_ context.Context, _ string) ([]entity.ClientPrice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pricingErr != nil {
		return nil, f.pricingErr
	}
	return f.pricing, nil
}

func quietLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func registro(t *testing.T, clave, dia string, cantidad, precio float64, existencia int64) entity.SaleRecord {
	t.Helper()
	d, err := time.Parse("2006-01-02", dia)
	require.NoError(t, err)
	return entity.SaleRecord{
		Clave:       clave,
		Descripcion: "Producto " + clave,
		Cantidad:    decimal.NewFromFloat(cantidad),
		Precio:      decimal.NewFromFloat(precio),
		Existencia:  existencia,
		Fecha:       d,
	}
}

// relojFijo fija el "hoy" para que el rango del mes en curso sea determinista.
func relojFijo(dia string) func() time.Time {
	return func() time.Time {
		d, _ := time.Parse("2006-01-02", dia)
		return d
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Flujo completo: ventas de PROD001 en los tres meses previos, acumulado del
// mes en curso y sin precio específico del cliente.
func TestSalesSummary_FlujoCompleto(t *testing.T) {
	fake := newFakeSalesService()
	fake.sales["2025-01-01"] = []entity.SaleRecord{registro(t, "PROD001", "2025-01-15", 10, 25.50, 100)}
	fake.sales["2025-02-01"] = []entity.SaleRecord{registro(t, "PROD001", "2025-02-15", 15, 25.50, 100)}
	fake.sales["2025-03-01"] = []entity.SaleRecord{registro(t, "PROD001", "2025-03-15", 8, 25.50, 100)}
	fake.sales["2025-04-01"] = []entity.SaleRecord{registro(t, "PROD001", "2025-04-10", 5, 25.50, 100)}

	uc := usecase.NewSalesSummaryUseCase(fake, quietLogger()).WithClock(relojFijo("2025-04-15"))

	out, err := uc.Generate(context.Background(), "CLI001", 4, 2025)
	require.NoError(t, err)

	require.Len(t, out.Suggestions, 1)
	s := out.Suggestions[0]
	assert.Equal(t, "PROD001", s.Sku)
	assert.Equal(t, int64(11), s.AvgLast3Months)
	assert.Equal(t, int64(0), s.AvgSameMonthLastYear)
	assert.Equal(t, int64(11), s.CantidadSugerida)
	assert.InDelta(t, 25.50, s.Precio, 1e-9)
	assert.InDelta(t, 280.50, s.Subtotal, 1e-9)
	assert.Equal(t, int64(100), s.Existencia)
	assert.False(t, s.HasClientPrice)
	assert.InDelta(t, 5, s.AcumuladoMesActual, 1e-9)

	assert.Equal(t, int64(11), out.Summary.TotalItems)
	assert.InDelta(t, 280.50, out.Summary.TotalValue, 1e-9)
	assert.Equal(t, 4, out.Month)
	assert.Equal(t, 2025, out.Year)

	// 3 rangos de 3 meses + 4 del año anterior + mes en curso = 8 consultas.
	assert.Equal(t, 8, fake.calls)
}

// Un rango caído no aborta el cálculo: aporta cero registros.
func TestSalesSummary_RangoCaidoAportaCero(t *testing.T) {
	fake := newFakeSalesService()
	fake.sales["2025-03-01"] = []entity.SaleRecord{registro(t, "PROD001", "2025-03-15", 12, 10, 50)}
	fake.rangeErr["2025-02-01"] = errors.New("upstream caído")

	uc := usecase.NewSalesSummaryUseCase(fake, quietLogger()).WithClock(relojFijo("2025-04-15"))

	out, err := uc.Generate(context.Background(), "CLI001", 4, 2025)
	require.NoError(t, err)

	require.Len(t, out.Suggestions, 1)
	assert.Equal(t, int64(12), out.Suggestions[0].AvgLast3Months,
		"solo marzo aporta datos: 12 unidades en 1 mes")
}

// La falta de token es precondición fatal y se propaga tal cual.
func TestSalesSummary_TokenNoConfiguradoEsFatal(t *testing.T) {
	fake := newFakeSalesService()
	fake.rangeErr["2025-03-01"] = domain.ErrTokenNotConfigured

	uc := usecase.NewSalesSummaryUseCase(fake, quietLogger()).WithClock(relojFijo("2025-04-15"))

	_, err := uc.Generate(context.Background(), "CLI001", 4, 2025)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTokenNotConfigured)
}

// Si la lista de precios falla se usan los precios históricos.
func TestSalesSummary_PreciosCaidosUsaHistoricos(t *testing.T) {
	fake := newFakeSalesService()
	fake.sales["2025-03-01"] = []entity.SaleRecord{registro(t, "PROD001", "2025-03-15", 10, 30, 50)}
	fake.pricingErr = errors.New("lista no disponible")

	uc := usecase.NewSalesSummaryUseCase(fake, quietLogger()).WithClock(relojFijo("2025-04-15"))

	out, err := uc.Generate(context.Background(), "CLI001", 4, 2025)
	require.NoError(t, err)

	require.Len(t, out.Suggestions, 1)
	assert.False(t, out.Suggestions[0].HasClientPrice)
	assert.InDelta(t, 30, out.Suggestions[0].Precio, 1e-9)
}

// El precio específico del cliente se aplica cuando la lista responde.
func TestSalesSummary_AplicaPrecioDelCliente(t *testing.T) {
	fake := newFakeSalesService()
	fake.sales["2025-03-01"] = []entity.SaleRecord{registro(t, "PROD001", "2025-03-15", 10, 30, 50)}
	precio := decimal.NewFromInt(22)
	fake.pricing = []entity.ClientPrice{{Clave: "PROD001", Precio: &precio}}

	uc := usecase.NewSalesSummaryUseCase(fake, quietLogger()).WithClock(relojFijo("2025-04-15"))

	out, err := uc.Generate(context.Background(), "CLI001", 4, 2025)
	require.NoError(t, err)

	require.Len(t, out.Suggestions, 1)
	assert.True(t, out.Suggestions[0].HasClientPrice)
	assert.InDelta(t, 22, out.Suggestions[0].Precio, 1e-9)
	assert.InDelta(t, 220, out.Suggestions[0].Subtotal, 1e-9)
}

// Sin ventas en ninguna ventana el resumen es vacío, no un error.
func TestSalesSummary_SinVentas(t *testing.T) {
	uc := usecase.NewSalesSummaryUseCase(newFakeSalesService(), quietLogger()).
		WithClock(relojFijo("2025-04-15"))

	out, err := uc.Generate(context.Background(), "CLI001", 4, 2025)
	require.NoError(t, err)

	assert.Empty(t, out.Suggestions)
	assert.Equal(t, int64(0), out.Summary.TotalItems)
	assert.Equal(t, 0, out.Summary.TotalProducts)
}
