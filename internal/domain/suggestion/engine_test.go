package suggestion_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levantapedidos/levantapedidos-api/internal/domain/entity"
	"github.com/levantapedidos/levantapedidos-api/internal/domain/suggestion"
)

func ventaConPrecio(t *testing.T, clave, dia string, cantidad, precio float64, existencia int64) entity.SaleRecord {
	t.Helper()
	s := venta(t, clave, dia, cantidad)
	s.Precio = decimal.NewFromFloat(precio)
	s.Existencia = existencia
	return s
}

func precioCliente(clave string, precio float64) entity.ClientPrice {
	p := decimal.NewFromFloat(precio)
	return entity.ClientPrice{Clave: clave, Precio: &p}
}

// ──────────────────────────────────────────────────────────────────────────────
// Vector de extremo a extremo: PROD001 con cantidades [10,15,8] en 3 meses
// (promedio 11), sin ventas el año anterior, 5 unidades acumuladas este mes,
// existencia 100, precio histórico 25.50 y sin precio de cliente.
// ──────────────────────────────────────────────────────────────────────────────
func TestCalculate_VectorProd001(t *testing.T) {
	last3 := suggestion.AggregateSales([]entity.SaleRecord{
		ventaConPrecio(t, "PROD001", "2025-01-15", 10, 25.50, 100),
		ventaConPrecio(t, "PROD001", "2025-02-15", 15, 25.50, 100),
		ventaConPrecio(t, "PROD001", "2025-03-15", 8, 25.50, 100),
	})
	current := suggestion.AccumulateCurrentMonth([]entity.SaleRecord{
		ventaConPrecio(t, "PROD001", "2025-04-10", 5, 25.50, 100),
	})

	out := suggestion.Calculate(4, 2025, suggestion.Inputs{
		Last3Months:  last3,
		CurrentMonth: current,
	})

	require.Len(t, out.Suggestions, 1)
	s := out.Suggestions[0]
	assert.Equal(t, "PROD001", s.Sku)
	assert.Equal(t, int64(11), s.AvgLast3Months)
	assert.Equal(t, int64(0), s.AvgSameMonthLastYear)
	assert.Equal(t, int64(11), s.CantidadSugerida)
	assert.True(t, s.Precio.Equal(decimal.NewFromFloat(25.50)))
	assert.True(t, s.Subtotal.Equal(decimal.NewFromFloat(280.50)), "11 × 25.50 = 280.50")
	assert.Equal(t, int64(100), s.Existencia)
	assert.False(t, s.HasClientPrice)
	assert.True(t, s.AcumuladoMesActual.Equal(decimal.NewFromInt(5)))

	assert.Equal(t, int64(11), out.Summary.TotalItems)
	assert.True(t, out.Summary.TotalValue.Equal(decimal.NewFromFloat(280.50)))
	assert.Equal(t, 1, out.Summary.TotalProducts)
	assert.True(t, out.Summary.TotalAcumuladoMesActual.Equal(decimal.NewFromInt(5)))
	assert.True(t, out.Summary.TotalValueAcumuladoMesActual.Equal(decimal.NewFromFloat(127.50)),
		"el acumulado se valora al precio resuelto: 5 × 25.50")
	assert.Equal(t, 4, out.Month)
	assert.Equal(t, 2025, out.Year)
}

// Sin existencia la sugerencia es siempre 0, sin importar los promedios.
func TestCalculate_SinExistenciaFuerzaCero(t *testing.T) {
	last3 := suggestion.AggregateSales([]entity.SaleRecord{
		ventaConPrecio(t, "PROD001", "2025-01-15", 90, 10, 0),
	})

	out := suggestion.Calculate(4, 2025, suggestion.Inputs{Last3Months: last3})

	require.Len(t, out.Suggestions, 1)
	assert.Equal(t, int64(90), out.Suggestions[0].AvgLast3Months)
	assert.Equal(t, int64(0), out.Suggestions[0].CantidadSugerida)
	assert.True(t, out.Suggestions[0].Subtotal.IsZero())
}

// La existencia acota hacia abajo pero nunca aumenta la sugerencia.
func TestCalculate_ExistenciaAcotaLaSugerencia(t *testing.T) {
	last3 := suggestion.AggregateSales([]entity.SaleRecord{
		ventaConPrecio(t, "PROD001", "2025-01-15", 20, 10, 5),
	})
	sameMonth := suggestion.AggregateSales([]entity.SaleRecord{
		ventaConPrecio(t, "PROD001", "2024-04-15", 30, 10, 5),
	})

	out := suggestion.Calculate(4, 2025, suggestion.Inputs{
		Last3Months:       last3,
		SameMonthLastYear: sameMonth,
	})

	require.Len(t, out.Suggestions, 1)
	s := out.Suggestions[0]
	assert.Equal(t, int64(20), s.AvgLast3Months)
	assert.Equal(t, int64(30), s.AvgSameMonthLastYear)
	assert.Equal(t, int64(5), s.CantidadSugerida, "máx(20,30)=30 acotado a existencia 5")
}

// El precio específico del cliente tiene prioridad sobre el histórico; las
// entradas sin precio definido se ignoran al construir el lookup.
func TestCalculate_PrecioDelCliente(t *testing.T) {
	last3 := suggestion.AggregateSales([]entity.SaleRecord{
		ventaConPrecio(t, "PROD001", "2025-01-15", 10, 25.50, 100),
		ventaConPrecio(t, "PROD002", "2025-01-20", 10, 40, 100),
	})

	out := suggestion.Calculate(4, 2025, suggestion.Inputs{
		Last3Months: last3,
		ClientPricing: []entity.ClientPrice{
			precioCliente("PROD001", 22),
			{Clave: "PROD002"}, // sin precio: no tiene autoridad
		},
	})

	require.Len(t, out.Suggestions, 2)
	bySku := map[string]entity.OrderSuggestion{}
	for _, s := range out.Suggestions {
		bySku[s.Sku] = s
	}

	conPrecio := bySku["PROD001"]
	assert.True(t, conPrecio.HasClientPrice)
	assert.True(t, conPrecio.Precio.Equal(decimal.NewFromInt(22)))
	assert.True(t, conPrecio.Subtotal.Equal(decimal.NewFromInt(220)))

	sinPrecio := bySku["PROD002"]
	assert.False(t, sinPrecio.HasClientPrice)
	assert.True(t, sinPrecio.Precio.Equal(decimal.NewFromInt(40)))
}

// Orden por subtotal descendente; los empates conservan el orden de primera
// aparición en la unión de claves.
func TestCalculate_OrdenPorSubtotalEstable(t *testing.T) {
	last3 := suggestion.AggregateSales([]entity.SaleRecord{
		ventaConPrecio(t, "BARATO", "2025-01-10", 2, 1, 100),
		ventaConPrecio(t, "EMPATE-A", "2025-01-11", 10, 5, 100),
		ventaConPrecio(t, "EMPATE-B", "2025-01-12", 5, 10, 100),
		ventaConPrecio(t, "CARO", "2025-01-13", 10, 50, 100),
	})

	out := suggestion.Calculate(4, 2025, suggestion.Inputs{Last3Months: last3})

	require.Len(t, out.Suggestions, 4)
	assert.Equal(t, "CARO", out.Suggestions[0].Sku)
	assert.Equal(t, "EMPATE-A", out.Suggestions[1].Sku, "empate en 50: conserva orden de aparición")
	assert.Equal(t, "EMPATE-B", out.Suggestions[2].Sku)
	assert.Equal(t, "BARATO", out.Suggestions[3].Sku)

	for i := 1; i < len(out.Suggestions); i++ {
		assert.False(t, out.Suggestions[i].Subtotal.GreaterThan(out.Suggestions[i-1].Subtotal),
			"los subtotales no pueden crecer")
	}
}

// La unión cubre las tres ventanas: un producto que solo vendió este mes
// aparece en el resultado aunque no tenga promedios ni metadatos.
func TestCalculate_ProductoSoloDelMesActual(t *testing.T) {
	current := suggestion.AccumulateCurrentMonth([]entity.SaleRecord{
		ventaConPrecio(t, "NUEVO", "2025-04-02", 3, 15, 10),
	})

	out := suggestion.Calculate(4, 2025, suggestion.Inputs{CurrentMonth: current})

	require.Len(t, out.Suggestions, 1)
	s := out.Suggestions[0]
	assert.Equal(t, "NUEVO", s.Sku)
	assert.Equal(t, int64(0), s.CantidadSugerida)
	assert.True(t, s.AcumuladoMesActual.Equal(decimal.NewFromInt(3)))
	assert.True(t, out.Summary.TotalAcumuladoMesActual.Equal(decimal.NewFromInt(3)))
}

// El total del pedido es la suma exacta de los subtotales ya redondeados.
func TestCalculate_TotalEsSumaDeSubtotales(t *testing.T) {
	last3 := suggestion.AggregateSales([]entity.SaleRecord{
		ventaConPrecio(t, "PROD001", "2025-01-10", 3, 1.115, 100),
		ventaConPrecio(t, "PROD002", "2025-01-10", 7, 2.225, 100),
	})

	out := suggestion.Calculate(4, 2025, suggestion.Inputs{Last3Months: last3})

	var esperado decimal.Decimal
	for _, s := range out.Suggestions {
		esperado = esperado.Add(s.Subtotal)
	}
	assert.True(t, out.Summary.TotalValue.Equal(esperado))
}

// El motor es total sobre su dominio: entradas nil producen resumen vacío.
func TestCalculate_EntradasNil(t *testing.T) {
	out := suggestion.Calculate(7, 2025, suggestion.Inputs{})

	assert.Empty(t, out.Suggestions)
	assert.Equal(t, int64(0), out.Summary.TotalItems)
	assert.True(t, out.Summary.TotalValue.IsZero())
	assert.Equal(t, 0, out.Summary.TotalProducts)
	assert.Equal(t, 7, out.Month)
	assert.Equal(t, 2025, out.Year)
}
