package suggestion

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/levantapedidos/levantapedidos-api/internal/domain/entity"
)

// Inputs agrupa las tres ventanas ya agregadas más la lista de precios
// específica del cliente. Cualquier campo puede venir vacío o nil.
type Inputs struct {
	Last3Months       *Window
	SameMonthLastYear *Window
	CurrentMonth      *CurrentMonth
	ClientPricing     []entity.ClientPrice
}

// Calculate produce el pedido sugerido para el mes objetivo. Es una función
// pura y total: sin estado compartido, sin errores, reutilizable entre
// peticiones concurrentes.
//
// Por cada producto de la unión de las tres ventanas:
//   - cantidad sugerida = mayor de los dos promedios mensuales, forzada a 0
//     si no hay existencia y acotada por la existencia cuando es menor;
//   - precio = el específico del cliente si existe, si no el histórico;
//   - subtotal = cantidad sugerida × precio, redondeado a 2 decimales.
//
// Las filas se ordenan por subtotal descendente con orden estable: los empates
// conservan el orden de primera aparición en la unión de claves.
func Calculate(month, year int, in Inputs) entity.OrderSummary {
	if in.Last3Months == nil {
		in.Last3Months = AggregateSales(nil)
	}
	if in.SameMonthLastYear == nil {
		in.SameMonthLastYear = AggregateSales(nil)
	}
	if in.CurrentMonth == nil {
		in.CurrentMonth = AccumulateCurrentMonth(nil)
	}

	// Lookup de precios del cliente; solo las entradas con precio definido
	// tienen autoridad, el resto se descarta sin reportar error.
	clientPrice := make(map[string]decimal.Decimal, len(in.ClientPricing))
	for _, p := range in.ClientPricing {
		if p.Clave == "" || p.Precio == nil {
			continue
		}
		clientPrice[p.Clave] = *p.Precio
	}

	// Unión de claves en orden de primera aparición: primero la ventana de
	// 3 meses, luego la del año anterior, luego el mes en curso.
	seen := make(map[string]struct{})
	keys := make([]string, 0, in.Last3Months.Len()+in.SameMonthLastYear.Len()+in.CurrentMonth.Len())
	for _, group := range [][]string{in.Last3Months.Keys(), in.SameMonthLastYear.Keys(), in.CurrentMonth.Keys()} {
		for _, clave := range group {
			if _, dup := seen[clave]; dup {
				continue
			}
			seen[clave] = struct{}{}
			keys = append(keys, clave)
		}
	}

	suggestions := make([]entity.OrderSuggestion, 0, len(keys))
	for _, clave := range keys {
		var (
			avg3, avgSame int64
			descripcion   string
			existencia    int64
			precio        decimal.Decimal
		)

		entry3, ok3 := in.Last3Months.Get(clave)
		entrySame, okSame := in.SameMonthLastYear.Get(clave)
		if ok3 {
			avg3 = entry3.MonthlyAverage()
		}
		if okSame {
			avgSame = entrySame.MonthlyAverage()
		}

		// Metadatos del producto: prefiere la ventana de 3 meses.
		switch {
		case ok3:
			descripcion, existencia, precio = entry3.Descripcion, entry3.Existencia, entry3.Precio
		case okSame:
			descripcion, existencia, precio = entrySame.Descripcion, entrySame.Existencia, entrySame.Precio
		}

		sugerida := avg3
		if avgSame > sugerida {
			sugerida = avgSame
		}
		// La existencia solo acota hacia abajo, nunca aumenta la sugerencia.
		if existencia == 0 {
			sugerida = 0
		} else if existencia < sugerida {
			sugerida = existencia
		}

		hasClientPrice := false
		if cp, ok := clientPrice[clave]; ok {
			precio = cp
			hasClientPrice = true
		}

		suggestions = append(suggestions, entity.OrderSuggestion{
			Sku:                  clave,
			Descripcion:          descripcion,
			AvgLast3Months:       avg3,
			AvgSameMonthLastYear: avgSame,
			AcumuladoMesActual:   in.CurrentMonth.Get(clave),
			CantidadSugerida:     sugerida,
			Precio:               precio,
			Subtotal:             decimal.NewFromInt(sugerida).Mul(precio).Round(2),
			Existencia:           existencia,
			HasClientPrice:       hasClientPrice,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Subtotal.GreaterThan(suggestions[j].Subtotal)
	})

	totals := entity.SummaryTotals{TotalProducts: len(suggestions)}
	for _, s := range suggestions {
		totals.TotalItems += s.CantidadSugerida
		totals.TotalValue = totals.TotalValue.Add(s.Subtotal)
		totals.TotalAcumuladoMesActual = totals.TotalAcumuladoMesActual.Add(s.AcumuladoMesActual)
		// El acumulado del mes se valora al precio resuelto de la sugerencia,
		// no al precio histórico de cada venta.
		totals.TotalValueAcumuladoMesActual = totals.TotalValueAcumuladoMesActual.
			Add(s.AcumuladoMesActual.Mul(s.Precio).Round(2))
	}

	return entity.OrderSummary{
		Suggestions: suggestions,
		Summary:     totals,
		Month:       month,
		Year:        year,
	}
}
