package suggestion

import (
	"github.com/shopspring/decimal"

	"github.com/levantapedidos/levantapedidos-api/internal/domain/entity"
)

// Aggregated acumulado de ventas de un producto dentro de una ventana.
// Descripción, precio y existencia conservan el último registro visto en el
// orden de entrada, no el más reciente por fecha.
type Aggregated struct {
	Clave       string
	Descripcion string
	Precio      decimal.Decimal
	Existencia  int64
	QtyTotal    decimal.Decimal
	Months      map[string]struct{}
}

// MonthlyAverage promedio mensual redondeado: total entre meses distintos con
// redondeo half-up; 0 si la ventana no registró ningún mes.
func (a *Aggregated) MonthlyAverage() int64 {
	if len(a.Months) == 0 {
		return 0
	}
	months := decimal.NewFromInt(int64(len(a.Months)))
	return a.QtyTotal.Div(months).Round(0).IntPart()
}

// Window resultado de agregar una ventana de ventas por clave de producto.
// Conserva el orden de primera aparición de cada clave; ese orden define el
// recorrido estable del motor de sugerencias.
type Window struct {
	byKey map[string]*Aggregated
	order []string
}

// AggregateSales agrupa las ventas por clave y acumula cantidad total y meses
// calendario distintos. Una entrada vacía produce una ventana vacía.
func AggregateSales(sales []entity.SaleRecord) *Window {
	w := &Window{byKey: make(map[string]*Aggregated, len(sales))}
	for _, sale := range sales {
		entry, ok := w.byKey[sale.Clave]
		if !ok {
			entry = &Aggregated{Clave: sale.Clave, Months: make(map[string]struct{})}
			w.byKey[sale.Clave] = entry
			w.order = append(w.order, sale.Clave)
		}
		entry.Descripcion = sale.Descripcion
		entry.Precio = sale.Precio
		entry.Existencia = sale.Existencia
		entry.QtyTotal = entry.QtyTotal.Add(sale.Cantidad)
		entry.Months[sale.MesCalendario()] = struct{}{}
	}
	return w
}

// Get devuelve el acumulado de una clave, si existe.
func (w *Window) Get(clave string) (*Aggregated, bool) {
	entry, ok := w.byKey[clave]
	return entry, ok
}

// Keys claves en orden de primera aparición.
func (w *Window) Keys() []string { return w.order }

// Len número de productos distintos en la ventana.
func (w *Window) Len() int { return len(w.order) }

// CurrentMonth total vendido por clave en el mes en curso, sin promediar.
type CurrentMonth struct {
	byKey map[string]decimal.Decimal
	order []string
}

// AccumulateCurrentMonth suma las cantidades por clave del mes en curso.
func AccumulateCurrentMonth(sales []entity.SaleRecord) *CurrentMonth {
	m := &CurrentMonth{byKey: make(map[string]decimal.Decimal, len(sales))}
	for _, sale := range sales {
		total, ok := m.byKey[sale.Clave]
		if !ok {
			m.order = append(m.order, sale.Clave)
		}
		m.byKey[sale.Clave] = total.Add(sale.Cantidad)
	}
	return m
}

// Get total acumulado de una clave; cero si la clave no vendió este mes.
func (m *CurrentMonth) Get(clave string) decimal.Decimal { return m.byKey[clave] }

// Keys claves en orden de primera aparición.
func (m *CurrentMonth) Keys() []string { return m.order }

// Len número de productos distintos con ventas en el mes en curso.
func (m *CurrentMonth) Len() int { return len(m.order) }
