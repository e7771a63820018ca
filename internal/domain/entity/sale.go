package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord una línea de venta histórica tal como la entrega DominioDZ,
// ya normalizada en la frontera (clave canónica única, fecha parseada).
// Es inmutable: el motor de sugerencias solo la lee.
type SaleRecord struct {
	Clave       string
	Descripcion string
	Cantidad    decimal.Decimal
	Precio      decimal.Decimal
	Existencia  int64
	Fecha       time.Time
}

// MesCalendario devuelve el mes de la venta con granularidad año-mes ("2006-01").
func (s SaleRecord) MesCalendario() string {
	return s.Fecha.Format("2006-01")
}

// ClientPrice entrada de la lista de precios específica de un cliente.
// Precio es nil cuando el registro upstream no trae ningún campo de precio;
// esas entradas no tienen autoridad sobre el precio histórico.
type ClientPrice struct {
	Clave       string
	Descripcion string
	Precio      *decimal.Decimal
	Existencia  *decimal.Decimal
}

// Client datos maestros del cliente (opción clientexclave).
type Client struct {
	Clave     string
	Nombre    string
	Precios   string
	Descuento decimal.Decimal
}
