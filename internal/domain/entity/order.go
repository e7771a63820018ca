package entity

import "github.com/shopspring/decimal"

// OrderSuggestion una fila del pedido sugerido para un producto. Se construye
// una sola vez por clave en cada invocación del motor y no se muta después.
type OrderSuggestion struct {
	Sku                  string
	Descripcion          string
	AvgLast3Months       int64
	AvgSameMonthLastYear int64
	AcumuladoMesActual   decimal.Decimal
	CantidadSugerida     int64
	Precio               decimal.Decimal
	Subtotal             decimal.Decimal
	Existencia           int64
	HasClientPrice       bool
}

// SummaryTotals totales agregados sobre todas las sugerencias de una invocación.
type SummaryTotals struct {
	TotalItems                   int64
	TotalValue                   decimal.Decimal
	TotalProducts                int
	TotalAcumuladoMesActual      decimal.Decimal
	TotalValueAcumuladoMesActual decimal.Decimal
}

// OrderSummary resultado completo del motor para un cliente y mes objetivo.
type OrderSummary struct {
	Suggestions []OrderSuggestion
	Summary     SummaryTotals
	Month       int
	Year        int
}
