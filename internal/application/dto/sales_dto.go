package dto

import "github.com/levantapedidos/levantapedidos-api/internal/domain/entity"

// ── Requests ──────────────────────────────────────────────────────────────────

// SalesSummaryRequest cuerpo de POST /api/sales-summary.
type SalesSummaryRequest struct {
	ClientID string `json:"clientId"`
	Month    int    `json:"month"` // 1-12
	Year     int    `json:"year"`  // ej. 2025
}

// ClientRequest cuerpo de POST /api/client-data, /api/client-pricing y
// /api/suggested-order.
type ClientRequest struct {
	ClientID string `json:"clientId"`
}

// ProductSearchRequest cuerpo de POST /api/product-search.
type ProductSearchRequest struct {
	ClientID   string `json:"clientId"`
	SearchTerm string `json:"searchTerm"` // mínimo 3 caracteres
	Limit      int    `json:"limit"`      // por defecto 20
}

// ── Responses ─────────────────────────────────────────────────────────────────

// OrderSuggestionDTO una fila del pedido sugerido. Los nombres de campo
// conservan el contrato que consume el formulario de levantapedidos.
type OrderSuggestionDTO struct {
	Sku                  string  `json:"sku"`
	Descripcion          string  `json:"descripcion"`
	AvgLast3Months       int64   `json:"avgLast3Months"`
	AvgSameMonthLastYear int64   `json:"avgSameMonthLastYear"`
	AcumuladoMesActual   float64 `json:"acumuladoMesActual"`
	CantidadSugerida     int64   `json:"cantidadSugerida"`
	Precio               float64 `json:"precio"`
	Subtotal             float64 `json:"subtotal"`
	Existencia           int64   `json:"existencia"`
	HasClientPrice       bool    `json:"hasClientPrice"`
}

// SummaryTotalsDTO totales del pedido sugerido.
type SummaryTotalsDTO struct {
	TotalItems                   int64   `json:"totalItems"`
	TotalValue                   float64 `json:"totalValue"`
	TotalProducts                int     `json:"totalProducts"`
	TotalAcumuladoMesActual      float64 `json:"totalAcumuladoMesActual"`
	TotalValueAcumuladoMesActual float64 `json:"totalValueAcumuladoMesActual"`
}

// OrderSummaryDTO respuesta de POST /api/sales-summary.
type OrderSummaryDTO struct {
	Suggestions []OrderSuggestionDTO `json:"suggestions"`
	Summary     SummaryTotalsDTO     `json:"summary"`
	Month       int                  `json:"month"`
	Year        int                  `json:"year"`
}

// SuggestedOrderResponse resumen condensado de POST /api/suggested-order.
type SuggestedOrderResponse struct {
	PedidoSugeridoUnits int64   `json:"pedidoSugeridoUnits"`
	PedidoSugeridoValue float64 `json:"pedidoSugeridoValue"`
	UndsInicial         int64   `json:"undsInicial"`
	ValorMesActual      float64 `json:"valorMesActual"`
	Stock               int     `json:"stock"`
	SinStock            int     `json:"sinStock"`
	TotalProducts       int     `json:"totalProducts"`
	Month               int     `json:"month"`
	Year                int     `json:"year"`
}

// ClientDTO datos maestros del cliente.
type ClientDTO struct {
	Clave     string  `json:"clave"`
	Nombre    string  `json:"nombre"`
	Precios   string  `json:"precios"`
	Descuento float64 `json:"descuento"`
}

// ProductPriceDTO entrada de la lista de precios / búsqueda de productos.
// Precio es null cuando el producto no tiene precio específico del cliente.
type ProductPriceDTO struct {
	Clave       string   `json:"clave"`
	Descripcion string   `json:"descripcion"`
	Precio      *float64 `json:"precio"`
	Existencia  *float64 `json:"existencia,omitempty"`
}

// ── Mapeos ────────────────────────────────────────────────────────────────────

// FromOrderSummary convierte el resultado del motor al contrato JSON. Los
// decimales pasan a número plano solo en esta frontera.
func FromOrderSummary(s entity.OrderSummary) *OrderSummaryDTO {
	suggestions := make([]OrderSuggestionDTO, 0, len(s.Suggestions))
	for _, row := range s.Suggestions {
		suggestions = append(suggestions, OrderSuggestionDTO{
			Sku:                  row.Sku,
			Descripcion:          row.Descripcion,
			AvgLast3Months:       row.AvgLast3Months,
			AvgSameMonthLastYear: row.AvgSameMonthLastYear,
			AcumuladoMesActual:   row.AcumuladoMesActual.InexactFloat64(),
			CantidadSugerida:     row.CantidadSugerida,
			Precio:               row.Precio.InexactFloat64(),
			Subtotal:             row.Subtotal.InexactFloat64(),
			Existencia:           row.Existencia,
			HasClientPrice:       row.HasClientPrice,
		})
	}
	return &OrderSummaryDTO{
		Suggestions: suggestions,
		Summary: SummaryTotalsDTO{
			TotalItems:                   s.Summary.TotalItems,
			TotalValue:                   s.Summary.TotalValue.InexactFloat64(),
			TotalProducts:                s.Summary.TotalProducts,
			TotalAcumuladoMesActual:      s.Summary.TotalAcumuladoMesActual.InexactFloat64(),
			TotalValueAcumuladoMesActual: s.Summary.TotalValueAcumuladoMesActual.InexactFloat64(),
		},
		Month: s.Month,
		Year:  s.Year,
	}
}

// FromClient convierte la entidad de cliente al contrato JSON.
func FromClient(c entity.Client) *ClientDTO {
	return &ClientDTO{
		Clave:     c.Clave,
		Nombre:    c.Nombre,
		Precios:   c.Precios,
		Descuento: c.Descuento.InexactFloat64(),
	}
}

// FromClientPrice convierte una entrada de la lista de precios.
func FromClientPrice(p entity.ClientPrice) ProductPriceDTO {
	out := ProductPriceDTO{Clave: p.Clave, Descripcion: p.Descripcion}
	if p.Precio != nil {
		v := p.Precio.InexactFloat64()
		out.Precio = &v
	}
	if p.Existencia != nil {
		v := p.Existencia.InexactFloat64()
		out.Existencia = &v
	}
	return out
}
