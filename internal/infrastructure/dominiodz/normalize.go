package dominiodz

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/levantapedidos/levantapedidos-api/internal/domain/entity"
)

// Normalización en la frontera: el upstream no tiene esquema fijo (campos
// nombrados clave/sku/codigo, precio/price según la opción). Aquí se resuelve
// esa ambigüedad una sola vez; hacia adentro solo viajan los tipos de entity.

// rawSale registro de venta tal como llega de ventaxclientexperiodo.
type rawSale struct {
	Fecha       string  `json:"fecha"`
	Clave       string  `json:"clave"`
	Descripcion string  `json:"descripcion"`
	Cantidad    float64 `json:"cantidad"`
	Precio      float64 `json:"precio"`
	Existencia  float64 `json:"existencia"`
}

// parseFecha acepta fechas "2006-01-02" con o sin componente horario.
func parseFecha(s string) (time.Time, bool) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// normalizeSales convierte los registros crudos al tipo interno. Los registros
// sin clave o con fecha ilegible se descartan.
func normalizeSales(raws []rawSale) []entity.SaleRecord {
	sales := make([]entity.SaleRecord, 0, len(raws))
	for _, r := range raws {
		if r.Clave == "" {
			continue
		}
		fecha, ok := parseFecha(r.Fecha)
		if !ok {
			continue
		}
		sales = append(sales, entity.SaleRecord{
			Clave:       r.Clave,
			Descripcion: r.Descripcion,
			Cantidad:    decimal.NewFromFloat(r.Cantidad),
			Precio:      decimal.NewFromFloat(r.Precio),
			Existencia:  int64(r.Existencia),
			Fecha:       fecha,
		})
	}
	return sales
}

// rawPriceEntry entrada de la lista de precios (listatotalxcliente).
type rawPriceEntry struct {
	Clave       string   `json:"clave"`
	SKU         string   `json:"sku"`
	Codigo      string   `json:"codigo"`
	Descripcion string   `json:"descripcion"`
	Description string   `json:"description"`
	Precio      *float64 `json:"precio"`
	Price       *float64 `json:"price"`
	Existencia  *float64 `json:"existencia"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func coalesceFloat(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

// normalizePrices canonicaliza la clave y el precio de cada entrada. Las
// entradas sin ninguna clave se descartan; las que no traen precio se
// conservan con Precio nil, sin autoridad sobre el precio histórico.
func normalizePrices(raws []rawPriceEntry) []entity.ClientPrice {
	prices := make([]entity.ClientPrice, 0, len(raws))
	for _, r := range raws {
		clave := firstNonEmpty(r.Clave, r.SKU, r.Codigo)
		if clave == "" {
			continue
		}
		p := entity.ClientPrice{
			Clave:       clave,
			Descripcion: firstNonEmpty(r.Descripcion, r.Description),
		}
		if v := coalesceFloat(r.Precio, r.Price); v != nil {
			d := decimal.NewFromFloat(*v)
			p.Precio = &d
		}
		if r.Existencia != nil {
			d := decimal.NewFromFloat(*r.Existencia)
			p.Existencia = &d
		}
		prices = append(prices, p)
	}
	return prices
}

// rawClient respuesta de clientexclave; puede venir como objeto suelto o como
// arreglo de un elemento.
type rawClient struct {
	Clave     string  `json:"clave"`
	Nombre    string  `json:"nombre"`
	Precios   string  `json:"precios"`
	Descuento float64 `json:"descuento"`
}

// normalizeClient devuelve nil cuando el upstream no conoce al cliente.
func normalizeClient(raw json.RawMessage) *entity.Client {
	var rc rawClient
	var list []rawClient
	if err := json.Unmarshal(raw, &list); err == nil {
		if len(list) == 0 {
			return nil
		}
		rc = list[0]
	} else if err := json.Unmarshal(raw, &rc); err != nil {
		return nil
	}
	if rc.Clave == "" && rc.Nombre == "" {
		return nil
	}
	return &entity.Client{
		Clave:     rc.Clave,
		Nombre:    rc.Nombre,
		Precios:   rc.Precios,
		Descuento: decimal.NewFromFloat(rc.Descuento),
	}
}
