package usecase

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/levantapedidos/levantapedidos-api/internal/application/dto"
	"github.com/levantapedidos/levantapedidos-api/internal/application/ports"
)

// DefaultSearchLimit máximo de resultados cuando la petición no indica limit.
const DefaultSearchLimit = 20

// ProductSearchUseCase búsqueda de productos dentro de la lista total del
// cliente. La comparación ignora mayúsculas y diacríticos: "cafe" encuentra
// "Café".
type ProductSearchUseCase struct {
	sales ports.SalesDataService
}

// NewProductSearchUseCase construye el caso de uso.
func NewProductSearchUseCase(sales ports.SalesDataService) *ProductSearchUseCase {
	return &ProductSearchUseCase{sales: sales}
}

// Search filtra la lista del cliente por coincidencia de subcadena en clave o
// descripción, con tope de limit resultados (DefaultSearchLimit si limit <= 0).
func (uc *ProductSearchUseCase) Search(ctx context.Context, clientID, term string, limit int) ([]dto.ProductPriceDTO, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	products, err := uc.sales.ClientPricing(ctx, clientID)
	if err != nil {
		return nil, err
	}

	needle := foldString(term)
	out := make([]dto.ProductPriceDTO, 0, limit)
	for _, p := range products {
		if !strings.Contains(foldString(p.Clave), needle) &&
			!strings.Contains(foldString(p.Descripcion), needle) {
			continue
		}
		out = append(out, dto.FromClientPrice(p))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// foldString minúsculas sin marcas diacríticas. El transformer se construye
// por llamada porque encadena estado y no es seguro compartirlo entre
// goroutines. Si la normalización falla se compara la cadena tal cual.
func foldString(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
