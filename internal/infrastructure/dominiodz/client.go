package dominiodz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/levantapedidos/levantapedidos-api/internal/application/ports"
	"github.com/levantapedidos/levantapedidos-api/internal/domain"
	"github.com/levantapedidos/levantapedidos-api/internal/domain/entity"
	"github.com/levantapedidos/levantapedidos-api/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa SalesDataService.
var _ ports.SalesDataService = (*Client)(nil)

const (
	procedimiento = "apiconsultas"
	cusert        = "CUSERT"

	opcionVentas  = "ventaxclientexperiodo"
	opcionCliente = "clientexclave"
	opcionLista   = "listatotalxcliente"
)

// Config parámetros de conexión al endpoint procedimientogen2 de DominioDZ.
type Config struct {
	Endpoint string
	Empresa  string
	Usuario  string
	GUser    string
	Token    string
	Timeout  time.Duration
}

// Client adaptador que implementa SalesDataService contra la API de consultas
// de DominioDZ. Usa net/http de la librería estándar; no hay SDK del proveedor.
// Si Token está vacío las llamadas devuelven domain.ErrTokenNotConfigured sin
// tocar la red.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el adaptador. Un Timeout no positivo usa 15 s.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// envelope cuerpo fijo que espera procedimientogen2.
type envelope struct {
	Empresa       string         `json:"empresa"`
	Usuario       string         `json:"usuario"`
	Token         string         `json:"token"`
	Cusert        string         `json:"cusert"`
	Procedimiento string         `json:"procedimiento"`
	ParamJS       map[string]any `json:"paramjs"`
	ParamJS2      map[string]any `json:"paramjs2"`
}

// call ejecuta una opción del procedimiento y devuelve el cuerpo crudo.
func (c *Client) call(ctx context.Context, opcion string, params map[string]any) (json.RawMessage, error) {
	if c.cfg.Token == "" {
		return nil, domain.ErrTokenNotConfigured
	}

	payload, err := json.Marshal(envelope{
		Empresa:       c.cfg.Empresa,
		Usuario:       c.cfg.Usuario,
		Token:         c.cfg.Token,
		Cusert:        cusert,
		Procedimiento: procedimiento,
		ParamJS:       params,
		ParamJS2: map[string]any{
			"opcion": opcion,
			"guser":  c.cfg.GUser,
			"token":  c.cfg.Token,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("dominiodz: serializar petición: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("dominiodz: crear petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dominiodz: %s: %w", opcion, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dominiodz: %s: leer respuesta: %w", opcion, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dominiodz: %s: HTTP %d: %s", opcion, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

// decodeArray interpreta la respuesta como arreglo. Los payloads que no son
// arreglo (objetos de error del upstream) se tratan como "sin datos", no como
// fallo duro.
func decodeArray[T any](c *Client, opcion string, raw json.RawMessage) []T {
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().
			Str("opcion", opcion).
			Msg("respuesta upstream no es un arreglo, se asume sin datos")
		return nil
	}
	return items
}

// SalesByRange ventas del cliente en el rango [from, to].
func (c *Client) SalesByRange(ctx context.Context, clientID string, from, to time.Time) ([]entity.SaleRecord, error) {
	raw, err := c.call(ctx, opcionVentas, map[string]any{
		"cliente": clientID,
		"fecha1":  from.Format("2006-01-02"),
		"fecha2":  to.Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}
	return normalizeSales(decodeArray[rawSale](c, opcionVentas, raw)), nil
}

// ClientByID datos maestros del cliente; nil si el upstream no lo conoce.
func (c *Client) ClientByID(ctx context.Context, clientID string) (*entity.Client, error) {
	raw, err := c.call(ctx, opcionCliente, map[string]any{"cliente": clientID})
	if err != nil {
		return nil, err
	}
	return normalizeClient(raw), nil
}

// ClientPricing lista total de productos del cliente.
func (c *Client) ClientPricing(ctx context.Context, clientID string) ([]entity.ClientPrice, error) {
	raw, err := c.call(ctx, opcionLista, map[string]any{"cliente": clientID})
	if err != nil {
		return nil, err
	}
	return normalizePrices(decodeArray[rawPriceEntry](c, opcionLista, raw)), nil
}
