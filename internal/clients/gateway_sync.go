package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type MerchantRef struct {
	Codigo int `json:"codigo"`
}

// GatewayTransactionRequest is the full submission payload sent to the
// payment gateway. It carries the raw sensitive card blob and is built fresh
// per attempt, never persisted.
type GatewayTransactionRequest struct {
	Comercio            MerchantRef     `json:"comercio"`
	FacturacionComercio json.RawMessage `json:"facturacionComercio"`

	Tipo                   string          `json:"tipo"`
	Marca                  string          `json:"marca"`
	Detalle                string          `json:"detalle"`
	Monto                  decimal.Decimal `json:"monto"`
	CodigoUnicoTransaccion string          `json:"codigoUnicoTransaccion"`
	Fecha                  time.Time       `json:"fecha"`
	Estado                 string          `json:"estado"`
	Moneda                 string          `json:"moneda"`
	Pais                   string          `json:"pais"`

	CodigoPos string `json:"codigoPos"`
	ModeloPos string `json:"modeloPos"`

	Tarjeta         string `json:"tarjeta"`
	InteresDiferido bool   `json:"interesDiferido"`
	Cuotas          int    `json:"cuotas"`
}

// GatewaySyncClientInterface submits a finished transaction for
// authorization. The status code and the free-text body together drive the
// local state machine; both are returned untouched.
type GatewaySyncClientInterface interface {
	Synchronize(ctx context.Context, req GatewayTransactionRequest) (int, string, error)
}

func NewGatewaySyncClient(baseURL string, httpClient *http.Client) GatewaySyncClientInterface {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GatewaySyncClient{baseURL: baseURL, client: httpClient}
}

type GatewaySyncClient struct {
	baseURL string
	client  *http.Client
}

func (c *GatewaySyncClient) Synchronize(ctx context.Context, payload GatewayTransactionRequest) (int, string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/transacciones/sincronizar", bytes.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("gateway sync request: %w", err)
	}
	defer res.Body.Close()

	reply, err := io.ReadAll(res.Body)
	if err != nil {
		return res.StatusCode, "", err
	}
	return res.StatusCode, string(reply), nil
}
