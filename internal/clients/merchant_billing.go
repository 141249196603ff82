package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// MerchantBillingClientInterface fetches the billing parameters for a
// merchant. The record is opaque to this service and forwarded verbatim to
// the gateway.
type MerchantBillingClientInterface interface {
	GetBilling(ctx context.Context, merchantCode int) (json.RawMessage, error)
}

func NewMerchantBillingClient(baseURL string, httpClient *http.Client) MerchantBillingClientInterface {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &MerchantBillingClient{baseURL: baseURL, client: httpClient}
}

type MerchantBillingClient struct {
	baseURL string
	client  *http.Client
}

func (c *MerchantBillingClient) GetBilling(ctx context.Context, merchantCode int) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/v1/comercios/%d/facturacion", c.baseURL, merchantCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("merchant billing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("merchant billing returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	return body, nil
}
