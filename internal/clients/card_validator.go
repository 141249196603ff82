package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type CardValidationRequest struct {
	Numero         string `json:"numero"`
	FechaCaducidad string `json:"fechaCaducidad"`
	CVV            string `json:"cvv"`
}

// CardValidatorClientInterface submits sensitive card fields to the remote
// validation service. The reply body is empty; only the status code carries
// meaning, with a 404-class status signalling invalid card data.
type CardValidatorClientInterface interface {
	Validate(ctx context.Context, req CardValidationRequest) (int, error)
}

func NewCardValidatorClient(baseURL string, httpClient *http.Client) CardValidatorClientInterface {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &CardValidatorClient{baseURL: baseURL, client: httpClient}
}

type CardValidatorClient struct {
	baseURL string
	client  *http.Client
}

func (c *CardValidatorClient) Validate(ctx context.Context, body CardValidationRequest) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/tarjetas/validar", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("card validator request: %w", err)
	}
	defer res.Body.Close()

	return res.StatusCode, nil
}
