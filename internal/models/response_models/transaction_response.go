package response_models

type TransactionResponse struct {
	Mensaje                string `json:"mensaje"`
	CodigoUnicoTransaccion string `json:"codigoUnicoTransaccion"`
	Estado                 string `json:"estado"`
}
