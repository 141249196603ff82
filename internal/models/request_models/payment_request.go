package request_models

import "github.com/shopspring/decimal"

// ProcessPaymentRequest is what the terminal frontend posts to start a
// payment. DatosTarjeta is the opaque encrypted card blob; it is parsed
// only once, inside the service, right before card validation.
type ProcessPaymentRequest struct {
	Monto           decimal.Decimal `json:"monto" binding:"required"`
	Marca           string          `json:"marca" binding:"required"`
	DatosTarjeta    string          `json:"datosTarjeta" binding:"required"`
	InteresDiferido bool            `json:"interesDiferido"`
	Cuotas          int             `json:"cuotas" binding:"omitempty,min=0,max=12"`
}

type StatusUpdateRequest struct {
	CodigoUnicoTransaccion string `json:"codigoUnicoTransaccion" binding:"required"`
	Estado                 string `json:"estado" binding:"required,oneof=AUT REC"`
	Mensaje                string `json:"mensaje" binding:"required"`
	Detalle                string `json:"detalle"`
}
