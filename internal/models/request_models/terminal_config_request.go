package request_models

import "time"

type CreateTerminalConfigRequest struct {
	Codigo          string     `json:"codigo" binding:"required"`
	Modelo          string     `json:"modelo" binding:"required"`
	DireccionMac    string     `json:"direccionMac" binding:"required"`
	CodigoComercio  int        `json:"codigoComercio" binding:"required"`
	FechaActivacion *time.Time `json:"fechaActivacion"`
}

type UpdateActivationDateRequest struct {
	NuevaFechaActivacion time.Time `json:"nuevaFechaActivacion" binding:"required"`
}
