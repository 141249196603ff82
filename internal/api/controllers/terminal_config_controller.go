package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/db_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/request_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/services"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/utils"
)

type TerminalConfigController struct {
	configService services.TerminalConfigServiceInterface
}

func NewTerminalConfigController(configService services.TerminalConfigServiceInterface) *TerminalConfigController {
	return &TerminalConfigController{
		configService: configService,
	}
}

func (cc *TerminalConfigController) List(c *gin.Context) {
	configs, err := cc.configService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, configs, "Configuraciones encontradas")
}

func (cc *TerminalConfigController) GetByID(c *gin.Context) {
	code := c.Param("codigo")
	model := c.Param("modelo")

	cfg, err := cc.configService.GetByID(c.Request.Context(), code, model)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cfg, "Configuracion encontrada")
}

func (cc *TerminalConfigController) Create(c *gin.Context) {
	var request request_models.CreateTerminalConfigRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	log.Printf("Creando configuracion para POS %s/%s", request.Codigo, request.Modelo)

	cfg, err := cc.configService.Create(c.Request.Context(), &db_models.TerminalConfig{
		Code:         request.Codigo,
		Model:        request.Modelo,
		MACAddress:   request.DireccionMac,
		MerchantCode: request.CodigoComercio,
		ActivatedAt:  request.FechaActivacion,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cfg, "Configuracion creada")
}

// Synchronize accepts a configuration pushed by the gateway side; it runs
// the same validation path as Create.
func (cc *TerminalConfigController) Synchronize(c *gin.Context) {
	cc.Create(c)
}

func (cc *TerminalConfigController) UpdateActivationDate(c *gin.Context) {
	code := c.Param("codigo")
	model := c.Param("modelo")

	var request request_models.UpdateActivationDateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cfg, err := cc.configService.UpdateActivationDate(c.Request.Context(), code, model, request.NuevaFechaActivacion)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, cfg, "Fecha de activacion actualizada")
}
