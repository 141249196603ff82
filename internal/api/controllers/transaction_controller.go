package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/db_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/request_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/response_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/services"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/utils"
)

type TransactionController struct {
	txnService services.TransactionServiceInterface
}

func NewTransactionController(txnService services.TransactionServiceInterface) *TransactionController {
	return &TransactionController{
		txnService: txnService,
	}
}

// ProcessPayment drives a card payment through validation, persistence and
// the gateway round-trip. Validation failures come back as 4xx; once past
// validation the reply always carries the transaction's final state.
func (tc *TransactionController) ProcessPayment(c *gin.Context) {
	var request request_models.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	log.Printf("Recibiendo peticion de pago: marca=%s interesDiferido=%v", request.Marca, request.InteresDiferido)

	installments := 0
	if request.InteresDiferido {
		installments = request.Cuotas
	}

	txn := &db_models.Transaction{
		Amount: request.Monto,
		Brand:  request.Marca,
	}

	processed, err := tc.txnService.Create(c.Request.Context(), txn,
		request.DatosTarjeta, request.InteresDiferido, installments)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.TransactionResponse{
		Mensaje:                processed.Detail,
		CodigoUnicoTransaccion: processed.UniqueCode,
		Estado:                 string(processed.Status),
	}, "Transaccion procesada")
}

// UpdateStatus receives the gateway's asynchronous callback for a
// transaction previously left ENV.
func (tc *TransactionController) UpdateStatus(c *gin.Context) {
	var request request_models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := tc.txnService.UpdateStatus(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Estado actualizado")
}

func (tc *TransactionController) GetByUniqueCode(c *gin.Context) {
	code := c.Param("codigoUnico")

	txn, err := tc.txnService.GetByUniqueCode(c.Request.Context(), code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaccion encontrada")
}
