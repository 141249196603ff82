package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/db_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/request_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/utils"
)

type fakeTxnService struct {
	created   *db_models.Transaction
	createErr error
	updateErr error
	lastCard  string
}

func (f *fakeTxnService) Create(_ context.Context, txn *db_models.Transaction, cardData string,
	deferredInterest bool, installments int) (*db_models.Transaction, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastCard = cardData
	return f.created, nil
}

func (f *fakeTxnService) GetByUniqueCode(_ context.Context, code string) (*db_models.Transaction, error) {
	if f.created != nil && f.created.UniqueCode == code {
		return f.created, nil
	}
	return nil, utils.ErrNotFound
}

func (f *fakeTxnService) UpdateStatus(context.Context, request_models.StatusUpdateRequest) error {
	return f.updateErr
}

func newRouter(svc *fakeTxnService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	tc := NewTransactionController(svc)
	r.POST("/v1/procesamiento-transaccion/procesar", tc.ProcessPayment)
	r.POST("/v1/procesamiento-transaccion/actualizar-estado", tc.UpdateStatus)
	r.GET("/v1/procesamiento-transaccion/:codigoUnico", tc.GetByUniqueCode)
	return r
}

func TestProcessPayment(t *testing.T) {
	svc := &fakeTxnService{created: &db_models.Transaction{
		UniqueCode: "TRX123456-2026-01-01-10-00-00-000000000001",
		Status:     db_models.TxnStatusAuthorized,
		Detail:     "Transaccion POS - VISA",
	}}
	router := newRouter(svc)

	body := `{"monto":"100.50","marca":"VISA","datosTarjeta":"blob","interesDiferido":true,"cuotas":3}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/procesamiento-transaccion/procesar", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "blob", svc.lastCard)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Status)

	data := resp.Data.(map[string]interface{})
	require.Equal(t, "AUT", data["estado"])
	require.Equal(t, svc.created.UniqueCode, data["codigoUnicoTransaccion"])
}

func TestProcessPaymentBadPayload(t *testing.T) {
	router := newRouter(&fakeTxnService{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/procesamiento-transaccion/procesar", bytes.NewBufferString(`{}`))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProcessPaymentCardInvalid(t *testing.T) {
	router := newRouter(&fakeTxnService{createErr: utils.ErrCardInvalid})

	body := `{"monto":"100.50","marca":"VISA","datosTarjeta":"blob"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/procesamiento-transaccion/procesar", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateStatusValidation(t *testing.T) {
	router := newRouter(&fakeTxnService{})

	// estado outside AUT|REC must be rejected by binding.
	body := `{"codigoUnicoTransaccion":"TRX1","estado":"ENV","mensaje":"x"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/procesamiento-transaccion/actualizar-estado", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatusNotFound(t *testing.T) {
	router := newRouter(&fakeTxnService{updateErr: utils.ErrNotFound})

	body := `{"codigoUnicoTransaccion":"TRX1","estado":"AUT","mensaje":"ok"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/v1/procesamiento-transaccion/actualizar-estado", bytes.NewBufferString(body))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetByUniqueCode(t *testing.T) {
	svc := &fakeTxnService{created: &db_models.Transaction{
		UniqueCode: "TRX123456-2026-01-01-10-00-00-000000000001",
		Status:     db_models.TxnStatusSent,
	}}
	router := newRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/v1/procesamiento-transaccion/"+svc.created.UniqueCode, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/v1/procesamiento-transaccion/unknown", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}
