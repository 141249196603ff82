package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/clients"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/db_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/models/request_models"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/repositories"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/utils"
)

// Country code fixed for this deployment.
const countryCode = "EC"

var validBrands = map[string]bool{
	"MSCD": true,
	"VISA": true,
	"AMEX": true,
	"DINE": true,
}

type TransactionServiceInterface interface {
	Create(ctx context.Context, txn *db_models.Transaction, cardData string,
		deferredInterest bool, installments int) (*db_models.Transaction, error)
	GetByUniqueCode(ctx context.Context, code string) (*db_models.Transaction, error)
	UpdateStatus(ctx context.Context, update request_models.StatusUpdateRequest) error
}

type TransactionService struct {
	txnRepo       repositories.TransactionRepositoryInterface
	configService TerminalConfigServiceInterface
	cardValidator clients.CardValidatorClientInterface
	billingClient clients.MerchantBillingClientInterface
	gatewayClient clients.GatewaySyncClientInterface
}

func NewTransactionService(
	txnRepo repositories.TransactionRepositoryInterface,
	configService TerminalConfigServiceInterface,
	cardValidator clients.CardValidatorClientInterface,
	billingClient clients.MerchantBillingClientInterface,
	gatewayClient clients.GatewaySyncClientInterface,
) TransactionServiceInterface {
	return &TransactionService{
		txnRepo:       txnRepo,
		configService: configService,
		cardValidator: cardValidator,
		billingClient: billingClient,
		gatewayClient: gatewayClient,
	}
}

// Create runs the full payment lifecycle: validate, persist as ENV, submit
// to the gateway and persist the final state. Once validation has passed the
// caller always gets a transaction back; gateway, configuration and billing
// failures resolve to REC on the record instead of surfacing as errors.
func (s *TransactionService) Create(ctx context.Context, txn *db_models.Transaction,
	cardData string, deferredInterest bool, installments int) (*db_models.Transaction, error) {

	if err := s.validateInitialData(txn); err != nil {
		return nil, err
	}
	if err := s.validateCard(ctx, cardData); err != nil {
		return nil, err
	}
	log.Printf("Validaciones completadas para marca=%s monto=%s", txn.Brand, txn.Amount)

	txn.Type = db_models.TxnTypePayment
	txn.Modality = db_models.ModalitySimple
	txn.Currency = "USD"
	txn.Country = countryCode
	txn.Date = time.Now()
	txn.Status = db_models.TxnStatusSent
	txn.ReceiptStatus = db_models.ReceiptStatusPending
	txn.UniqueCode = generateUniqueCode()
	txn.Detail = "Transaccion POS - " + txn.Brand
	txn.DeferredInterest = deferredInterest
	txn.Installments = installments

	if err := s.txnRepo.Save(ctx, txn); err != nil {
		return nil, err
	}
	log.Printf("Transaccion guardada inicialmente: %s", txn.UniqueCode)

	return s.processWithGateway(ctx, txn, cardData), nil
}

func (s *TransactionService) validateInitialData(txn *db_models.Transaction) error {
	if txn.Brand == "" || len(txn.Brand) > 4 || !validBrands[txn.Brand] {
		return fmt.Errorf("%w: marca invalida, debe ser una de MSCD, VISA, AMEX, DINE", utils.ErrInvalidData)
	}
	if txn.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: el monto debe ser mayor que cero", utils.ErrInvalidData)
	}
	return nil
}

// validateCard parses the sensitive blob and forwards it to the validation
// service. A 404-class reply, a malformed blob and an unreachable validator
// all fold into ErrCardInvalid; this layer does not tell them apart.
func (s *TransactionService) validateCard(ctx context.Context, cardData string) error {
	var sensitive struct {
		CardNumber string `json:"cardNumber"`
		ExpiryDate string `json:"expiryDate"`
		CVV        string `json:"cvv"`
	}
	if err := json.Unmarshal([]byte(cardData), &sensitive); err != nil {
		log.Printf("Error al parsear datos de tarjeta: %v", err)
		return fmt.Errorf("%w: %v", utils.ErrCardInvalid, err)
	}

	status, err := s.cardValidator.Validate(ctx, clients.CardValidationRequest{
		Numero:         sensitive.CardNumber,
		FechaCaducidad: sensitive.ExpiryDate,
		CVV:            sensitive.CVV,
	})
	if err != nil {
		log.Printf("Error al validar la tarjeta: %v", err)
		return fmt.Errorf("%w: %v", utils.ErrCardInvalid, err)
	}
	if status == http.StatusNotFound {
		log.Printf("Validacion de tarjeta: datos invalidos")
		return fmt.Errorf("%w: datos de tarjeta invalidos", utils.ErrCardInvalid)
	}

	log.Printf("Validacion de tarjeta exitosa")
	return nil
}

// processWithGateway assembles the submission payload, runs the single
// gateway attempt and persists the outcome. Fail-closed: any failure along
// the way marks the transaction REC rather than leaving it ENV.
func (s *TransactionService) processWithGateway(ctx context.Context,
	txn *db_models.Transaction, cardData string) *db_models.Transaction {

	payload, err := s.buildGatewayPayload(ctx, txn, cardData)
	if err != nil {
		log.Printf("Error preparando envio al gateway: %v", err)
		return s.finalize(ctx, txn, db_models.TxnStatusRejected, replySnapshot(0, "", err))
	}

	status, body, err := s.gatewayClient.Synchronize(ctx, *payload)
	if err != nil {
		log.Printf("Error al procesar con gateway: %v", err)
		return s.finalize(ctx, txn, db_models.TxnStatusRejected, replySnapshot(0, "", err))
	}
	log.Printf("Respuesta del gateway - status: %d, body: %s", status, body)

	newStatus, changed := interpretGatewayReply(status, body)
	if !changed {
		newStatus = txn.Status
	}
	return s.finalize(ctx, txn, newStatus, replySnapshot(status, body, nil))
}

func (s *TransactionService) buildGatewayPayload(ctx context.Context,
	txn *db_models.Transaction, cardData string) (*clients.GatewayTransactionRequest, error) {

	config, err := s.configService.GetCurrent(ctx)
	if err != nil {
		return nil, err
	}

	billing, err := s.billingClient.GetBilling(ctx, config.MerchantCode)
	if err != nil {
		return nil, err
	}

	return &clients.GatewayTransactionRequest{
		Comercio:               clients.MerchantRef{Codigo: config.MerchantCode},
		FacturacionComercio:    billing,
		Tipo:                   txn.Modality,
		Marca:                  txn.Brand,
		Detalle:                txn.Detail,
		Monto:                  txn.Amount,
		CodigoUnicoTransaccion: txn.UniqueCode,
		Fecha:                  txn.Date,
		Estado:                 string(txn.Status),
		Moneda:                 txn.Currency,
		Pais:                   countryCode,
		CodigoPos:              config.Code,
		ModeloPos:              config.Model,
		Tarjeta:                cardData,
		InteresDiferido:        txn.DeferredInterest,
		Cuotas:                 txn.Installments,
	}, nil
}

// interpretGatewayReply is the single place the gateway's wire contract is
// read: the status code plus substring markers "aceptada"/"rechazada" in the
// free-text body. Returns the resulting status and whether it changes; a 202
// leaves the transaction ENV awaiting an asynchronous callback.
func interpretGatewayReply(status int, body string) (db_models.TransactionStatus, bool) {
	switch {
	case status >= 200 && status < 300 && strings.Contains(body, "aceptada"):
		return db_models.TxnStatusAuthorized, true
	case status == http.StatusBadRequest || strings.Contains(body, "rechazada"):
		return db_models.TxnStatusRejected, true
	case status == http.StatusAccepted:
		return "", false
	default:
		return db_models.TxnStatusRejected, true
	}
}

func (s *TransactionService) finalize(ctx context.Context, txn *db_models.Transaction,
	status db_models.TransactionStatus, reply []byte) *db_models.Transaction {

	txn.Status = status
	txn.GatewayReply = reply
	if err := s.txnRepo.Save(ctx, txn); err != nil {
		log.Printf("Error guardando estado final de %s: %v", txn.UniqueCode, err)
	}
	log.Printf("Estado de transaccion %s actualizado a: %s", txn.UniqueCode, txn.Status)
	return txn
}

func replySnapshot(status int, body string, cause error) []byte {
	snapshot := map[string]interface{}{"status": status, "body": body}
	if cause != nil {
		snapshot["error"] = cause.Error()
	}
	raw, _ := json.Marshal(snapshot)
	return raw
}

func (s *TransactionService) GetByUniqueCode(ctx context.Context, code string) (*db_models.Transaction, error) {
	return s.txnRepo.FindByUniqueCode(ctx, code)
}

// UpdateStatus overwrites status and detail as delivered by the gateway's
// asynchronous callback. It performs no idempotency bookkeeping; at-most-once
// delivery is the caller's responsibility.
func (s *TransactionService) UpdateStatus(ctx context.Context, update request_models.StatusUpdateRequest) error {
	txn, err := s.txnRepo.FindByUniqueCode(ctx, update.CodigoUnicoTransaccion)
	if err != nil {
		return err
	}

	txn.Status = db_models.TransactionStatus(update.Estado)
	txn.Detail = update.Mensaje
	if err := s.txnRepo.Save(ctx, txn); err != nil {
		return err
	}
	log.Printf("Estado de transaccion %s actualizado a: %s", txn.UniqueCode, update.Estado)
	return nil
}

var codeSequence atomic.Int64

// generateUniqueCode builds a traceable code from a random component, the
// full timestamp decomposition and a process-local sequence. The sequence
// keeps codes unique even when many are generated within the same second.
func generateUniqueCode() string {
	now := time.Now()
	return fmt.Sprintf("TRX%06d-%d-%02d-%02d-%02d-%02d-%02d-%012d",
		rand.Intn(1000000),
		now.Year(),
		int(now.Month()),
		now.Day(),
		now.Hour(),
		now.Minute(),
		now.Second(),
		codeSequence.Add(1))
}
