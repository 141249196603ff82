package db_models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusSent       TransactionStatus = "ENV"
	TxnStatusAuthorized TransactionStatus = "AUT"
	TxnStatusRejected   TransactionStatus = "REC"
)

type ReceiptStatus string

const (
	ReceiptStatusPending ReceiptStatus = "PEN"
	ReceiptStatusPrinted ReceiptStatus = "IMP"
)

const (
	TxnTypePayment   = "PAG"
	TxnTypeReversal  = "REV"
	TxnTypeAnnulment = "ANU"

	ModalitySimple    = "SIM"
	ModalityRecurring = "REC"
)

type Transaction struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	UniqueCode string `gorm:"size:64;uniqueIndex" json:"codigoUnicoTransaccion"`

	Type     string `gorm:"size:3" json:"tipo"`
	Brand    string `gorm:"size:4" json:"marca"`
	Modality string `gorm:"size:3" json:"modalidad"`

	Amount   decimal.Decimal `gorm:"type:numeric(18,2)" json:"monto"`
	Currency string          `gorm:"size:3" json:"moneda"`
	Country  string          `gorm:"size:3" json:"pais"`
	Detail   string          `gorm:"size:100" json:"detalle"`

	Date          time.Time         `json:"fecha"`
	Status        TransactionStatus `gorm:"size:3;index" json:"estado"`
	ReceiptStatus ReceiptStatus     `gorm:"size:3" json:"estadoRecibo"`

	DeferredInterest bool `json:"interesDiferido"`
	Installments     int  `json:"cuotas"`

	// Raw status + body of the gateway's last reply, kept for reconciliation.
	GatewayReply datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"-"`

	CreatedAt int64 `gorm:"autoCreateTime" json:"-"`
	UpdatedAt int64 `gorm:"autoUpdateTime" json:"-"`
}
