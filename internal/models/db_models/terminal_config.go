package db_models

import "time"

// TerminalConfig identifies one physical POS device and the merchant it
// serves. Code+Model form the composite primary key; the table is expected
// to hold exactly one row per deployed terminal.
type TerminalConfig struct {
	Code  string `gorm:"primaryKey;size:10" json:"codigo"`
	Model string `gorm:"primaryKey;size:10" json:"modelo"`

	MACAddress   string     `gorm:"size:17;column:mac_address" json:"direccionMac"`
	MerchantCode int        `json:"codigoComercio"`
	ActivatedAt  *time.Time `json:"fechaActivacion"`

	CreatedAt int64 `gorm:"autoCreateTime" json:"-"`
	UpdatedAt int64 `gorm:"autoUpdateTime" json:"-"`
}
