package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}
