package config_fx

import (
	"go.uber.org/fx"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/api/controllers"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/repositories"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/services"
)

var Module = fx.Provide(
	repositories.NewTerminalConfigRepository,
	services.NewTerminalConfigService,
	controllers.NewTerminalConfigController,
)
