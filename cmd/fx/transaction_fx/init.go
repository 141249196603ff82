package transaction_fx

import (
	"net/http"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/api/controllers"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/clients"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/repositories"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/services"
)

var Module = fx.Provide(
	repositories.NewTransactionRepository,
	provideCardValidatorClient,
	provideMerchantBillingClient,
	provideGatewaySyncClient,
	services.NewTransactionService,
	controllers.NewTransactionController,
)

func provideCardValidatorClient() clients.CardValidatorClientInterface {
	return clients.NewCardValidatorClient(os.Getenv("CARD_VALIDATOR_URL"), remoteHTTPClient())
}

func provideMerchantBillingClient() clients.MerchantBillingClientInterface {
	return clients.NewMerchantBillingClient(os.Getenv("GATEWAY_URL"), remoteHTTPClient())
}

func provideGatewaySyncClient() clients.GatewaySyncClientInterface {
	return clients.NewGatewaySyncClient(os.Getenv("GATEWAY_URL"), remoteHTTPClient())
}

func remoteHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
