package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/mvespin1/ArquitecturaGrupo02-POS/cmd/fx/config_fx"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/cmd/fx/db_fx"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/cmd/fx/transaction_fx"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/internal/api/controllers"
	"github.com/mvespin1/ArquitecturaGrupo02-POS/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		db_fx.Module,
		config_fx.Module,
		transaction_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	txnController *controllers.TransactionController,
	configController *controllers.TerminalConfigController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.MetricsMiddleware())

	RegisterRoutes(r, txnController, configController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	txnController *controllers.TransactionController,
	configController *controllers.TerminalConfigController) {

	txnGroup := r.Group("/v1/procesamiento-transaccion")
	txnGroup.POST("/procesar", txnController.ProcessPayment)
	txnGroup.POST("/actualizar-estado", txnController.UpdateStatus)
	txnGroup.GET("/:codigoUnico", txnController.GetByUniqueCode)

	configGroup := r.Group("/v1/pos-configuracion")
	configGroup.GET("", configController.List)
	configGroup.GET("/:codigo/:modelo", configController.GetByID)
	configGroup.POST("", configController.Create)
	configGroup.POST("/sincronizar", configController.Synchronize)
	configGroup.PATCH("/:codigo/:modelo/fecha-activacion", configController.UpdateActivationDate)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
