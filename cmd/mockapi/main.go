// mockapi levanta el backend simulado en memoria para desarrollar el panel
// sin el backend real.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/tu-usuario/panel-inventario/internal/infrastructure/memoria"
	"github.com/tu-usuario/panel-inventario/internal/interfaces/mockapi"
	"github.com/tu-usuario/panel-inventario/pkg/config"
	"github.com/tu-usuario/panel-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	defer log.Close()

	almacen := memoria.NewAlmacen()
	app := mockapi.NewApp(almacen)

	go func() {
		log.Info().Str("addr", cfg.MockAPI.Addr).Msg("backend simulado escuchando")
		if err := app.Listen(cfg.MockAPI.Addr); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	parar := make(chan os.Signal, 1)
	signal.Notify(parar, syscall.SIGINT, syscall.SIGTERM)
	<-parar

	log.Info().Msg("apagando backend simulado")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}
