package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tu-usuario/panel-inventario/internal/application/compras"
	"github.com/tu-usuario/panel-inventario/internal/application/productos"
	"github.com/tu-usuario/panel-inventario/internal/infrastructure/api"
	"github.com/tu-usuario/panel-inventario/internal/interfaces/tui"
	"github.com/tu-usuario/panel-inventario/pkg/config"
	"github.com/tu-usuario/panel-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// La TUI ocupa stdout; el log va a archivo.
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Archivo: cfg.Log.Archivo,
	})
	defer log.Close()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando panel")

	ctx := context.Background()
	cliente := api.NewCliente(cfg.API.BaseURL, cfg.API.Timeout(), log)

	notificador := tui.NewNotificador()
	controladorCompras := compras.NewControlador(cliente, notificador, log, cfg.Paginas.Compras)
	controladorProductos := productos.NewControlador(cliente, notificador, log, cfg.Paginas.Productos)

	modelo := tui.NewModelo(ctx, controladorCompras, controladorProductos, notificador, log)
	programa := tea.NewProgram(modelo, tea.WithAltScreen())
	notificador.SetPrograma(programa)

	if _, err := programa.Run(); err != nil {
		log.Error().Err(err).Msg("panel terminado con error")
		fmt.Fprintln(os.Stderr, "panel terminado con error:", err)
		os.Exit(1)
	}
}
