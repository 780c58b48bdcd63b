package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Log     LogConfig
	Paginas PaginasConfig
	MockAPI MockAPIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig backend REST consumido por el panel.
type APIConfig struct {
	BaseURL   string // ej. http://localhost:3000
	TimeoutMS int
}

// Timeout del cliente HTTP.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// LogConfig nivel y destino del log.
type LogConfig struct {
	Level   string
	Archivo string // la TUI ocupa stdout; por defecto panel.log
}

// PaginasConfig tamaños de página fijos por tipo de página.
type PaginasConfig struct {
	Compras   int // 6 por defecto
	Productos int // 3 por defecto
}

// MockAPIConfig backend simulado para desarrollo local.
type MockAPIConfig struct {
	Addr string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, LOG_LEVEL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "panel-inventario"),
		},
		API: APIConfig{
			BaseURL:   getString(v, "API_BASE_URL", "http://localhost:3000"),
			TimeoutMS: getInt(v, "API_TIMEOUT_MS", 10000),
		},
		Log: LogConfig{
			Level:   getString(v, "LOG_LEVEL", "info"),
			Archivo: getString(v, "LOG_FILE", "panel.log"),
		},
		Paginas: PaginasConfig{
			Compras:   getInt(v, "PAGE_SIZE_COMPRAS", 6),
			Productos: getInt(v, "PAGE_SIZE_PRODUCTOS", 3),
		},
		MockAPI: MockAPIConfig{
			Addr: getString(v, "MOCKAPI_ADDR", "127.0.0.1:3000"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
