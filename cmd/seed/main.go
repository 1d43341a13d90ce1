// seed pobla o inspecciona el storage configurado (STORAGE_DRIVER, STORAGE_DIR, REDIS_*, DB_*).
//
// Uso:
//
//	go run ./cmd/seed run       # carga datos demo en colecciones vacías
//	go run ./cmd/seed inspect   # cantidad de registros por colección
package main

import (
	"os"

	"github.com/jhoicas/bloodbank-api/pkg/config"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		os.Exit(1)
	}
}
