package config

import (
	"os"

	"github.com/gin-gonic/gin"

	"pos/src/shared/infrastructure/middleware"
)

// GzipSharedConfig contiene la configuración para el módulo compartido de compresión
type GzipSharedConfig struct {
	EnableGzip          bool
	AlwaysTryDecompress bool
	GzipExcludedPaths   []string
}

// DefaultSharedConfig devuelve una configuración por defecto
func DefaultSharedConfig() GzipSharedConfig {
	return GzipSharedConfig{
		EnableGzip:          true,
		AlwaysTryDecompress: true,
		GzipExcludedPaths:   []string{"/health", "/metrics"},
	}
}

// SetupSharedMiddleware configura los middlewares compartidos
func SetupSharedMiddleware(router *gin.Engine, config GzipSharedConfig) {
	// Descomprimir solicitudes entrantes si está habilitado (el POS manda
	// los reenvíos offline comprimidos)
	if config.AlwaysTryDecompress {
		router.Use(middleware.GzipReader())
	}

	if config.EnableGzip {
		gzipOpts := middleware.GzipOptions{
			ExcludedPaths: config.GzipExcludedPaths,
		}
		router.Use(middleware.GzipMiddleware(gzipOpts))
	}
}

// GetEnv obtiene una variable de entorno o devuelve un valor por defecto
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
