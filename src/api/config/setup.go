package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig configuración del módulo API (health check)
type APIConfig struct {
	DB          *sql.DB
	ServiceName string
	Version     string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		ServiceName: "pos-service",
		Version:     "dev",
	}
}

// SetupAPIModule registra el health check en la raíz y en el grupo v1
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(c *gin.Context) {
		dbStatus := "disconnected"
		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err == nil {
				dbStatus = "connected"
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  cfg.ServiceName,
			"version":  cfg.Version,
			"database": dbStatus,
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
