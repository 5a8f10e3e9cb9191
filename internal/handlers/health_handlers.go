package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "Account REST API Service"
	serviceVersion = "1.0"
)

// Index handles GET /, returning static service metadata and the URL of the
// accounts resource.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    serviceName,
		"version": serviceVersion,
		"paths": gin.H{
			"accounts": "/accounts",
		},
	})
}

// HealthCheck handles GET /health.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
