package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/binguliki/IntelliLearn/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From IntelliLearn API With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "intellilearn"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check — the service is ready as soon as it
// can serve chat traffic; speech readiness is reported alongside so clients
// can enable the microphone only when transcription is available.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":             "ready",
		"speech_model_ready": srv.speech.Ready(),
		"speech_model_state": srv.speech.State().String(),
		"version":            HealthVersion,
		"service":            ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
