package httpserver

import (
	"github.com/gin-gonic/gin"

	"student-dashboard/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "student-dashboard"
)

type healthResp struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Service string `json:"service"`
	// AdviceReady is only reported by /ready.
	AdviceReady *bool `json:"advice_ready,omitempty"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Version: HealthVersion, Service: ServiceName}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready once routes are mapped. Whether the first advice
// request has resolved is reported alongside but does not gate readiness.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := newHealthResp("ready")
	adviceReady := srv.dashboardUC.GetAdvice(c.Request.Context()).Ready
	resp.AdviceReady = &adviceReady
	response.OK(c, resp)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
