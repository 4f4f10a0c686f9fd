package controllers

import (
	"net/http"
	"time"

	"roomscheduler/internal/delivery/http/helpers"
)

// HealthResponse is the data payload of GET /healthz.
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /healthz [get]
func Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok", Time: time.Now().UTC()})
}
