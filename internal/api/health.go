package api

import (
	"encoding/json"
	"net/http"
	"time"
)

type serviceStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type healthCheckResponse struct {
	Status   string                   `json:"status"`
	Uptime   string                   `json:"uptime"`
	Services map[string]serviceStatus `json:"services"`
}

// Pinger is the slice of a DB handle the health check needs; both sqlx and
// GORM-backed setups provide one.
type Pinger interface {
	Ping() error
}

// HealthCheckHandler handles GET /healthCheck
func HealthCheckHandler(storage Pinger, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services := make(map[string]serviceStatus)

		status := "ok"
		details := "storage connected"
		if err := storage.Ping(); err != nil {
			status = "down"
			details = err.Error()
		}
		services["storage"] = serviceStatus{Status: status, Details: details}

		overallStatus := "ok"
		for _, svc := range services {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		resp := healthCheckResponse{
			Status:   overallStatus,
			Uptime:   time.Since(upSince).Round(time.Second).String(),
			Services: services,
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
