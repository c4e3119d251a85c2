package api

import (
	"net/http"

	"gathergrid/commune/internal/auth"
	"gathergrid/commune/internal/services"
)

// GetNotificationsHandler handles GET /notifications, oldest first.
func GetNotificationsHandler(deps *Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetAccessClaims(r.Context())
		notifications, err := deps.Services.Notification.NotificationsForUser(r.Context(), claims.UserID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}
		respondWithSuccess(w, http.StatusOK, &notifications)
	}
}

// countDeliveries records fan-out outcomes in the notification counters.
// Failures were already logged by the fan-out; they never affect the
// response.
func countDeliveries(deps *Dependencies, results []services.DeliveryResult) {
	for _, result := range results {
		if result.Err != nil {
			deps.Metrics.NotificationsFailedTotal.WithLabelValues(result.Type).Inc()
			continue
		}
		deps.Metrics.NotificationsInsertedTotal.WithLabelValues(result.Type).Inc()
	}
}
