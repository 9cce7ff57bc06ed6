// Package health serves the liveness endpoint used by Cloud Run and load
// balancers. It sits outside the versioned API and never touches Firestore.
package health

import (
	"encoding/json"
	"net/http"
)

// ServiceName identifies this server in health payloads.
const ServiceName = "digicard"

// Response is the payload of GET /health.
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// Handler reports the server as healthy together with its build version.
func Handler(version string) http.HandlerFunc {
	body := Response{Status: "healthy", Service: ServiceName, Version: version}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}
}
