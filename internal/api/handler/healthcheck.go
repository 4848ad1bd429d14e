package handler

import (
	"net/http"
	"time"
)

type healthStatus struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthStatus{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
