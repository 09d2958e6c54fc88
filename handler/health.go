package handler

import (
	"net/http"

	"go.uber.org/zap"
)

func NewHealthHandler(log *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
	})
}
