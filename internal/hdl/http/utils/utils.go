package utils

import (
	"encoding/json"
	"go.uber.org/zap"
	"net/http"
)

type Response struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func SuccessResponse(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(&Response{Success: true, Data: data}); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}

func StatusResponse(w http.ResponseWriter, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(&Response{Success: code < 400}); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}

func ErrResponse(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(&ErrorResponse{Success: false, Message: err.Error()}); err != nil {
		zap.L().Error("Failed to encode response", zap.Error(err))
	}
}
