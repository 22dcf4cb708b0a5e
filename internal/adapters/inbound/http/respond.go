package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// Response formats accepted by the format query parameter.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOON = "toon"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// respondFormatted writes payload encoded in the requested format.
func respondFormatted(w http.ResponseWriter, statusCode int, format string, payload any) error {
	switch format {
	case FormatJSON:
		respondJSON(w, statusCode, payload)
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml response: %w", err)
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(statusCode)
		_, _ = w.Write(data)
		return nil
	case FormatTOON:
		data, err := toon.MarshalString(payload, toon.WithLengthMarkers(true))
		if err != nil {
			return fmt.Errorf("failed to marshal toon response: %w", err)
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(data))
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode := http.StatusInternalServerError
	switch err.Error.Code {
	case BADREQUEST:
		statusCode = http.StatusBadRequest
	case NOTFOUND:
		statusCode = http.StatusNotFound
	case BADGATEWAY:
		statusCode = http.StatusBadGateway
	case TOOMANYREQUESTS:
		statusCode = http.StatusTooManyRequests
	}
	respondJSON(w, statusCode, err)
}

func badRequest(message string) ErrorResp {
	errResp := ErrorResp{}
	errResp.Error.Code = BADREQUEST
	errResp.Error.Message = message
	return errResp
}
