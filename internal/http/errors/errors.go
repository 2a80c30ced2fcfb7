package errors

import (
	"encoding/json"
	"net/http"

	"github.com/dropDatabas3/postwall/internal/observability/logger"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteError es el único lugar donde un error se convierte en respuesta HTTP.
// Las causas de errores 5xx se loguean con el logger del request y nunca se
// envían al cliente.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := FromError(err)

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log := logger.L()
		if r != nil {
			log = logger.From(r.Context())
		}
		log.Error("request failed", logger.String("code", appErr.Code), logger.Err(appErr.Err))
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(errorResponse{Status: "error", Message: appErr.Message})
}
