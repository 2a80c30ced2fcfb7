package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	httperrors "github.com/dropDatabas3/postwall/internal/http/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// REQUEST
// ─────────────────────────────────────────────────────────────────────────────

// MaxBodyBytes limita el tamaño del body.
const MaxBodyBytes = 64 << 10

// ReadJSON decodifica el body en v. Un body vacío deja v intacto para que la
// validación reporte los campos faltantes. El body debe contener un único
// valor JSON. Retorna false después de escribir la respuesta de error.
func ReadJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return true
	}
	if err == nil {
		var extra json.RawMessage
		if err = dec.Decode(&extra); errors.Is(err, io.EOF) {
			return true
		}
		if err == nil {
			err = errors.New("trailing data after JSON value")
		}
	}
	httperrors.WriteError(w, r, httperrors.ErrInvalidJSON.WithCause(err))
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// RESPONSE
// ─────────────────────────────────────────────────────────────────────────────

type envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// WriteSuccess envuelve data en el envelope de éxito.
func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, envelope{Status: "success", Data: data})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
