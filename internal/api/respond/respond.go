// Package respond writes JSON API responses.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type success struct {
	Result any `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to encode response")
	}
}

func OK(w http.ResponseWriter, result any) {
	JSON(w, http.StatusOK, success{Result: result})
}

func Created(w http.ResponseWriter, result any) {
	JSON(w, http.StatusCreated, success{Result: result})
}

func Accepted(w http.ResponseWriter, result any) {
	JSON(w, http.StatusAccepted, success{Result: result})
}

func Fail(w http.ResponseWriter, status int, err error) {
	JSON(w, status, failure{Error: err.Error()})
}
