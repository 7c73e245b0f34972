package controllers

import (
	"encoding/json"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/shekharamit/agents/config"
)

// DispatchError marks a failure that escaped a controller and must be
// rendered by the top-level handler as an unexpected error.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return e.Err.Error()
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// renderJSON writes the value as pretty-printed JSON (2-space indent)
// followed by a newline.
func renderJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &DispatchError{Err: err}
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ensureToken checks that a bearer token is configured. A missing token is a
// configuration error: it is logged and the client is never invoked.
func ensureToken(settings *config.Settings) bool {
	if settings.Token == "" {
		logger.Errorf("%s not found in environment variables", config.TokenEnvVar)
		return false
	}
	return true
}
