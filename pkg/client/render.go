package client

import (
	"fmt"
	"time"
)

// Outcome classifies a Result for presentation
type Outcome int

const (
	// OutcomeSuccess is any 2xx response
	OutcomeSuccess Outcome = iota
	// OutcomeNotFound is a 404
	OutcomeNotFound
	// OutcomeConnectionError means the request never reached the server
	OutcomeConnectionError
	// OutcomeError is every other status
	OutcomeError
)

// Render maps a Result to a presentation outcome and a user-facing
// message. Pure function: no retry, no backoff, no I/O.
func Render(r Result) (Outcome, string) {
	switch {
	case r.Status >= 200 && r.Status < 300:
		msg := r.Message()
		if msg == "" || r.Status == 204 {
			msg = "OK"
		}
		return OutcomeSuccess, msg
	case r.Status == 404:
		msg := r.Message()
		if msg == "" {
			msg = "registro no encontrado"
		}
		return OutcomeNotFound, msg
	case r.Status == 0:
		return OutcomeConnectionError, fmt.Sprintf("Error de conexión: %s", r.Message())
	default:
		return OutcomeError, fmt.Sprintf("Error %d: %s", r.Status, r.Message())
	}
}

// dateLayouts are the formats the admin forms historically produced
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02T15:04:05",
	time.RFC1123,
}

// NormalizeDate renders any known input layout as YYYY-MM-DD, the only
// date format the API accepts. Returns "" when nothing matches.
func NormalizeDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
