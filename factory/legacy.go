package factory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Result type discriminants used by the legacy SDK handler envelope.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

type (
	// LegacyHandlerResult is the tagged envelope the legacy calling SDK
	// expects from a tool handler: a text rendering of the result for the
	// LLM, a success/failure discriminant, the error message on failure and
	// an invocation telemetry bag.
	LegacyHandlerResult struct {
		// TextResultForLLM is the result rendered as text. Non-string tool
		// results are JSON-encoded.
		TextResultForLLM string `json:"textResultForLlm"`
		// ResultType is ResultSuccess or ResultFailure.
		ResultType string `json:"resultType"`
		// Error carries the failure message when ResultType is failure.
		Error string `json:"error,omitempty"`
		// ToolTelemetry carries invocation metadata for the SDK's telemetry
		// channel.
		ToolTelemetry map[string]any `json:"toolTelemetry"`
	}

	// LegacyHandler is the handler signature of the legacy calling SDK. It
	// always resolves: failures are reported through the envelope, never as
	// a returned error.
	LegacyHandler func(ctx context.Context, args map[string]any) LegacyHandlerResult
)

// NewLegacyHandler adapts a live tool to the legacy SDK's handler shape. The
// envelope conversion happens after Invoke's exception-safety guarantee, so
// the handler can never fail in a way the SDK would see as a rejection.
func NewLegacyHandler[C any](t *Tool[C]) LegacyHandler {
	return func(ctx context.Context, args map[string]any) LegacyHandlerResult {
		start := time.Now()
		res := t.Invoke(ctx, args)
		tel := map[string]any{
			"invocationId": uuid.NewString(),
			"tool":         t.Name(),
			"durationMs":   time.Since(start).Milliseconds(),
		}
		if res.Err != nil {
			return LegacyHandlerResult{
				TextResultForLLM: "Error: " + res.Err.Message,
				ResultType:       ResultFailure,
				Error:            res.Err.Message,
				ToolTelemetry:    tel,
			}
		}
		return LegacyHandlerResult{
			TextResultForLLM: renderText(res.Value),
			ResultType:       ResultSuccess,
			ToolTelemetry:    tel,
		}
	}
}

// renderText converts a tool result into the LLM-facing text field. Strings
// pass through unchanged; everything else is JSON-encoded.
func renderText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return "unserializable result"
		}
		return string(raw)
	}
}
