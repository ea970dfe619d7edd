// Package factory turns declarative tool configurations into live, invokable
// tools bound to a host's batched-request primitive. The factory is the
// single choke point where host API failures, argument rejections and panics
// are converted into structured failure results: no invocation ever
// propagates an error past the factory boundary.
package factory

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/codes"

	"goa.design/officetools/hosts"
	"goa.design/officetools/schema"
	"goa.design/officetools/telemetry"
	"goa.design/officetools/toolcfg"
	"goa.design/officetools/toolerrs"
)

type (
	// Result is the outcome of one tool invocation. Exactly one of Value and
	// Err is set. The modern SDK path returns Value raw and lets the SDK
	// build its own envelope; the legacy adapter wraps both into its tagged
	// handler result.
	Result struct {
		// Value is the JSON-serializable tool result on success.
		Value any
		// Err carries the structured failure on error. Never nil together
		// with a nil Value unless the tool legitimately returned nil.
		Err *toolerrs.ToolError
	}

	// Tool is one live capability: identity, projected input schema and an
	// exception-safe handler bound to a host run primitive.
	Tool[C any] struct {
		name        string
		description string
		inputSchema map[string]any
		validator   *schema.Validator
		validate    bool
		execute     func(ctx context.Context, hc C, args map[string]any) (any, error)
		run         hosts.Runner[C]
		logger      telemetry.Logger
		metrics     telemetry.Metrics
		tracer      telemetry.Tracer
	}

	// Option configures factory construction.
	Option func(*options)

	options struct {
		logger   telemetry.Logger
		metrics  telemetry.Metrics
		tracer   telemetry.Tracer
		validate bool
	}
)

// WithLogger sets the structured logger used by tool handlers.
func WithLogger(l telemetry.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics sets the metrics recorder used by tool handlers.
func WithMetrics(m telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithTracer sets the tracer used by tool handlers.
func WithTracer(t telemetry.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithoutValidation disables the validating projection at invocation time.
// The descriptive schema is still built; conformance of incoming argument
// bags is then trusted to the calling SDK. Use for the legacy SDK path,
// which historically performed no local checks.
func WithoutValidation() Option {
	return func(o *options) { o.validate = false }
}

// New builds live tools from configs, binding each execute closure to the
// host's run primitive. The catalog is validated first; configuration errors
// (duplicate names, enum on non-string parameters, malformed defaults) are
// fatal here rather than surfacing at request time.
func New[C any](configs []toolcfg.ToolConfig[C], run hosts.Runner[C], opts ...Option) ([]*Tool[C], error) {
	if run == nil {
		return nil, fmt.Errorf("factory: run primitive is required")
	}
	o := options{
		logger:   telemetry.NewNoopLogger(),
		metrics:  telemetry.NewNoopMetrics(),
		tracer:   telemetry.NewNoopTracer(),
		validate: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := toolcfg.ValidateCatalog(toolcfg.Bases(configs)); err != nil {
		return nil, fmt.Errorf("factory: invalid catalog: %w", err)
	}
	list := make([]*Tool[C], 0, len(configs))
	for _, cfg := range configs {
		if cfg.Execute == nil {
			return nil, fmt.Errorf("factory: tool %q has no execute body", cfg.Name)
		}
		validator, err := schema.Compile(cfg.Name, cfg.Params)
		if err != nil {
			return nil, fmt.Errorf("factory: %w", err)
		}
		list = append(list, &Tool[C]{
			name:        cfg.Name,
			description: cfg.Description,
			inputSchema: schema.Object(cfg.Params),
			validator:   validator,
			validate:    o.validate,
			execute:     cfg.Execute,
			run:         run,
			logger:      o.logger,
			metrics:     o.metrics,
			tracer:      o.tracer,
		})
	}
	return list, nil
}

// Name returns the catalog-wide unique tool identifier.
func (t *Tool[C]) Name() string { return t.name }

// Description returns the LLM-facing tool description.
func (t *Tool[C]) Description() string { return t.description }

// InputSchema returns the descriptive JSON-Schema projection of the tool's
// parameters. Callers must not mutate the returned map.
func (t *Tool[C]) InputSchema() map[string]any { return t.inputSchema }

// Invoke runs the tool against the host through the batched-request
// primitive. It never panics and never returns a Go error: argument
// rejections, host API failures and panics inside the tool body all degrade
// to a failure Result so the orchestrating agent can react.
func (t *Tool[C]) Invoke(ctx context.Context, args map[string]any) (res Result) {
	ctx, span := t.tracer.Start(ctx, "tool."+t.name)
	defer span.End()
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res = Result{Err: toolerrs.Errorf("tool %s panicked: %v", t.name, r)}
		}
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Message)
			t.logger.Error(ctx, "tool invocation failed", "tool", t.name, "error", res.Err.Message)
			t.metrics.IncCounter("officetools.tool.failures", 1, "tool", t.name)
		} else {
			span.SetStatus(codes.Ok, "")
		}
		t.metrics.RecordTimer("officetools.tool.duration", time.Since(start), "tool", t.name)
	}()

	if t.validate {
		if err := t.validator.Validate(args); err != nil {
			return Result{Err: toolerrs.FromError(err)}
		}
	}
	out, err := t.run(ctx, func(hc C) (any, error) {
		return t.execute(ctx, hc, args)
	})
	if err != nil {
		return Result{Err: toolerrs.FromError(err)}
	}
	return Result{Value: out}
}
