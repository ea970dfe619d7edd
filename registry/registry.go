// Package registry composes per-host tool sets from the capability catalogs,
// injects host-independent general tools and enforces the provider catalog
// size limit before tools are handed to the LLM runtime. Truncation is a
// read-time view over the precomputed merged sets and is always reported
// through the ToolSet drop count, an operator log line and a counter metric.
package registry

import (
	"context"
	"fmt"

	"goa.design/officetools/factory"
	"goa.design/officetools/hosts"
	"goa.design/officetools/telemetry"
)

// MaxToolsPerRequest is the upstream limit on the function-calling catalog
// size. Merged tool sets are capped to the first MaxToolsPerRequest entries
// in insertion order.
const MaxToolsPerRequest = 128

type (
	// Descriptor is one live tool with its execute closure erased to the
	// shapes the calling SDKs consume.
	Descriptor struct {
		// Name is the catalog-wide unique identifier.
		Name string
		// Description is the LLM-facing explanation.
		Description string
		// InputSchema is the descriptive JSON-Schema projection of the
		// tool's parameters.
		InputSchema map[string]any
		// Invoke runs the tool. It never returns a Go error; failures
		// degrade to a failure Result.
		Invoke func(ctx context.Context, args map[string]any) factory.Result
		// Handler is the legacy SDK envelope adapter for the same tool.
		Handler factory.LegacyHandler
	}

	// ToolSet is the dispatch view for one host: the tools to expose plus
	// explicit truncation metadata so callers can observe when capability
	// was cut.
	ToolSet struct {
		// Tools is the merged set, capped to the catalog limit.
		Tools []Descriptor
		// Total is the merged set size before truncation.
		Total int
		// Dropped is the number of tools cut by the cap. Zero when the
		// merged set fits.
		Dropped int
	}

	// Config assembles a Registry.
	Config struct {
		// Hosts maps each host to its catalog's live tools, in catalog
		// order.
		Hosts map[hosts.Host][]Descriptor
		// General holds host-independent tools merged after every host set.
		General []Descriptor
		// MaxTools overrides MaxToolsPerRequest when positive. Tests use
		// small values; production leaves it zero.
		MaxTools int
		// Logger receives truncation warnings. Defaults to the noop logger.
		Logger telemetry.Logger
		// Metrics receives the truncation counter. Defaults to the noop
		// recorder.
		Metrics telemetry.Metrics
	}

	// Registry holds the precomputed merged tool sets. Constructed once per
	// process; reads never mutate the underlying sets.
	Registry struct {
		merged   map[hosts.Host][]Descriptor
		maxTools int
		logger   telemetry.Logger
		metrics  telemetry.Metrics
	}
)

// Describe erases the host context type from live tools, pairing each with
// its legacy handler so both SDK generations can be served from one
// descriptor.
func Describe[C any](list []*factory.Tool[C]) []Descriptor {
	descs := make([]Descriptor, len(list))
	for i, t := range list {
		descs[i] = Descriptor{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.InputSchema(),
			Invoke:      t.Invoke,
			Handler:     factory.NewLegacyHandler(t),
		}
	}
	return descs
}

// New builds a Registry, merging each host's tools with the general tools in
// insertion order (host tools first). Duplicate names within a merged set
// are configuration errors and fail construction.
func New(cfg Config) (*Registry, error) {
	r := &Registry{
		merged:   make(map[hosts.Host][]Descriptor, len(cfg.Hosts)),
		maxTools: cfg.MaxTools,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}
	if r.maxTools <= 0 {
		r.maxTools = MaxToolsPerRequest
	}
	if r.logger == nil {
		r.logger = telemetry.NewNoopLogger()
	}
	if r.metrics == nil {
		r.metrics = telemetry.NewNoopMetrics()
	}
	for host, set := range cfg.Hosts {
		if !host.Known() {
			return nil, fmt.Errorf("registry: unknown host %q", host)
		}
		merged := make([]Descriptor, 0, len(set)+len(cfg.General))
		merged = append(merged, set...)
		merged = append(merged, cfg.General...)
		if err := checkUnique(host, merged); err != nil {
			return nil, err
		}
		r.merged[host] = merged
	}
	return r, nil
}

// ToolsFor returns the dispatch view for a host. Unknown or unregistered
// hosts degrade to an empty set rather than an error so a misrouted request
// costs the caller capability, not a crash. When the merged set exceeds the
// cap the first maxTools entries are kept in insertion order and the cut is
// logged and counted.
func (r *Registry) ToolsFor(ctx context.Context, host hosts.Host) ToolSet {
	merged, ok := r.merged[host]
	if !ok {
		return ToolSet{}
	}
	total := len(merged)
	if total <= r.maxTools {
		return ToolSet{Tools: merged, Total: total}
	}
	dropped := total - r.maxTools
	r.logger.Warn(ctx, "tool catalog truncated",
		"host", host.String(),
		"total", total,
		"dropped", dropped,
		"max", r.maxTools,
	)
	r.metrics.IncCounter("officetools.registry.dropped_tools", float64(dropped), "host", host.String())
	return ToolSet{Tools: merged[:r.maxTools], Total: total, Dropped: dropped}
}

func checkUnique(host hosts.Host, merged []Descriptor) error {
	seen := make(map[string]bool, len(merged))
	for _, d := range merged {
		if seen[d.Name] {
			return fmt.Errorf("registry: host %q: duplicate tool name %q in merged set", host, d.Name)
		}
		seen[d.Name] = true
	}
	return nil
}
