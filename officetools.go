// Package officetools exposes Office host document-manipulation capabilities
// as a structured tool catalog for LLM-driven agents. One declarative
// configuration record per capability is projected into the calling SDKs'
// input schemas, a live exception-safe tool set bound to each host's
// batched-request primitive, and the committed JSON manifest consumed by the
// out-of-process test harness.
//
// This package is the composition root: it assembles the per-host catalogs
// into a registry given the host run primitives supplied by the embedding
// add-in.
package officetools

import (
	"goa.design/officetools/catalog/excel"
	"goa.design/officetools/catalog/general"
	"goa.design/officetools/catalog/outlook"
	"goa.design/officetools/catalog/powerpoint"
	"goa.design/officetools/catalog/word"
	"goa.design/officetools/factory"
	"goa.design/officetools/hosts"
	"goa.design/officetools/registry"
	"goa.design/officetools/telemetry"
	"goa.design/officetools/toolcfg"
)

type (
	// Runners supplies the batched-request primitive for each host the
	// embedding application serves. Nil runners leave the corresponding
	// host out of the registry; requests for it then degrade to an empty
	// tool set.
	Runners struct {
		Spreadsheet  hosts.Runner[hosts.SpreadsheetContext]
		Document     hosts.Runner[hosts.DocumentContext]
		Presentation hosts.Runner[hosts.PresentationContext]
		Mail         hosts.Runner[hosts.MailContext]
	}

	// Options configures composition.
	Options struct {
		// Logger, Metrics and Tracer are shared by every tool handler and
		// the registry. Nil values default to noop implementations.
		Logger  telemetry.Logger
		Metrics telemetry.Metrics
		Tracer  telemetry.Tracer
		// LegacyTrustSDK disables the validating projection at invocation
		// time, restoring the legacy behavior of trusting the calling SDK
		// to conform to the descriptive schema.
		LegacyTrustSDK bool
	}
)

// Compose builds the host-indexed registry from the static catalogs and the
// supplied run primitives. Configuration errors in any catalog fail
// composition; they are never deferred to request time.
func Compose(r Runners, opts Options) (*registry.Registry, error) {
	var fopts []factory.Option
	if opts.Logger != nil {
		fopts = append(fopts, factory.WithLogger(opts.Logger))
	}
	if opts.Metrics != nil {
		fopts = append(fopts, factory.WithMetrics(opts.Metrics))
	}
	if opts.Tracer != nil {
		fopts = append(fopts, factory.WithTracer(opts.Tracer))
	}
	if opts.LegacyTrustSDK {
		fopts = append(fopts, factory.WithoutValidation())
	}

	hostSets := make(map[hosts.Host][]registry.Descriptor, 4)
	if r.Spreadsheet != nil {
		tools, err := factory.New(excel.Configs(), r.Spreadsheet, fopts...)
		if err != nil {
			return nil, err
		}
		hostSets[hosts.Spreadsheet] = registry.Describe(tools)
	}
	if r.Document != nil {
		tools, err := factory.New(word.Configs(), r.Document, fopts...)
		if err != nil {
			return nil, err
		}
		hostSets[hosts.Document] = registry.Describe(tools)
	}
	if r.Presentation != nil {
		tools, err := factory.New(powerpoint.Configs(), r.Presentation, fopts...)
		if err != nil {
			return nil, err
		}
		hostSets[hosts.Presentation] = registry.Describe(tools)
	}
	if r.Mail != nil {
		tools, err := factory.New(outlook.Configs(), r.Mail, fopts...)
		if err != nil {
			return nil, err
		}
		hostSets[hosts.Mail] = registry.Describe(tools)
	}

	generalTools, err := factory.New(general.Configs(), general.Run, fopts...)
	if err != nil {
		return nil, err
	}

	return registry.New(registry.Config{
		Hosts:   hostSets,
		General: registry.Describe(generalTools),
		Logger:  opts.Logger,
		Metrics: opts.Metrics,
	})
}

// CatalogBases returns every catalog's serializable tool identities in
// manifest order: spreadsheet, document, presentation, mail, then the
// host-independent tools. Manifest generation and catalog validation both
// consume this ordering.
func CatalogBases() [][]toolcfg.Base {
	return [][]toolcfg.Base{
		toolcfg.Bases(excel.Configs()),
		toolcfg.Bases(word.Configs()),
		toolcfg.Bases(powerpoint.Configs()),
		toolcfg.Bases(outlook.Configs()),
		toolcfg.Bases(general.Configs()),
	}
}
