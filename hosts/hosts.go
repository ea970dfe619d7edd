// Package hosts defines the closed set of Office host surfaces the tool
// catalog targets and the batched-request execution boundary each host
// exposes. The object-model interfaces describe the operations the sample
// catalogs rely on; the embedding application supplies the real
// implementations (the module never reimplements request batching, retry or
// context lifecycle).
package hosts

import "context"

type (
	// Host identifies one target application surface. The set is closed:
	// adding a host requires a new catalog and a new registry branch.
	Host string

	// Runner is the host's single-shot batched-request primitive: open a
	// request context, run the callback, flush all pending reads and writes
	// over one round trip, then dispose the context. It is an external
	// collaborator treated as already correct.
	Runner[C any] func(ctx context.Context, fn func(C) (any, error)) (any, error)
)

const (
	// Spreadsheet is the workbook host.
	Spreadsheet Host = "spreadsheet"
	// Presentation is the slide-deck host.
	Presentation Host = "presentation"
	// Document is the word-processing host.
	Document Host = "document"
	// Mail is the mailbox host.
	Mail Host = "mail"
)

// Known reports whether h is a member of the closed host set.
func (h Host) Known() bool {
	switch h {
	case Spreadsheet, Presentation, Document, Mail:
		return true
	}
	return false
}

// String returns the wire identifier for the host.
func (h Host) String() string { return string(h) }

// All returns the closed host set in catalog order.
func All() []Host {
	return []Host{Spreadsheet, Presentation, Document, Mail}
}

// ParseHost maps a wire identifier to its Host. The second return is false
// for identifiers outside the closed set.
func ParseHost(s string) (Host, bool) {
	h := Host(s)
	return h, h.Known()
}

type (
	// SpreadsheetContext is the slice of the workbook object model used by
	// the spreadsheet catalog. Every call issues reads or writes against the
	// batch owned by the enclosing Runner invocation.
	SpreadsheetContext interface {
		// RangeValues reads the cell values of the range at address.
		RangeValues(address string) ([][]any, error)
		// SetRangeValues writes a value matrix starting at address.
		SetRangeValues(address string, values [][]any) error
		// SetRangeFormulas writes a formula matrix starting at address.
		SetRangeFormulas(address string, formulas [][]string) error
		// SortRange sorts the range at address on the given column index.
		SortRange(address string, column int, ascending bool) error
		// CreateChart inserts a chart of the given type over the data range.
		CreateChart(chartType, dataRange, title string) error
		// AddComment attaches a comment to the cell at address.
		AddComment(address, text string) error
	}

	// DocumentContext is the slice of the word-processing object model used
	// by the document catalog.
	DocumentContext interface {
		// BodyText reads the full document body text.
		BodyText() (string, error)
		// InsertParagraph appends a paragraph at the given location
		// ("start" or "end").
		InsertParagraph(text, location string) error
		// ReplaceText replaces every occurrence of search with replacement
		// and returns the replacement count.
		ReplaceText(search, replacement string, matchCase bool) (int, error)
	}

	// PresentationContext is the slice of the slide-deck object model used
	// by the presentation catalog.
	PresentationContext interface {
		// AddSlide appends a slide using the named layout and returns its
		// zero-based index.
		AddSlide(layout string) (int, error)
		// SetSlideTitle sets the title placeholder text of the slide at
		// index.
		SetSlideTitle(index int, title string) error
	}

	// MailContext is the slice of the mailbox object model used by the mail
	// catalog.
	MailContext interface {
		// ItemBody reads the body of the current mail item.
		ItemBody() (string, error)
		// InsertText inserts text at the cursor of the compose window.
		InsertText(text string) error
	}
)
