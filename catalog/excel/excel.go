// Package excel declares the spreadsheet host's capability catalog. Each
// entry is a static configuration literal whose execute body is a direct
// sequence of workbook object-model calls; every read and write it issues
// batches inside the enclosing run primitive and flushes over one round
// trip.
package excel

import (
	"context"
	"fmt"

	"goa.design/officetools/catalog/args"
	"goa.design/officetools/hosts"
	"goa.design/officetools/toolcfg"
)

type cfg = toolcfg.ToolConfig[hosts.SpreadsheetContext]

// Configs returns the spreadsheet catalog in manifest order.
func Configs() []cfg { return configs }

var configs = []cfg{
	{
		Base: toolcfg.Base{
			Name:        "get_range_values",
			Description: "Read the cell values of a range. Returns a matrix of values in row-major order.",
			Params: map[string]toolcfg.ParamDef{
				"address": {
					Type:        toolcfg.TypeString,
					Description: "Range address in A1 notation, e.g. \"Sheet1!A1:C10\".",
				},
				"maxRows": {
					Type:        toolcfg.TypeNumber,
					Required:    toolcfg.Bool(false),
					Description: "Maximum number of rows to return. Omit for no limit.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.SpreadsheetContext, bag map[string]any) (any, error) {
			values, err := hc.RangeValues(args.String(bag, "address"))
			if err != nil {
				return nil, err
			}
			if max := args.Int(bag, "maxRows"); max > 0 && len(values) > max {
				values = values[:max]
			}
			return values, nil
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "set_range_values",
			Description: "Write a matrix of values into a range starting at the given address.",
			Params: map[string]toolcfg.ParamDef{
				"address": {
					Type:        toolcfg.TypeString,
					Description: "Top-left cell address in A1 notation.",
				},
				"values": {
					Type:        toolcfg.TypeAnyMatrix,
					Description: "Row-major matrix of cell values. Numbers, strings and booleans are allowed.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.SpreadsheetContext, bag map[string]any) (any, error) {
			values := args.Matrix(bag, "values")
			if err := hc.SetRangeValues(args.String(bag, "address"), values); err != nil {
				return nil, err
			}
			return fmt.Sprintf("wrote %d rows", len(values)), nil
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "set_range_formulas",
			Description: "Write a matrix of formulas into a range starting at the given address.",
			Params: map[string]toolcfg.ParamDef{
				"address": {
					Type:        toolcfg.TypeString,
					Description: "Top-left cell address in A1 notation.",
				},
				"formulas": {
					Type:        toolcfg.TypeStringMatrix,
					Description: "Row-major matrix of formulas, each starting with '='.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.SpreadsheetContext, bag map[string]any) (any, error) {
			formulas := args.StringMatrix(bag, "formulas")
			if err := hc.SetRangeFormulas(args.String(bag, "address"), formulas); err != nil {
				return nil, err
			}
			return fmt.Sprintf("wrote %d formula rows", len(formulas)), nil
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "sort_range",
			Description: "Sort the rows of a range on one column.",
			Params: map[string]toolcfg.ParamDef{
				"address": {
					Type:        toolcfg.TypeString,
					Description: "Range address in A1 notation.",
				},
				"column": {
					Type:        toolcfg.TypeNumber,
					Description: "Zero-based index of the sort column within the range.",
				},
				"ascending": {
					Type:        toolcfg.TypeBoolean,
					Default:     true,
					Description: "Sort ascending when true, descending when false.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.SpreadsheetContext, bag map[string]any) (any, error) {
			if err := hc.SortRange(args.String(bag, "address"), args.Int(bag, "column"), args.BoolOr(bag, "ascending", true)); err != nil {
				return nil, err
			}
			return "sorted", nil
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "create_chart",
			Description: "Insert a chart over a data range on the active sheet.",
			Params: map[string]toolcfg.ParamDef{
				"chartType": {
					Type:        toolcfg.TypeString,
					Enum:        []string{"ColumnClustered", "Line", "Pie", "BarClustered", "Scatter"},
					Description: "Chart type to create.",
				},
				"dataRange": {
					Type:        toolcfg.TypeString,
					Description: "Data range address in A1 notation.",
				},
				"title": {
					Type:        toolcfg.TypeString,
					Required:    toolcfg.Bool(false),
					Description: "Chart title. Omit to leave the default title.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.SpreadsheetContext, bag map[string]any) (any, error) {
			if err := hc.CreateChart(args.String(bag, "chartType"), args.String(bag, "dataRange"), args.String(bag, "title")); err != nil {
				return nil, err
			}
			return "chart created", nil
		},
	},
	{
		Base: toolcfg.Base{
			Name:        "add_comment",
			Description: "Attach a comment to a cell.",
			Params: map[string]toolcfg.ParamDef{
				"address": {
					Type:        toolcfg.TypeString,
					Description: "Cell address in A1 notation.",
				},
				"text": {
					Type:        toolcfg.TypeString,
					Description: "Comment text.",
				},
			},
		},
		Execute: func(_ context.Context, hc hosts.SpreadsheetContext, bag map[string]any) (any, error) {
			if err := hc.AddComment(args.String(bag, "address"), args.String(bag, "text")); err != nil {
				return nil, err
			}
			return "comment added", nil
		},
	},
}
