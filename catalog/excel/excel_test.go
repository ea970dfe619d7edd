package excel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/officetools/factory"
	"goa.design/officetools/hosts"
)

// stubWorkbook implements hosts.SpreadsheetContext over in-memory state.
type stubWorkbook struct {
	values   [][]any
	sorted   bool
	lastSort struct {
		column    int
		ascending bool
	}
	comments map[string]string
	failAll  bool
}

func (w *stubWorkbook) RangeValues(address string) ([][]any, error) {
	if w.failAll {
		return nil, errors.New("Invalid address")
	}
	return w.values, nil
}

func (w *stubWorkbook) SetRangeValues(_ string, values [][]any) error {
	if w.failAll {
		return errors.New("Invalid address")
	}
	w.values = values
	return nil
}

func (w *stubWorkbook) SetRangeFormulas(string, [][]string) error {
	if w.failAll {
		return errors.New("Invalid address")
	}
	return nil
}

func (w *stubWorkbook) SortRange(_ string, column int, ascending bool) error {
	if w.failAll {
		return errors.New("Invalid address")
	}
	w.sorted = true
	w.lastSort.column = column
	w.lastSort.ascending = ascending
	return nil
}

func (w *stubWorkbook) CreateChart(string, string, string) error {
	if w.failAll {
		return errors.New("Invalid address")
	}
	return nil
}

func (w *stubWorkbook) AddComment(address, text string) error {
	if w.comments == nil {
		w.comments = map[string]string{}
	}
	w.comments[address] = text
	return nil
}

func liveTools(t *testing.T, wb *stubWorkbook) map[string]*factory.Tool[hosts.SpreadsheetContext] {
	t.Helper()
	run := func(_ context.Context, fn func(hosts.SpreadsheetContext) (any, error)) (any, error) {
		return fn(wb)
	}
	tools, err := factory.New(Configs(), run)
	require.NoError(t, err)
	byName := make(map[string]*factory.Tool[hosts.SpreadsheetContext], len(tools))
	for _, tool := range tools {
		byName[tool.Name()] = tool
	}
	return byName
}

func TestCatalogIsValid(t *testing.T) {
	wb := &stubWorkbook{}
	tools := liveTools(t, wb)
	require.Len(t, tools, len(Configs()))
}

func TestGetRangeValuesCapsRows(t *testing.T) {
	wb := &stubWorkbook{values: [][]any{{"a"}, {"b"}, {"c"}}}
	tools := liveTools(t, wb)

	res := tools["get_range_values"].Invoke(context.Background(), map[string]any{
		"address": "Sheet1!A1:A3",
		"maxRows": 2.0,
	})
	require.Nil(t, res.Err)
	require.Equal(t, [][]any{{"a"}, {"b"}}, res.Value)
}

func TestSortRangeDefaultsAscending(t *testing.T) {
	wb := &stubWorkbook{}
	tools := liveTools(t, wb)

	res := tools["sort_range"].Invoke(context.Background(), map[string]any{
		"address": "A1:B10",
		"column":  1.0,
	})
	require.Nil(t, res.Err)
	require.True(t, wb.sorted)
	require.Equal(t, 1, wb.lastSort.column)
	require.True(t, wb.lastSort.ascending, "omitted ascending must apply the declared default")
}

func TestCreateChartRejectsUnknownType(t *testing.T) {
	wb := &stubWorkbook{}
	tools := liveTools(t, wb)

	res := tools["create_chart"].Invoke(context.Background(), map[string]any{
		"chartType": "Donut",
		"dataRange": "A1:B10",
	})
	require.NotNil(t, res.Err)
	require.Contains(t, res.Err.Message, "invalid_enum_value")
}

func TestHostFailureSurfacesAsFailureResult(t *testing.T) {
	wb := &stubWorkbook{failAll: true}
	tools := liveTools(t, wb)

	res := tools["get_range_values"].Invoke(context.Background(), map[string]any{
		"address": "bogus",
	})
	require.NotNil(t, res.Err)
	require.Equal(t, "Invalid address", res.Err.Message)
}

func TestAddComment(t *testing.T) {
	wb := &stubWorkbook{}
	tools := liveTools(t, wb)

	res := tools["add_comment"].Invoke(context.Background(), map[string]any{
		"address": "B2",
		"text":    "check this figure",
	})
	require.Nil(t, res.Err)
	require.Equal(t, "check this figure", wb.comments["B2"])
}
