package word

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/officetools/factory"
	"goa.design/officetools/hosts"
)

type stubDocument struct {
	body string
}

func (d *stubDocument) BodyText() (string, error) { return d.body, nil }

func (d *stubDocument) InsertParagraph(text, location string) error {
	if location == "start" {
		d.body = text + "\n" + d.body
	} else {
		d.body = d.body + "\n" + text
	}
	return nil
}

func (d *stubDocument) ReplaceText(search, replacement string, matchCase bool) (int, error) {
	if !matchCase {
		search = strings.ToLower(search)
	}
	n := strings.Count(d.body, search)
	d.body = strings.ReplaceAll(d.body, search, replacement)
	return n, nil
}

func liveTools(t *testing.T, doc *stubDocument) map[string]*factory.Tool[hosts.DocumentContext] {
	t.Helper()
	run := func(_ context.Context, fn func(hosts.DocumentContext) (any, error)) (any, error) {
		return fn(doc)
	}
	tools, err := factory.New(Configs(), run)
	require.NoError(t, err)
	byName := make(map[string]*factory.Tool[hosts.DocumentContext], len(tools))
	for _, tool := range tools {
		byName[tool.Name()] = tool
	}
	return byName
}

func TestInsertParagraphDefaultsToEnd(t *testing.T) {
	doc := &stubDocument{body: "intro"}
	tools := liveTools(t, doc)

	res := tools["insert_paragraph"].Invoke(context.Background(), map[string]any{
		"text": "closing remarks",
	})
	require.Nil(t, res.Err)
	require.Equal(t, "intro\nclosing remarks", doc.body)
}

func TestInsertParagraphRejectsUnknownLocation(t *testing.T) {
	doc := &stubDocument{}
	tools := liveTools(t, doc)

	res := tools["insert_paragraph"].Invoke(context.Background(), map[string]any{
		"text":     "x",
		"location": "middle",
	})
	require.NotNil(t, res.Err)
	require.Contains(t, res.Err.Message, "invalid_enum_value")
}

func TestReplaceTextReportsCount(t *testing.T) {
	doc := &stubDocument{body: "foo bar foo"}
	tools := liveTools(t, doc)

	res := tools["replace_text"].Invoke(context.Background(), map[string]any{
		"search":      "foo",
		"replacement": "baz",
	})
	require.Nil(t, res.Err)
	require.Equal(t, "replaced 2 occurrences", res.Value)
	require.Equal(t, "baz bar baz", doc.body)
}
