package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// outputOptions are the flags shared by every listing command.
type outputOptions struct {
	// JSON switches from the tabular rendering to indented JSON.
	JSON bool

	// Query is an optional JMESPath expression applied to the JSON form
	// of the result (implies JSON output), e.g. "data[].title".
	Query string
}

func registerOutputFlags(fs *flag.FlagSet) *outputOptions {
	opts := &outputOptions{}
	fs.BoolVar(&opts.JSON, "json", false, "print raw JSON instead of a table")
	fs.StringVar(&opts.Query, "query", "", "JMESPath expression applied to the JSON output")
	return opts
}

// render writes v either as (optionally projected) JSON or through the
// command's tabular renderer.
func (o *outputOptions) render(w io.Writer, v any, table func(io.Writer) error) error {
	if o.Query != "" {
		projected, err := applyQuery(o.Query, v)
		if err != nil {
			return err
		}
		return printJSON(w, projected)
	}
	if o.JSON {
		return printJSON(w, v)
	}
	return table(w)
}

// applyQuery round-trips v through JSON so JMESPath sees the wire shape
// (snake_case keys), then evaluates the expression against it.
func applyQuery(expr string, v any) (any, error) {
	if _, err := jmespath.Compile(expr); err != nil {
		return nil, fmt.Errorf("invalid --query expression: %w", err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode result: %w", err)
	}

	projected, err := jmespath.Search(expr, data)
	if err != nil {
		return nil, fmt.Errorf("evaluate --query expression: %w", err)
	}
	return projected, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// newTable returns a tabwriter over w with the column settings every
// listing command shares.
func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func parseID(args []string, what string) (int, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("%s id is required", what)
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, args[0])
	}
	return id, nil
}
