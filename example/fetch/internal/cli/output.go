package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/kroma-labs/ruxios-go/ruxios"
)

type palette struct {
	method      *color.Color
	url         *color.Color
	statusOK    *color.Color
	statusWarn  *color.Color
	statusError *color.Color
	warning     *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		method:      color.New(color.FgBlue, color.Bold),
		url:         color.New(color.FgCyan),
		statusOK:    color.New(color.FgGreen, color.Bold),
		statusWarn:  color.New(color.FgYellow, color.Bold),
		statusError: color.New(color.FgRed, color.Bold),
		warning:     color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{p.method, p.url, p.statusOK, p.statusWarn, p.statusError, p.warning} {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) status(code int) *color.Color {
	switch {
	case code >= 200 && code < 300:
		return p.statusOK
	case code >= 300 && code < 500:
		return p.statusWarn
	default:
		return p.statusError
	}
}

func (p palette) printRequest(w io.Writer, method, url string) {
	fmt.Fprintf(w, "%s %s\n", p.method.Sprint(method), p.url.Sprint(url))
}

func (p palette) printStatus(w io.Writer, code int) {
	p.status(code).Fprintf(w, "HTTP %d\n", code)
}

// printDocument writes doc, or the part selected by query, indented.
func printDocument(w io.Writer, doc ruxios.Value, query string) {
	if query != "" {
		res := doc.Get(query)
		if !res.Exists() {
			fmt.Fprintln(w, "null")
			return
		}
		if !res.IsObject() && !res.IsArray() {
			fmt.Fprintln(w, res.Raw)
			return
		}
		fmt.Fprint(w, ruxios.RawValue([]byte(res.Raw)).Get("@pretty").Raw)
		return
	}
	fmt.Fprint(w, doc.Get("@pretty").Raw)
}

func (p palette) printViolations(w io.Writer, errs ruxios.ValidationErrors) {
	p.warning.Fprintf(w, "schema: %d violation(s)\n", len(errs))
	for _, err := range errs {
		p.warning.Fprintf(w, "  - %v\n", err)
	}
}
