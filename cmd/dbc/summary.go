package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/markovejnovic/libdbc/dbc"
	"gopkg.in/yaml.v3"
)

type summary struct {
	File        string              `json:"file" yaml:"file"`
	Version     string              `json:"version" yaml:"version"`
	Nodes       []string            `json:"nodes" yaml:"nodes"`
	ValueTables []tableSummary      `json:"value_tables" yaml:"value_tables"`
	Messages    []messageSummary    `json:"messages" yaml:"messages"`
	Diagnostics []diagnosticSummary `json:"diagnostics" yaml:"diagnostics"`
}

type tableSummary struct {
	Name    string         `json:"name" yaml:"name"`
	Entries []entrySummary `json:"entries" yaml:"entries"`
}

type entrySummary struct {
	Value       float64 `json:"value" yaml:"value"`
	Description string  `json:"description" yaml:"description"`
}

type messageSummary struct {
	ID          uint32 `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Size        uint64 `json:"size" yaml:"size"`
	Transmitter string `json:"transmitter" yaml:"transmitter"`
}

type diagnosticSummary struct {
	Line      int    `json:"line" yaml:"line"`
	Keyword   string `json:"keyword" yaml:"keyword"`
	Severity  string `json:"severity" yaml:"severity"`
	Statement string `json:"statement" yaml:"statement"`
}

func buildSummary(file string, db *dbc.Database, report *dbc.Report) summary {
	s := summary{
		File:        file,
		Version:     db.Version(),
		Nodes:       make([]string, 0, db.NodeCount()),
		ValueTables: make([]tableSummary, 0, db.ValueTableCount()),
		Messages:    make([]messageSummary, 0, db.MessageCount()),
		Diagnostics: make([]diagnosticSummary, 0, len(report.Diagnostics)),
	}

	for i := 0; i < db.NodeCount(); i++ {
		s.Nodes = append(s.Nodes, db.Node(i).Name())
	}

	for i := 0; i < db.ValueTableCount(); i++ {
		vt := db.ValueTableAt(i)
		ts := tableSummary{Name: vt.Name(), Entries: make([]entrySummary, 0, vt.Size())}
		for _, k := range vt.Keys() {
			desc, _ := vt.Get(k)
			ts.Entries = append(ts.Entries, entrySummary{Value: k, Description: desc})
		}
		s.ValueTables = append(s.ValueTables, ts)
	}

	for i := 0; i < db.MessageCount(); i++ {
		m := db.Message(i)
		s.Messages = append(s.Messages, messageSummary{
			ID:          m.ID,
			Name:        m.Name(),
			Size:        m.Size,
			Transmitter: m.Transmitter,
		})
	}

	for _, d := range report.Diagnostics {
		s.Diagnostics = append(s.Diagnostics, diagnosticSummary{
			Line:      d.Line,
			Keyword:   d.Keyword,
			Severity:  d.Severity.String(),
			Statement: d.Statement,
		})
	}

	return s
}

func writeSummary(w io.Writer, s summary, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		writeText(w, s)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeText(w io.Writer, s summary) {
	fmt.Fprintf(w, "File: %s\n", s.File)
	fmt.Fprintf(w, "  Version: %q\n", s.Version)

	fmt.Fprintf(w, "  Nodes: %d\n", len(s.Nodes))
	for _, n := range s.Nodes {
		fmt.Fprintf(w, "    - %s\n", n)
	}

	fmt.Fprintf(w, "  Value tables: %d\n", len(s.ValueTables))
	for _, vt := range s.ValueTables {
		fmt.Fprintf(w, "    - %s (%d entries)\n", vt.Name, len(vt.Entries))
		for _, e := range vt.Entries {
			fmt.Fprintf(w, "        %s = %q\n", strconv.FormatFloat(e.Value, 'g', -1, 64), e.Description)
		}
	}

	fmt.Fprintf(w, "  Messages: %d\n", len(s.Messages))
	for _, m := range s.Messages {
		fmt.Fprintf(w, "    - %d %s [%d bytes] from %s\n", m.ID, m.Name, m.Size, m.Transmitter)
	}

	if len(s.Diagnostics) > 0 {
		fmt.Fprintf(w, "  Diagnostics: %d\n", len(s.Diagnostics))
		for _, d := range s.Diagnostics {
			fmt.Fprintf(w, "    %s\n", formatDiagnostic(s.File, d))
		}
	}
}

func formatDiagnostic(file string, d diagnosticSummary) string {
	return fmt.Sprintf("%s:%d: %s %s", file, d.Line, severityLabel(d.Severity), d.Statement)
}

func severityLabel(severity string) string {
	label := "[" + severity + "]"
	switch severity {
	case dbc.Critical.String():
		return color.RedString(label)
	case dbc.Malformed.String():
		return color.YellowString(label)
	default:
		return label
	}
}
