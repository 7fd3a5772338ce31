// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/tilemul/benchmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var tableColumns = []string{"config", "elapsed", "gflops", "correct"}

// report is the JSON document written by --json.
type report struct {
	Host        benchmark.Host    `json:"host"`
	Seed        int64             `json:"seed"`
	Shape       [3]int            `json:"shape"` // m, k, n
	ReferenceNS time.Duration     `json:"reference_ns"`
	Results     *benchmark.Result `json:"results"`
}

func newReport(res *benchmark.Result, host benchmark.Host, seed int64) report {
	return report{
		Host:        host,
		Seed:        seed,
		Shape:       [3]int{res.M, res.K, res.N},
		ReferenceNS: res.Reference,
		Results:     res,
	}
}

func newPrinter() *message.Printer { return message.NewPrinter(language.English) }

// writeTable prints a header line and one aligned row per config, in run order.
func writeTable(w io.Writer, p *message.Printer, res *benchmark.Result) {
	p.Fprintf(w, "A %d×%d · B %d×%d, reference %v\n\n", res.M, res.K, res.K, res.N, res.Reference)

	title := cases.Title(language.English)
	head := make([]string, len(tableColumns))
	for i, c := range tableColumns {
		head[i] = title.String(c)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(head, "\t")+"\t")
	for _, e := range res.Entries() {
		p.Fprintf(tw, "%s\t%v\t%.2f\t%t\t\n", e.Config, e.Elapsed.Round(time.Microsecond), e.GFLOPS, e.Correct)
	}
	_ = tw.Flush()

	if best, ok := res.Fastest(); ok {
		p.Fprintf(w, "\nfastest: %s (%.2f GFLOPS)\n", best.Config, best.GFLOPS)
	}
}

// writeHost prints one line describing the machine.
func writeHost(w io.Writer, p *message.Printer, h benchmark.Host) {
	features := "none detected"
	if len(h.Features) > 0 {
		features = strings.Join(h.Features, " ")
	}
	p.Fprintf(w, "host: %s/%s, %d CPUs, %s, features: %s\n", h.OS, h.Arch, h.NumCPU, h.GoVersion, features)
}

func writeJSONFile(path string, r report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("--json: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err = enc.Encode(r); err != nil {
		_ = f.Close()
		return fmt.Errorf("--json: %w", err)
	}

	return f.Close()
}
