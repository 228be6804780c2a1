package certexpiry

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/scylladb/termtables"
)

type Reporter interface {
	Report(ExpiryReport)
	Flush() error
}

// one "<path> expires at <time>, which is in <N> days" line per report, written immediately
type LineReporter struct {
	out io.Writer
	err error
}

func NewLineReporter(out io.Writer) *LineReporter {
	return &LineReporter{out: out}
}

func (l *LineReporter) Report(report ExpiryReport) {
	if l.err != nil {
		return
	}

	_, l.err = fmt.Fprintln(l.out, report.String())
}

func (l *LineReporter) Flush() error {
	return l.err
}

// collects reports and renders them as one table on Flush()
type TableReporter struct {
	out     io.Writer
	reports []ExpiryReport
}

func NewTableReporter(out io.Writer) *TableReporter {
	return &TableReporter{out: out}
}

func (t *TableReporter) Report(report ExpiryReport) {
	t.reports = append(t.reports, report)
}

func (t *TableReporter) Flush() error {
	if len(t.reports) == 0 {
		return nil
	}

	table := termtables.CreateTable()
	table.AddHeaders("Path", "Expires", "Days")

	for _, report := range t.reports {
		table.AddRow(
			report.Path,
			report.NotAfter.Format(time.RFC3339),
			strconv.Itoa(report.DaysRemaining))
	}

	_, err := io.WriteString(t.out, table.Render())
	return err
}
