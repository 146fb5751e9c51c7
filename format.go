package skat

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report summarizes the outcome of a solve for human-readable diagnostics:
// CLI output, logs, or test failure messages.
type Report struct {
	Soloist    Player
	Variant    Variant
	Score      int
	SkatPoints int
	NodesSeen  int
}

// ReportPrinter formats [Report] values using a fixed locale, so that nodes-
// seen counts group thousands the way the locale expects rather than always
// assuming a comma.
type ReportPrinter struct {
	p *message.Printer
}

// NewReportPrinter returns a ReportPrinter for tag (e.g. language.English,
// language.German). An unrecognized or zero tag falls back to the message
// package's default (English) formatting.
func NewReportPrinter(tag language.Tag) *ReportPrinter {
	return &ReportPrinter{p: message.NewPrinter(tag)}
}

// Fprint writes a one-line summary of r to w.
func (rp *ReportPrinter) Fprint(w io.Writer, r Report) error {
	_, err := rp.p.Fprintf(w, "%s declares %s: %d points (skat %d) after searching %d nodes\n",
		r.Soloist, r.Variant, r.Score, r.SkatPoints, r.NodesSeen)
	return err
}

// String formats r with the default (English) locale, for use in error
// messages and test failure output where pulling in an io.Writer would be
// awkward.
func (r Report) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%s declares %s: %d points (skat %d) after searching %d nodes",
		r.Soloist, r.Variant, r.Score, r.SkatPoints, r.NodesSeen)
}

var _ fmt.Stringer = Report{}
