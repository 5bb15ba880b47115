package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/pebblecal/pkg/holidays"
)

// Report returns the companion text listing the seed, build ID and the
// styled dates.
func (d *Document) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "seed: %d\n", d.Seed)
	fmt.Fprintf(&b, "build: %s\n\n", d.BuildID)
	b.WriteString("bold dates:\n")
	writeDates(&b, d.Bold)
	b.WriteString("\n\nitalic dates:\n")
	writeDates(&b, d.Italic)
	b.WriteString("\n")
	return b.String()
}

// WriteReport writes Report to w.
func (d *Document) WriteReport(w io.Writer) error {
	_, err := io.WriteString(w, d.Report())
	return err
}

func writeDates(b *strings.Builder, s holidays.Set) {
	for i, date := range s.Sorted() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(date.String())
	}
}
