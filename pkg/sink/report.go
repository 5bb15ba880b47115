package sink

import "github.com/matzehuels/pebblecal/pkg/document"

// RenderReport returns the companion text report.
func RenderReport(doc *document.Document) []byte {
	return []byte(doc.Report())
}
