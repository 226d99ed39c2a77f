package renderer

import "io"

// SectionPrinter is a helper to conditionally print a header for a section
// only if content is actually written to it.
type SectionPrinter struct {
	headerFunc       func(io.Writer)
	hasPrintedHeader bool
}

// Header creates a new SectionPrinter and sets the function that will be called to print the section header.
func Header(f func(io.Writer)) *SectionPrinter {
	return &SectionPrinter{headerFunc: f}
}

// PrintHeader prints the section header, but only on the first call.
// Subsequent calls do nothing. It should be called just before printing the first row.
func (p *SectionPrinter) PrintHeader(w io.Writer) {
	if p.hasPrintedHeader {
		return
	}
	p.hasPrintedHeader = true
	if p.headerFunc != nil {
		p.headerFunc(w)
	}
}
