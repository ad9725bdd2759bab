package domain

import "strings"

const bullet = "• "

// Section is a titled block of bullet lines.
type Section struct {
	Header string
	Lines  []string
}

// Digest is the rendered summary of one run.
type Digest struct {
	Sections []Section
}

// IsEmpty reports whether the digest has nothing to show.
func (d Digest) IsEmpty() bool { return len(d.Sections) == 0 }

// String renders each section as its header, its bullet lines and a blank line.
func (d Digest) String() string {
	var b strings.Builder
	for _, s := range d.Sections {
		b.WriteString(s.Header)
		b.WriteString("\n")
		for _, line := range s.Lines {
			b.WriteString(bullet)
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
