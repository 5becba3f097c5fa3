// Package report implements diagnostic collection and display for the
// compiler: lexical, syntactic, and semantic errors and warnings, all
// rendered through a shared reporter so every phase produces consistently
// formatted output.
package report

// TextSpan is a range of source text used to underline the offending
// construct in a displayed diagnostic. Lines and columns are 1-based. A
// span may cover a single token or an entire multi-line construct.
type TextSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

// NewSpanOver returns a span that covers both given spans and everything
// between them.
func NewSpanOver(start, end *TextSpan) *TextSpan {
	if start == nil {
		return end
	}
	if end == nil {
		return start
	}

	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}
