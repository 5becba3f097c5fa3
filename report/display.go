package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

var (
	errorTagStyle   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	warningTagStyle = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack, pterm.Bold)
	errorMsgStyle   = pterm.NewStyle(pterm.FgRed)
	warningMsgStyle = pterm.NewStyle(pterm.FgYellow)
	gutterStyle     = pterm.NewStyle(pterm.FgGray)
	caretStyle      = pterm.NewStyle(pterm.FgRed, pterm.Bold)
)

// display prints one diagnostic: a colored tag, the message, and — if a
// span and source text are both available — the underlined source line(s).
func (r *Reporter) display(label, path string, span *TextSpan, message string) {
	tagStyle, msgStyle := errorTagStyle, errorMsgStyle
	if label == "warning" {
		tagStyle, msgStyle = warningTagStyle, warningMsgStyle
	}

	if span == nil {
		tagStyle.Print(" " + strings.ToUpper(label) + " ")
		msgStyle.Println(" " + path + ": " + message)
		return
	}

	tagStyle.Print(" " + strings.ToUpper(label) + " ")
	msgStyle.Println(fmt.Sprintf(" %s:%d:%d: %s", path, span.StartLine, span.StartCol, message))

	if r.source != "" && path == r.path {
		displaySourceText(r.source, span)
	}
}

// displaySourceText renders the source line(s) covered by span with a
// caret underline, in the gutter-number style the teacher's own display
// code uses.
func displaySourceText(source string, span *TextSpan) {
	lines := strings.Split(source, "\n")

	startLine := span.StartLine
	endLine := span.EndLine
	if endLine < startLine {
		endLine = startLine
	}

	maxLineNumLen := len(strconv.Itoa(endLine))
	gutterFmt := "%" + strconv.Itoa(maxLineNumLen) + "d | "

	for ln := startLine; ln <= endLine && ln <= len(lines); ln++ {
		text := lines[ln-1]
		gutterStyle.Print(sprintf(gutterFmt, ln))
		fmt.Println(text)

		gutterStyle.Print(strings.Repeat(" ", maxLineNumLen) + " | ")

		startCol := 1
		if ln == startLine {
			startCol = span.StartCol
		}
		endCol := len(text) + 1
		if ln == endLine {
			endCol = span.EndCol
		}
		if endCol <= startCol {
			endCol = startCol + 1
		}

		caretStyle.Println(strings.Repeat(" ", startCol-1) + strings.Repeat("^", endCol-startCol))
	}
}
