package report

import "sync"

// LogLevel controls how much of what the Reporter is told gets displayed.
// The four levels mirror the teacher's own log-level enumeration.
type LogLevel int

const (
	LogLevelSilent  LogLevel = iota // Display nothing.
	LogLevelError                   // Display only errors.
	LogLevelWarn                    // Display warnings and errors.
	LogLevelVerbose                 // Display everything (default).
)

// Reporter collects and displays diagnostics for one compilation. Its
// methods are safe to call from multiple goroutines even though the
// compiler itself runs single-threaded, matching the teacher's own
// always-synchronized global reporter.
type Reporter struct {
	m sync.Mutex

	logLevel LogLevel

	path   string
	source string

	errorCount   int
	warningCount int
}

// New creates a Reporter at the given log level.
func New(logLevel LogLevel) *Reporter {
	return &Reporter{logLevel: logLevel}
}

// SetSource tells the reporter the path and full text of the file being
// compiled so it can render the offending source line under a diagnostic.
func (r *Reporter) SetSource(path, source string) {
	r.m.Lock()
	defer r.m.Unlock()

	r.path = path
	r.source = source
}

// ReportError reports a compilation error. span may be nil if no position
// information is available (an aggregate error, for instance).
func (r *Reporter) ReportError(path string, span *TextSpan, format string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	r.errorCount++

	if r.logLevel > LogLevelSilent {
		r.display("error", path, span, sprintf(format, args...))
	}
}

// ReportWarning reports a compilation warning.
func (r *Reporter) ReportWarning(path string, span *TextSpan, format string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	r.warningCount++

	if r.logLevel >= LogLevelWarn {
		r.display("warning", path, span, sprintf(format, args...))
	}
}

// AnyErrors reports whether any error has been reported so far.
func (r *Reporter) AnyErrors() bool {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount > 0
}

// ErrorCount returns the number of errors reported so far.
func (r *Reporter) ErrorCount() int {
	r.m.Lock()
	defer r.m.Unlock()

	return r.errorCount
}
