package report

import "fmt"

// LocalCompileError is an error raised inside a single phase (lexer,
// parser, or checker) that carries enough context (a message and a span)
// for the reporter to display it without further information from the
// caller. Phases raise it with panic and recover it at a synchronization
// boundary (the parser's per-statement recovery, the driver's
// parseSource); CatchErrors is a ready-made deferred recover for the
// same purpose.
type LocalCompileError struct {
	Message string
	Span    *TextSpan
}

func (lce *LocalCompileError) Error() string {
	return lce.Message
}

// Raise builds a LocalCompileError. Callers panic with the result; it is
// not raised directly so that call sites read as `panic(report.Raise(...))`
// at every point spec.md's error-recovery discussion refers to as
// "raising" an error.
func Raise(span *TextSpan, format string, args ...interface{}) *LocalCompileError {
	return &LocalCompileError{Message: fmt.Sprintf(format, args...), Span: span}
}

// CatchErrors recovers a panicked LocalCompileError (or plain error) and
// reports it through the given Reporter. It must always be deferred.
func CatchErrors(rep *Reporter, path string, recovered func(err error)) {
	if x := recover(); x != nil {
		var err error
		switch v := x.(type) {
		case *LocalCompileError:
			rep.ReportError(path, v.Span, v.Message)
			err = v
		case error:
			rep.ReportError(path, nil, v.Error())
			err = v
		default:
			panic(x)
		}

		if recovered != nil {
			recovered(err)
		}
	}
}
