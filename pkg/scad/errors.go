package scad

import "fmt"

// ValidationSeverity indicates whether a validation finding blocks emission
// or is merely informational.
type ValidationSeverity int

const (
	SeverityError   ValidationSeverity = iota // blocks emission
	SeverityWarning                           // informational
)

func (s ValidationSeverity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("ValidationSeverity(%d)", int(s))
	}
}

// ValidationError describes a single invalid argument or tree defect. Op
// names the statement being built, Field the offending argument.
type ValidationError struct {
	Op       string
	Field    string
	Message  string
	Severity ValidationSeverity
}

func (e ValidationError) Error() string {
	switch {
	case e.Op == "":
		return fmt.Sprintf("[%s] %s", e.Severity, e.Message)
	case e.Field == "":
		return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Op, e.Message)
	default:
		return fmt.Sprintf("[%s] %s %s: %s", e.Severity, e.Op, e.Field, e.Message)
	}
}

// invalidf builds a blocking ValidationError with a formatted message.
func invalidf(op, field, format string, args ...any) ValidationError {
	return ValidationError{
		Op:       op,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
		Severity: SeverityError,
	}
}
