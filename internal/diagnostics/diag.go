package diagnostics

type Severity string

const (
	Info Severity = "info"
	Warn Severity = "warning"
	Err  Severity = "error"
)

type Diagnostic struct {
	Severity       Severity       `json:"severity"`
	Code           string         `json:"code"`
	Summary        string         `json:"summary"`
	Detail         string         `json:"detail,omitempty"`
	LikelyCauses   []string       `json:"likely_causes,omitempty"`
	SuggestedFixes []string       `json:"suggested_fixes,omitempty"`
	Evidence       map[string]any `json:"evidence,omitempty"`
}

// OutputInit describes a failed output-line initialization. This is the
// only fatal condition in the system, so it gets the full treatment:
// the operator reads this, not a stack trace.
func OutputInit(driver string, err error) Diagnostic {
	return Diagnostic{
		Severity: Err,
		Code:     "output_init_failed",
		Summary:  "an output line could not be configured",
		Detail:   err.Error(),
		LikelyCauses: []string{
			"wrong gpio chip path or line name for this board",
			"line already claimed by another process",
			"insufficient permissions on the gpio device",
		},
		SuggestedFixes: []string{
			"check the configured line names against `gpioinfo`",
			"stop whatever holds the line, or pick free lines",
			"run as a user with access to /dev/gpiochip*",
		},
		Evidence: map[string]any{"driver": driver},
	}
}
