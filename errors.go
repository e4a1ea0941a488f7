package bayesopt

import "fmt"

// ConfigurationError reports a problem with how a run was put
// together: an unknown strategy name, a registry collision, invalid
// bounds or horizon, or a seed batch larger than the horizon. It is
// always raised before the objective is evaluated. Errors from the
// objective or from a strategy are propagated verbatim instead.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "bayesopt: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
