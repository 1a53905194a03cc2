package fractal

import "fmt"

// ConfigurationError reports a render parameter that would make the output
// degenerate, such as a zero iteration cap or a Newton fractal with no roots.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
