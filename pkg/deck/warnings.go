package deck

import "fmt"

// Warning is a non-fatal diagnostic produced during deck generation.
// The converter packages return warnings next to their results instead of
// logging from the inside; the caller decides how to surface them.
type Warning struct {
	Component string `json:"component"`
	Message   string `json:"message"`
}

// Warningf creates a Warning for the given component.
func Warningf(component, message string, formatedValues ...interface{}) Warning {
	return Warning{
		Component: component,
		Message:   fmt.Sprintf(message, formatedValues...),
	}
}

func (w Warning) String() string {
	return w.Component + ": " + w.Message
}
