package mocks

import "tzbot/infras/otel"

var _ otel.Scope = (*Scope)(nil)

// Scope records what the code under test reported so tests can assert on it.
type Scope struct {
	Events     []string
	Errors     []error
	Attributes map[string]any
	Ended      bool
}

// AddEvent implements otel.Scope.
func (s *Scope) AddEvent(name string) {
	s.Events = append(s.Events, name)
}

// End implements otel.Scope.
func (s *Scope) End() {
	s.Ended = true
}

// SetAttribute implements otel.Scope.
func (s *Scope) SetAttribute(key string, value any) {
	if s.Attributes == nil {
		s.Attributes = map[string]any{}
	}

	s.Attributes[key] = value
}

// SetAttributes implements otel.Scope.
func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

// TraceError implements otel.Scope.
func (s *Scope) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

// TraceIfError implements otel.Scope.
func (s *Scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

// TraceID implements otel.Scope.
func (s *Scope) TraceID() string {
	return "00000000000000000000000000000001"
}
