package di

import "strconv"

// Scope is the lifecycle policy of a Module.
type Scope int

const (
	// Prototype runs the factory on every resolution. It is the default.
	Prototype Scope = iota
	// Singleton runs the factory once per resolver and reuses the instance.
	Singleton
)

func (s Scope) String() string {
	switch s {
	case Prototype:
		return "prototype"
	case Singleton:
		return "singleton"
	default:
		return "scope(" + strconv.Itoa(int(s)) + ")"
	}
}

// MarshalYAML renders the scope by name.
func (s Scope) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
