package sigflag

import (
	"fmt"
	"reflect"
)

// converter turns one token of input into a typed value.
type converter func(s string) (interface{}, error)

func scalarConverter(t *Scalar) converter {
	return func(s string) (interface{}, error) {
		v, err := t.parse(s)
		if err != nil {
			return nil, userError{fmt.Sprintf("invalid %s value: %q", t.name, s)}
		}
		return v, nil
	}
}

// Tokens are matched against member names, case sensitively.
func enumConverter(e *Enum) converter {
	return func(s string) (interface{}, error) {
		for _, m := range e.members {
			if m.Name == s {
				return m, nil
			}
		}
		return nil, userError{fmt.Sprintf("%q is not a valid choice, must be one of %s", s, e.choicesString())}
	}
}

// elemConverter resolves an element descriptor for list and tuple shapes.
// Only scalars and enums can be elements.
func elemConverter(t Type) (converter, []string, error) {
	switch t := t.(type) {
	case *Scalar:
		return scalarConverter(t), nil, nil
	case *Enum:
		return enumConverter(t), t.names(), nil
	default:
		return nil, nil, ConfigError{fmt.Sprintf("unsupported element type %T", t)}
	}
}

// inferConverter derives a converter from a sample value, for parameters
// whose only type information is their default. The sample's runtime type
// acts as the constructor, via fmt.Sscan into a fresh value of that type.
func inferConverter(sample interface{}) (converter, []string) {
	switch v := sample.(type) {
	case Member:
		return enumConverter(v.enum), v.enum.names()
	case string:
		return func(s string) (interface{}, error) {
			return s, nil
		}, nil
	}
	t := reflect.TypeOf(sample)
	return func(s string) (interface{}, error) {
		n := reflect.New(t)
		if _, err := fmt.Sscan(s, n.Interface()); err != nil {
			return nil, userError{fmt.Sprintf("error parsing %q as %s: %s", s, t, err)}
		}
		return n.Elem().Interface(), nil
	}, nil
}

func countError(got, required int) userError {
	if got > required {
		return userError{fmt.Sprintf("number of arguments (%d) is too many, %d are required", got, required)}
	}
	return userError{fmt.Sprintf("number of arguments (%d) is too few, %d are required", got, required)}
}
