package sigflag

import (
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"
)

// Type describes a parameter annotation. The set of implementations is
// closed: Scalar, Enum, and the list/tuple shapes below. build.go switches
// over them exhaustively.
type Type interface {
	typeDesc()
}

// Scalar is a type whose values come from a single token.
type Scalar struct {
	name  string
	parse func(s string) (interface{}, error)
}

func (*Scalar) typeDesc() {}

// ScalarOf makes a scalar descriptor from a type name and its constructor.
func ScalarOf(name string, parse func(s string) (interface{}, error)) *Scalar {
	return &Scalar{name: name, parse: parse}
}

var (
	String = ScalarOf("string", func(s string) (interface{}, error) {
		return s, nil
	})
	Int = ScalarOf("int", func(s string) (interface{}, error) {
		return strconv.Atoi(s)
	})
	Float64 = ScalarOf("float", func(s string) (interface{}, error) {
		return strconv.ParseFloat(s, 64)
	})
	Bool = ScalarOf("bool", func(s string) (interface{}, error) {
		return strconv.ParseBool(s)
	})
	Duration = ScalarOf("duration", func(s string) (interface{}, error) {
		return time.ParseDuration(s)
	})
	URL = ScalarOf("url", func(s string) (interface{}, error) {
		return url.Parse(s)
	})
	IP = ScalarOf("ip", func(s string) (interface{}, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, xerrors.Errorf("bad ip: %q", s)
		}
		return ip, nil
	})
	TCPAddr = ScalarOf("addr", func(s string) (interface{}, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
)

// Enum restricts a token to a closed, ordered set of named members.
type Enum struct {
	name    string
	members []Member
}

func (*Enum) typeDesc() {}

// NewEnum declares an enum and its members in order.
func NewEnum(name string, members ...string) *Enum {
	e := &Enum{name: name}
	for _, m := range members {
		e.members = append(e.members, Member{Name: m, enum: e})
	}
	return e
}

// Member looks up a member by name, for use as a default value. Unknown
// names panic: they are declaration bugs, not CLI input.
func (e *Enum) Member(name string) Member {
	for _, m := range e.members {
		if m.Name == name {
			return m
		}
	}
	panic("no member " + strconv.Quote(name) + " in enum " + e.name)
}

func (e *Enum) names() (ret []string) {
	for _, m := range e.members {
		ret = append(ret, m.Name)
	}
	return
}

// The rendering used for choice sets in help and error messages.
func (e *Enum) choicesString() string {
	return "{" + strings.Join(e.names(), ",") + "}"
}

// Member is a parsed enum value. It renders as the bare member name.
type Member struct {
	Name string
	enum *Enum
}

func (m Member) String() string {
	return m.Name
}

type listType struct {
	elem Type
}

func (listType) typeDesc() {}

// ListOf describes a list with a concrete element type.
func ListOf(elem Type) Type {
	return listType{elem: elem}
}

// UntypedList is a bare list annotation: one or more tokens, no coercion.
var UntypedList Type = listType{}

type tupleType struct {
	elems []Type
}

func (tupleType) typeDesc() {}

// TupleOf describes a fixed-arity tuple, one descriptor per position.
func TupleOf(elems ...Type) Type {
	return tupleType{elems: elems}
}

type variadicTupleType struct {
	elem Type
}

func (variadicTupleType) typeDesc() {}

// TupleVariadic describes a tuple of indefinitely repeated elem.
func TupleVariadic(elem Type) Type {
	return variadicTupleType{elem: elem}
}

// UntypedTuple is a bare tuple annotation: one or more tokens, no coercion,
// result still materialized as a Tuple.
var UntypedTuple Type = variadicTupleType{}
