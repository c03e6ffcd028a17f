package sigflag

import (
	"fmt"
	"reflect"

	"github.com/sigflag/sigflag/docstring"
)

const infArity = 1000

type arity struct {
	min, max int
}

var (
	arityNone      = arity{0, 0}
	arityOne       = arity{1, 1}
	arityOneOrMore = arity{1, infArity}
)

func arityFixed(n int) arity {
	return arity{n, n}
}

// argSpec is what one parameter maps to: either a positional argument or a
// --flag, with its arity, coercion and choice set.
type argSpec struct {
	param    string // parameter name, the Values key
	name     string // raw name for positionals, hyphenated for flags
	flag     bool
	arity    arity
	convert  converter   // per-token coercion, nil passes the text through
	elems    []converter // fixed tuples: one converter per position
	choices  []string
	def      interface{}
	hasDef   bool
	tuple    bool // materialize the result as a Tuple
	boolFlag bool // valueless, presence inverts def
	help     string
}

func (a *argSpec) display() string {
	if a.flag {
		return "--" + a.name
	}
	return a.name
}

// newParser maps a declared signature to a parser configuration. Parameters
// are emitted in three passes: plain ones first, then annotated ones, then
// those with only a default. Positional arguments consume input in emission
// order.
func newParser(f Func) (*parser, error) {
	docs := docstring.Parse(f.Doc)
	p := &parser{
		program:     f.Program,
		description: docs.Long,
		flags:       make(map[string]*argSpec),
	}
	if p.program == "" {
		p.program = "program"
	}
	if p.description == "" {
		p.description = docs.Short
	}
	seen := make(map[string]bool)
	for _, prm := range f.Params {
		if prm.name == "" {
			return nil, ConfigError{"parameter with empty name"}
		}
		if seen[prm.name] {
			return nil, ConfigError{fmt.Sprintf("parameter %q declared more than once", prm.name)}
		}
		seen[prm.name] = true
	}
	for _, prm := range f.Params {
		if prm.typ != nil || prm.hasDefault {
			continue
		}
		err := p.add(&argSpec{param: prm.name, name: prm.name, arity: arityOne}, docs)
		if err != nil {
			return nil, err
		}
	}
	for _, prm := range f.Params {
		if prm.typ == nil {
			continue
		}
		a, err := annotatedSpec(prm)
		if err != nil {
			return nil, err
		}
		if err := p.add(a, docs); err != nil {
			return nil, err
		}
	}
	for _, prm := range f.Params {
		if prm.typ != nil || !prm.hasDefault {
			continue
		}
		if err := p.add(defaultSpec(prm), docs); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *parser) add(a *argSpec, docs docstring.Doc) error {
	if dp, ok := docs.Param(a.param); ok {
		a.help = dp.Description
	}
	if !a.flag {
		p.pos = append(p.pos, a)
		return nil
	}
	if _, ok := p.flags[a.name]; ok {
		return ConfigError{fmt.Sprintf("flag %q defined more than once", a.name)}
	}
	p.flags[a.name] = a
	p.flagOrder = append(p.flagOrder, a)
	return nil
}

// annotatedSpec handles parameters with a type descriptor. A default makes
// the argument an optional flag, otherwise it stays positional.
func annotatedSpec(prm Param) (*argSpec, error) {
	a := &argSpec{param: prm.name}
	if prm.hasDefault {
		a.flag = true
		a.name = flagName(prm.name)
		a.def = prm.def
		a.hasDef = true
	} else {
		a.name = prm.name
	}
	switch t := prm.typ.(type) {
	case listType:
		a.arity = arityOneOrMore
		if t.elem != nil {
			var err error
			a.convert, a.choices, err = elemConverter(t.elem)
			if err != nil {
				return nil, err
			}
		}
	case tupleType:
		if len(t.elems) == 0 {
			return nil, ConfigError{fmt.Sprintf("parameter %q: fixed tuple needs element types", prm.name)}
		}
		a.tuple = true
		a.arity = arityFixed(len(t.elems))
		for _, et := range t.elems {
			conv, _, err := elemConverter(et)
			if err != nil {
				return nil, err
			}
			a.elems = append(a.elems, conv)
		}
		if e, ok := t.elems[0].(*Enum); ok && sameEnum(t.elems, e) {
			a.choices = e.names()
		}
	case variadicTupleType:
		a.tuple = true
		a.arity = arityOneOrMore
		if t.elem != nil {
			var err error
			a.convert, a.choices, err = elemConverter(t.elem)
			if err != nil {
				return nil, err
			}
		}
	case *Enum:
		a.arity = arityOne
		a.convert = enumConverter(t)
		a.choices = t.names()
	case *Scalar:
		a.arity = arityOne
		a.convert = scalarConverter(t)
	default:
		return nil, ConfigError{fmt.Sprintf("parameter %q: unsupported type descriptor %T", prm.name, prm.typ)}
	}
	return a, nil
}

func sameEnum(elems []Type, e *Enum) bool {
	for _, t := range elems {
		if t != Type(e) {
			return false
		}
	}
	return true
}

// defaultSpec handles parameters with a default but no type descriptor. They
// are always flags; everything else is inferred from the default value.
func defaultSpec(prm Param) *argSpec {
	a := &argSpec{
		param:  prm.name,
		name:   flagName(prm.name),
		flag:   true,
		def:    prm.def,
		hasDef: true,
	}
	switch d := prm.def.(type) {
	case bool:
		a.boolFlag = true
		a.arity = arityNone
	case Member:
		a.arity = arityOne
		a.convert = enumConverter(d.enum)
		a.choices = d.enum.names()
	case Tuple:
		a.tuple = true
		switch {
		case len(d) == 0:
			a.arity = arityOneOrMore
		case uniformType(d):
			a.arity = arityOneOrMore
			a.convert, a.choices = inferConverter(d[0])
		default:
			a.arity = arityFixed(len(d))
			for _, v := range d {
				conv, _ := inferConverter(v)
				a.elems = append(a.elems, conv)
			}
		}
	case nil:
		a.arity = arityOne
	default:
		if rv := reflect.ValueOf(prm.def); rv.Kind() == reflect.Slice {
			a.arity = arityOneOrMore
			if rv.Len() != 0 {
				a.convert, a.choices = inferConverter(rv.Index(0).Interface())
			}
		} else {
			a.arity = arityOne
			a.convert, a.choices = inferConverter(prm.def)
		}
	}
	return a
}

// uniformType reports whether all tuple elements share one runtime type.
// Enum members only count as uniform within the same enum.
func uniformType(d Tuple) bool {
	if m, ok := d[0].(Member); ok {
		for _, v := range d[1:] {
			vm, ok := v.(Member)
			if !ok || vm.enum != m.enum {
				return false
			}
		}
		return true
	}
	t := reflect.TypeOf(d[0])
	for _, v := range d[1:] {
		if reflect.TypeOf(v) != t {
			return false
		}
	}
	return true
}
