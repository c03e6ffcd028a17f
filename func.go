package sigflag

// Func describes the callable a parser is derived from. Go can't reflect
// parameter names or defaults out of a func value, so the signature is
// declared as an explicit table instead.
type Func struct {
	// Program name shown in usage. Defaults to filepath.Base(os.Args[0]).
	Program string
	// Docstring. The long description (or the summary line if there is no
	// long description) becomes the program description, and :param:/Args:
	// entries become per-argument help.
	Doc string
	// Parameters in declaration order.
	Params []Param
	// Called by Main with the parsed values.
	Invoke func(Values) error
}

// Param is one declared parameter.
type Param struct {
	name       string
	typ        Type
	def        interface{}
	hasDefault bool
}

// P declares a parameter with neither type nor default.
func P(name string) Param {
	return Param{name: name}
}

// Type returns a copy of the parameter annotated with t.
func (p Param) Type(t Type) Param {
	p.typ = t
	return p
}

// Default returns a copy of the parameter with a default value. The default
// also drives type inference when the parameter has no type descriptor.
func (p Param) Default(v interface{}) Param {
	p.def = v
	p.hasDefault = true
	return p
}

// Tuple is how fixed and variadic tuple arguments are materialized,
// regardless of how the tokens were consumed.
type Tuple []interface{}

// Values maps parameter names to parsed (or defaulted) values.
type Values map[string]interface{}

func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

func (v Values) Tuple(name string) Tuple {
	t, _ := v[name].(Tuple)
	return t
}

func (v Values) List(name string) []interface{} {
	l, _ := v[name].([]interface{})
	return l
}
