package sigflag

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// parser is the one-shot configuration built from a Func. It is used for a
// single argv slice and then discarded.
type parser struct {
	program     string
	description string

	flags     map[string]*argSpec
	flagOrder []*argSpec
	pos       []*argSpec

	noDefaultHelp bool
}

func (p *parser) parse(args []string) (Values, error) {
	vals := make(Values)
	for _, a := range p.flagOrder {
		vals[a.param] = a.def
	}
	var posTokens []string
	for len(args) != 0 {
		tok := args[0]
		args = args[1:]
		if tok == "--" {
			posTokens = append(posTokens, args...)
			break
		}
		if tok == "-h" && !p.noDefaultHelp {
			return nil, ErrDefaultHelp
		}
		if isFlagToken(tok) {
			var err error
			args, err = p.parseFlag(tok[2:], args, vals)
			if err != nil {
				return nil, err
			}
			continue
		}
		posTokens = append(posTokens, tok)
	}
	if err := p.parsePos(posTokens, vals); err != nil {
		return nil, err
	}
	return vals, nil
}

func isFlagToken(s string) bool {
	return strings.HasPrefix(s, "--") && len(s) > 2
}

// parseFlag handles one --name or --name=value token, consuming further
// value tokens from args as the flag's arity demands, and returns what is
// left of args.
func (p *parser) parseFlag(s string, args []string, vals Values) ([]string, error) {
	k := s
	v := ""
	hasV := false
	if i := strings.IndexByte(s, '='); i != -1 {
		k, v, hasV = s[:i], s[i+1:], true
	}
	a, ok := p.flags[k]
	if !ok {
		if k == "help" && !p.noDefaultHelp {
			return nil, ErrDefaultHelp
		}
		return nil, userError{fmt.Sprintf("unknown flag: %q", k)}
	}
	if a.boolFlag {
		if hasV {
			return nil, userError{fmt.Sprintf("flag %s does not take a value", a.display())}
		}
		def, _ := a.def.(bool)
		vals[a.param] = !def
		return args, nil
	}
	var tokens []string
	if hasV {
		tokens = append(tokens, v)
	}
	for len(tokens) < a.arity.max && len(args) != 0 && !isFlagToken(args[0]) && args[0] != "--" {
		tokens = append(tokens, args[0])
		args = args[1:]
	}
	if len(tokens) < a.arity.min {
		if len(tokens) == 0 {
			return nil, userError{fmt.Sprintf("flag %s requires a value", a.display())}
		}
		return nil, errors.Wrapf(countError(len(tokens), a.arity.min), "argument %s", a.display())
	}
	val, err := a.materialize(tokens)
	if err != nil {
		return nil, errors.Wrapf(err, "argument %s", a.display())
	}
	vals[a.param] = val
	return args, nil
}

// parsePos distributes the positional tokens over the positional specs in
// emission order. Every spec is owed its minimum before an earlier
// one-or-more spec may take the rest.
func (p *parser) parsePos(tokens []string, vals Values) error {
	// The spec whose minimum can't be covered is the one reported missing.
	cum := 0
	for _, a := range p.pos {
		if cum+a.arity.min > len(tokens) {
			got := len(tokens) - cum
			if got <= 0 {
				return userError{fmt.Sprintf("missing argument: %q", a.name)}
			}
			return countError(got, a.arity.min)
		}
		cum += a.arity.min
	}
	idx := 0
	for ai, a := range p.pos {
		rest := 0
		for _, later := range p.pos[ai+1:] {
			rest += later.arity.min
		}
		take := a.arity.min
		if a.arity.max > take {
			take = len(tokens) - idx - rest
			if take > a.arity.max {
				take = a.arity.max
			}
		}
		val, err := a.materialize(tokens[idx : idx+take])
		if err != nil {
			return err
		}
		vals[a.param] = val
		idx += take
	}
	if idx < len(tokens) {
		if n := len(p.pos); n != 0 {
			if last := p.pos[n-1]; last.elems != nil {
				return countError(len(last.elems)+1, len(last.elems))
			}
		}
		return userError{fmt.Sprintf("excess argument: %q", tokens[idx])}
	}
	return nil
}

// materialize coerces consumed tokens and shapes the final value: a single
// value for arity one, a Tuple for tuple shapes, a list otherwise. Fixed
// tuples coerce each position with its own converter; a token past the last
// position fails with the required count.
func (a *argSpec) materialize(tokens []string) (interface{}, error) {
	out := make([]interface{}, 0, len(tokens))
	for i, tok := range tokens {
		var v interface{} = tok
		var err error
		switch {
		case a.elems != nil:
			if i >= len(a.elems) {
				return nil, countError(i+1, len(a.elems))
			}
			v, err = a.elems[i](tok)
		case a.convert != nil:
			v, err = a.convert(tok)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if a.tuple {
		return Tuple(out), nil
	}
	if a.arity == arityOne {
		return out[0], nil
	}
	return out, nil
}
