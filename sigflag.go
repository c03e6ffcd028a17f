package sigflag

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
	"golang.org/x/xerrors"
)

// Default help flag was given, and should be handled.
var ErrDefaultHelp = xerrors.New("help flag")

// ParseErr builds the parser for f and applies it to args.
func ParseErr(f Func, args []string) (Values, error) {
	p, err := newParser(f)
	if err != nil {
		return nil, err
	}
	return p.parse(args)
}

// Main builds a parser from f, parses os.Args, and invokes f with the
// parsed values. Malformed input prints the error and exits 2, -h/--help
// prints usage and exits 0, configuration and invocation errors exit 1.
func Main(f Func) {
	if f.Program == "" {
		f.Program = filepath.Base(os.Args[0])
	}
	p, err := newParser(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", f.Program, err)
		os.Exit(1)
	}
	vals, err := p.parse(os.Args[1:])
	if err == nil {
		if f.Invoke != nil {
			err = f.Invoke(vals)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", f.Program, err)
			os.Exit(1)
		}
		return
	}
	if errors.Cause(err) == ErrDefaultHelp {
		p.WriteUsage(os.Stdout)
		os.Exit(0)
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", f.Program, err)
	if _, ok := errors.Cause(err).(userError); ok {
		os.Exit(2)
	}
	os.Exit(1)
}

// Turn a parameter name into the key for its --flag form: lower cased,
// hyphen separated. Positional names are never rewritten.
func flagName(name string) string {
	return strings.Replace(xstrings.ToSnakeCase(name), "_", "-", -1)
}
