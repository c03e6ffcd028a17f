package sigflag

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
	"github.com/bradfitz/iter"
)

func (p *parser) WriteUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n  %s", p.program)
	if len(p.flagOrder) != 0 {
		fmt.Fprintf(w, " [OPTIONS...]")
	}
	for _, a := range p.pos {
		if a.arity.max == infArity {
			fmt.Fprintf(w, " <%s>...", a.name)
		} else {
			for range iter.N(a.arity.min) {
				fmt.Fprintf(w, " <%s>", a.name)
			}
		}
	}
	fmt.Fprintf(w, "\n")
	if p.description != "" {
		fmt.Fprintf(w, "\n%s\n", missinggo.Unchomp(p.description))
	}
	if awd := p.argsWithDesc(); len(awd) != 0 {
		fmt.Fprintf(w, "Arguments:\n")
		tw := newUsageTabwriter(w)
		for _, a := range awd {
			fmt.Fprintf(tw, "  %s\t%s\n", a.usageName(), a.help)
		}
		tw.Flush()
	}
	if len(p.flagOrder) != 0 {
		fmt.Fprintf(w, "Options:\n")
		tw := newUsageTabwriter(w)
		for _, a := range p.flagOrder {
			fmt.Fprintf(tw, "  %s\t%s\n", a.usageName(), a.help)
		}
		tw.Flush()
	}
}

func (p *parser) argsWithDesc() (ret []*argSpec) {
	for _, a := range p.pos {
		if a.help != "" || len(a.choices) != 0 {
			ret = append(ret, a)
		}
	}
	return
}

func (a *argSpec) usageName() string {
	name := a.display()
	if len(a.choices) != 0 {
		name += " {" + strings.Join(a.choices, ",") + "}"
	}
	return name
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}
