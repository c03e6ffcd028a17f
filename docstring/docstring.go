// Package docstring extracts structured documentation from a docstring: a
// summary line, a longer description, and per-parameter descriptions. Both
// ReST field lists (:param name: ...) and Google-style Args: sections are
// understood.
package docstring

import (
	"regexp"
	"strings"
)

type Param struct {
	Name        string
	Description string
}

type Doc struct {
	Short  string
	Long   string
	Params []Param
}

// Param finds a parameter description by exact name.
func (d Doc) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

var (
	restField   = regexp.MustCompile(`^:([a-zA-Z]+)(?:\s+([^:]+))?:\s*(.*)$`)
	googleParam = regexp.MustCompile(`^([A-Za-z_][A-Za-z_0-9]*)\s*(?:\([^)]*\))?:\s*(.*)$`)
)

var googleParamSections = map[string]bool{
	"Args:":       true,
	"Arguments:":  true,
	"Parameters:": true,
}

var googleOtherSections = map[string]bool{
	"Returns:":  true,
	"Raises:":   true,
	"Yields:":   true,
	"Examples:": true,
}

func Parse(text string) (d Doc) {
	lines := dedent(text)
	var desc []string
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, ":") && restField.MatchString(trimmed) {
			i = d.parseRest(lines, i)
			continue
		}
		if googleParamSections[trimmed] || googleOtherSections[trimmed] {
			i = d.parseGoogle(lines, i, googleParamSections[trimmed])
			continue
		}
		desc = append(desc, lines[i])
		i++
	}
	d.Short, d.Long = splitDescription(desc)
	return
}

// parseRest consumes a ReST field list starting at line i. Fields other
// than :param: are recognized but discarded, continuation lines attach to
// the preceding field.
func (d *Doc) parseRest(lines []string, i int) int {
	keep := false
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			i++
			continue
		}
		m := restField.FindStringSubmatch(trimmed)
		if m == nil {
			if keep && len(d.Params) != 0 {
				last := &d.Params[len(d.Params)-1]
				last.Description = strings.TrimSpace(last.Description + " " + trimmed)
			}
			i++
			continue
		}
		switch m[1] {
		case "param", "parameter", "arg", "argument":
			name := strings.TrimSpace(m[2])
			// A type may precede the name, as in :param int count:.
			if f := strings.Fields(name); len(f) > 1 {
				name = f[len(f)-1]
			}
			d.Params = append(d.Params, Param{Name: name, Description: strings.TrimSpace(m[3])})
			keep = true
		default:
			keep = false
		}
		i++
	}
	return i
}

// parseGoogle consumes one indented section following a header like Args:.
// Entries look like "name (type): description"; deeper indentation
// continues the previous entry. Only parameter sections contribute.
func (d *Doc) parseGoogle(lines []string, i int, keep bool) int {
	i++
	baseIndent := -1
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			i++
			continue
		}
		ind := indentOf(lines[i])
		if ind == 0 {
			return i
		}
		if baseIndent == -1 {
			baseIndent = ind
		}
		if keep {
			if ind > baseIndent && len(d.Params) != 0 {
				last := &d.Params[len(d.Params)-1]
				last.Description = strings.TrimSpace(last.Description + " " + trimmed)
			} else if m := googleParam.FindStringSubmatch(trimmed); m != nil {
				d.Params = append(d.Params, Param{Name: m[1], Description: strings.TrimSpace(m[2])})
			}
		}
		i++
	}
	return i
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// dedent strips the common leading whitespace that docstrings carry from
// source indentation, the way Python's inspect.cleandoc does. The first
// line is trimmed independently.
func dedent(text string) []string {
	lines := strings.Split(strings.Replace(text, "\t", "        ", -1), "\n")
	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		if ind := len(line) - len(trimmed); margin == -1 || ind < margin {
			margin = ind
		}
	}
	out := make([]string, 0, len(lines))
	out = append(out, strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		if margin > 0 && len(line) > margin {
			line = line[margin:]
		} else if margin > 0 {
			line = strings.TrimLeft(line, " ")
		}
		out = append(out, strings.TrimRight(line, " "))
	}
	for len(out) != 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) != 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// splitDescription splits free description lines into the summary
// paragraph and the remainder.
func splitDescription(lines []string) (short, long string) {
	for len(lines) != 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) != 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	var paras []string
	var cur []string
	for _, line := range lines {
		if line == "" {
			if len(cur) != 0 {
				paras = append(paras, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) != 0 {
		paras = append(paras, strings.Join(cur, "\n"))
	}
	if len(paras) == 0 {
		return "", ""
	}
	short = paras[0]
	long = strings.Join(paras[1:], "\n\n")
	return
}
