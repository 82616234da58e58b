package regular

import (
	"strings"
	"unicode/utf8"
)

// ToRegexp converts the DFA into an equivalent pattern by state elimination
// over a generalized NFA with virtual initial and final nodes. The output
// is display-oriented: the empty language renders as "∅" and the language
// containing only the empty string as "ε", neither of which parses back.
// Every other result round-trips through FromRegex.
func (d *DFA) ToRegexp() string {
	n := d.states
	vStart, vFinal := n, n+1

	type edge [2]int
	R := map[edge]string{}
	addAlt := func(i, j int, expr string) {
		if old, ok := R[edge{i, j}]; ok {
			R[edge{i, j}] = altRE(old, expr)
		} else {
			R[edge{i, j}] = expr
		}
	}

	// direct edges plus epsilon edges from/to the virtual nodes
	for q, m := range d.trans {
		for sym, to := range m {
			addAlt(q, int(to), escapeSym(sym))
		}
	}
	addAlt(vStart, int(d.start), "")
	for q := 0; q < n; q++ {
		if d.accept.Test(uint(q)) {
			addAlt(q, vFinal, "")
		}
	}

	// eliminate the real states one by one, rerouting every path through k
	for k := 0; k < n; k++ {
		loop, hasLoop := R[edge{k, k}]
		var ins, outs []int
		for e := range R {
			if e[1] == k && e[0] != k {
				ins = append(ins, e[0])
			}
			if e[0] == k && e[1] != k {
				outs = append(outs, e[1])
			}
		}
		for _, i := range ins {
			for _, j := range outs {
				middle := ""
				if hasLoop {
					middle = starRE(loop)
				}
				addAlt(i, j, concatRE(groupAlt(R[edge{i, k}]), middle, groupAlt(R[edge{k, j}])))
			}
		}
		for e := range R {
			if e[0] == k || e[1] == k {
				delete(R, e)
			}
		}
	}

	result, ok := R[edge{vStart, vFinal}]
	if !ok {
		return "∅"
	}
	if result == "" {
		return "ε"
	}
	return result
}

func escapeSym(r rune) string {
	switch r {
	case '.', '*', '+', '?', '|', '(', ')', '[', ']', '\\':
		return "\\" + string(r)
	default:
		return string(r)
	}
}

// altRE builds the alternation of two sub-patterns; an empty string stands
// for epsilon and turns the other side into a zero-or-one.
func altRE(a, b string) string {
	if a == b {
		return a
	}
	if a == "" {
		return qmarkRE(b)
	}
	if b == "" {
		return qmarkRE(a)
	}
	return a + "|" + b
}

func qmarkRE(s string) string {
	if s == "" {
		return ""
	}
	if utf8.RuneCountInString(s) == 1 {
		return s + "?"
	}
	return "(" + s + ")?"
}

func starRE(s string) string {
	if s == "" {
		return ""
	}
	if utf8.RuneCountInString(s) == 1 {
		return s + "*"
	}
	return "(" + s + ")*"
}

func concatRE(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}

// groupAlt parenthesizes a sub-pattern containing a top-level alternation
// so it can be concatenated safely.
func groupAlt(s string) string {
	if strings.ContainsRune(s, '|') {
		return "(" + s + ")"
	}
	return s
}
