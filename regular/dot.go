package regular

import (
	"fmt"
	"io"
)

// ExportDOT writes a Graphviz representation of an *NFA or *DFA to w.
func ExportDOT(w io.Writer, g interface{}) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch t := g.(type) {

	case *DFA:
		for q := 0; q < t.states; q++ {
			shape := "circle"
			if t.accept.Test(uint(q)) {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    q%d [shape=%s];\n", q, shape)
			for _, sym := range t.alphabet {
				fmt.Fprintf(w, "    q%d -> q%d [label=%q];\n", q, t.trans[q][sym], string(sym))
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", t.start)

	case *NFA:
		for q := 0; q < t.states; q++ {
			shape := "circle"
			if t.accept.Test(uint(q)) {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    n%d [shape=%s];\n", q, shape)
		}
		for k, dests := range t.trans {
			label := string(k.sym)
			if k.sym == Epsilon {
				label = "ε"
			}
			for _, to := range dests {
				fmt.Fprintf(w, "    n%d -> n%d [label=%q];\n", k.from, to, label)
			}
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", t.start)

	default:
		fmt.Fprintln(w, "    /* unknown graph type */")
	}

	fmt.Fprintln(w, "}")
}
