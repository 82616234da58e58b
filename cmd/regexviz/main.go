package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	u "github.com/araddon/gou"

	"relang/regular"
)

var (
	pattern  = flag.String("re", "", "pattern (required)")
	dfaFlag  = flag.Bool("dfa", true, "export the subset-construction DFA")
	nfaFlag  = flag.Bool("nfa", false, "export the Thompson NFA instead of the DFA")
	toRegex  = flag.Bool("toregex", false, "print the state-elimination regex instead of DOT")
	outFile  = flag.String("o", "graph.dot", "output file")
	pngFlag  = flag.Bool("png", false, "render PNG via dot -Tpng")
	logLevel = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
)

func main() {
	flag.Parse()
	u.SetupLogging(*logLevel)

	if *pattern == "" {
		fmt.Fprintf(os.Stderr, "usage: %s -re <pattern> [-dfa|-nfa] [-toregex] [-o file] [-png]\n", os.Args[0])
		os.Exit(2)
	}

	nfa, err := regular.CompileNFA(*pattern)
	if err != nil {
		u.Errorf("could not compile %q: %v", *pattern, err)
		os.Exit(1)
	}

	if *toRegex {
		fmt.Println(regular.FromNFA(nfa).ToRegexp())
		return
	}

	var buf bytes.Buffer
	switch {
	case *nfaFlag:
		regular.ExportDOT(&buf, nfa)
	case *dfaFlag:
		regular.ExportDOT(&buf, regular.FromNFA(nfa))
	default:
		fmt.Fprintln(os.Stderr, "nothing to export: pass -dfa or -nfa")
		os.Exit(2)
	}

	f, err := os.Create(*outFile)
	if err != nil {
		u.Errorf("create %s: %v", *outFile, err)
		os.Exit(1)
	}
	if _, err := io.Copy(f, bytes.NewReader(buf.Bytes())); err != nil {
		u.Errorf("write %s: %v", *outFile, err)
		os.Exit(1)
	}
	f.Close()
	u.Infof("wrote %s", *outFile)

	if *pngFlag {
		png := *outFile + ".png"
		if out, err := exec.Command("dot", "-Tpng", *outFile, "-o", png).CombinedOutput(); err != nil {
			u.Errorf("dot: %v: %s", err, out)
			os.Exit(1)
		}
		u.Infof("wrote %s", png)
	}
}
