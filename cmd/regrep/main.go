package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	u "github.com/araddon/gou"

	"relang/internal/setexpr"
	"relang/regular"
)

var (
	exprMode = flag.Bool("expr", false, "treat the pattern as a set-algebra expression")
	invert   = flag.Bool("invert", false, "print lines NOT in the language")
	logLevel = flag.String("loglevel", "warn", "log level [debug|info|warn|error]")
)

func main() {
	flag.Parse()
	u.SetupLogging(*logLevel)
	u.SetColorIfTerminal()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-expr] [-invert] <pattern>\n", os.Args[0])
		os.Exit(2)
	}
	pattern := flag.Arg(0)

	var lang *regular.Regular
	if *exprMode {
		res, err := setexpr.Eval(pattern)
		if err != nil {
			u.Errorf("could not evaluate %q: %v", pattern, err)
			os.Exit(1)
		}
		if res.Bool != nil {
			// relation query: print the verdict, no input to filter
			fmt.Println(*res.Bool)
			return
		}
		lang = res.Lang
	} else {
		var err error
		lang, err = regular.FromRegex(pattern)
		if err != nil {
			u.Errorf("could not compile %q: %v", pattern, err)
			os.Exit(1)
		}
	}
	u.Debugf("compiled %q: %d DFA states over %d symbols",
		pattern, lang.DFA().NumStates(), len(lang.DFA().Alphabet()))

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if lang.Contains(line) != *invert {
			fmt.Println(line)
		}
	}
	if err := sc.Err(); err != nil {
		u.Errorf("read stdin: %v", err)
		os.Exit(1)
	}
}
