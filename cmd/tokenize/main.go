package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crhntr/atoms/expression"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	flags.SetOutput(stderr)
	strict := flags.Bool("strict", false, "fail on characters that are not digits, operators, parentheses or whitespace")
	asJSON := flags.Bool("json", false, "print the atoms as a JSON array")
	flags.Usage = func() {
		_, _ = fmt.Fprintln(stderr, `usage: tokenize [-strict] [-json] [expression ...]`)
		_, _ = fmt.Fprintln(stderr, `       echo "1+(2*3)" | tokenize`)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}

	var src string
	if flags.NArg() > 0 {
		src = strings.Join(flags.Args(), " ")
	} else {
		buf, err := io.ReadAll(stdin)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "read error:", err)
			return 2
		}
		src = strings.TrimSpace(string(buf))
	}

	tokens := expression.Tokens
	if *strict {
		tokens = expression.StrictTokens
	}
	atoms, err := tokens(src)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "tokenize error:", err)
		return 1
	}

	if *asJSON {
		if atoms == nil {
			atoms = []expression.Atom{}
		}
		buf, err := json.Marshal(atoms)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, "encode error:", err)
			return 2
		}
		_, _ = fmt.Fprintln(stdout, string(buf))
		return 0
	}
	_, _ = fmt.Fprintln(stdout, expression.Sprint(atoms))
	return 0
}
