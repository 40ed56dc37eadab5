// Goscheme is a small Lisp-family expression interpreter: tokenizer, parser,
// and tree-walking evaluator over a fixed catalog of built-in operators.
//
// There are no variables, no `define`, no `lambda`, and no user-defined
// procedures — every expression is a self-contained tree of literals, quoted
// data, and calls to the built-in catalog in package scheme. Each line of
// input is one complete expression; evaluating it prints its result and
// moves on, so the language is closer to a calculator than a programming
// language proper.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/burguty/goscheme/scheme"
)

var (
	doPrompt = flag.Bool("doprompt", true, "show interactive prompt")
	prompt   = flag.String("prompt", "> ", "interactive prompt")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		runLines(os.Stdin, *prompt)
		return
	}
	for _, file := range args {
		load(file)
	}
}

// load reads the named source file and evaluates it one line at a time.
func load(file string) {
	fd, err := os.Open(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer fd.Close()
	runLines(fd, "")
}

// runLines reads r one line at a time, treating each non-empty line as one
// expression: it is parsed, evaluated, and printed, with any SyntaxError or
// RuntimeError reported on stderr rather than stopping the session.
func runLines(r io.Reader, prompt string) {
	scanner := bufio.NewScanner(r)
	for {
		if prompt != "" && *doPrompt {
			fmt.Print(prompt)
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		result, err := scheme.Run(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(result)
	}
}
