// Command golox is Lox's command-line driver: a REPL when run
// with no arguments, a script runner when given a single file argument.
// Apart from the cmd/loxtest harness, it owns the only os.Exit calls and
// the only colorized output in the module — internal/lexer,
// internal/parser, and internal/interpreter
// all just return errors. Exit codes follow the sysexits convention:
// 64 for bad usage, 65 for a scan/parse error, 66 for an unreadable
// script, 70 for a runtime error.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/MoMus2000/muslox/internal/interpreter"
	"github.com/MoMus2000/muslox/internal/lexer"
	"github.com/MoMus2000/muslox/internal/parser"
)

func main() {
	switch len(os.Args) {
	case 1:
		runREPL()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(64)
	}
}

// runFile executes one script to completion, exiting 65 on a scan/parse
// error and 70 on a runtime error.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(66)
	}

	in := interpreter.New()
	if code := interpret(in, string(src)); code != 0 {
		os.Exit(code)
	}
}

// runREPL reads one line at a time, feeding each to a single persistent
// Interpreter so variable bindings accumulate across lines. A line that
// fails to scan or parse, or that raises a runtime error, is reported
// and the loop continues rather than exiting. An empty line — whether
// a blank Enter or EOF on stdin — exits with status 0.
func runREPL() {
	in := interpreter.New()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			return
		}
		interpret(in, line)
	}
}

// interpret scans, parses, and runs src against in. Scan/parse errors
// print to stdout and abort before anything runs (the parser already
// synchronized past them, so by the time interpret sees parseErrs the
// only thing left to skip is running the partial statement list);
// runtime errors print to stderr and abort the run. It returns the
// process exit code a non-REPL caller should use for this source, 0 if
// everything succeeded.
func interpret(in *interpreter.Interpreter, src string) int {
	tokens, scanErrs := lexer.Scan(src)
	for _, e := range scanErrs {
		reportParseError(e)
	}

	stmts, parseErrs := parser.Parse(tokens)
	for _, e := range parseErrs {
		reportParseError(e)
	}
	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		return 65
	}

	if err := in.Run(stmts); err != nil {
		reportRuntimeError(err)
		return 70
	}
	return 0
}

func reportParseError(err error) {
	fmt.Fprintln(os.Stdout, color.YellowString("error:"), err)
}

func reportRuntimeError(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
}
