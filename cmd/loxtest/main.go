// Command loxtest is the module's golden-file test harness: it runs
// every testdata/*.lox script in-process against internal/interpreter
// and compares the captured stdout/stderr/exit-code triple against a
// matching testdata/*.golden file, printing a colorized pass/fail
// summary with a side-by-side diff on failure. Run with -update to
// regenerate the golden files from actual output.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/MoMus2000/muslox/internal/interpreter"
	"github.com/MoMus2000/muslox/internal/lexer"
	"github.com/MoMus2000/muslox/internal/parser"
)

const width = 120

var (
	update = flag.Bool("update", false, "write actual output over the golden file instead of comparing")
	dir    = flag.String("run", "testdata", "directory of .lox/.golden fixture pairs")
)

// golden is the recorded expectation for one fixture: exit code on the
// first line, then stdout, then stderr behind a marker line.
type golden struct {
	exitCode int
	stdout   string
	stderr   string
}

const stderrMarker = "--- stderr ---"

func main() {
	flag.Parse()

	cases, err := collect(*dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	failed := 0
	for _, name := range cases {
		if !run(*dir, name) {
			failed++
		}
	}

	fmt.Println(strings.Repeat("=", width))
	fmt.Printf("%d run, %d failed\n", len(cases), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// collect finds every *.lox fixture under dir, sorted for stable
// output. The scan is single-level; fixtures don't nest.
func collect(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lox") {
			names = append(names, strings.TrimSuffix(e.Name(), ".lox"))
		}
	}
	sort.Strings(names)
	return names, nil
}

func run(dir, name string) bool {
	src, err := os.ReadFile(filepath.Join(dir, name+".lox"))
	if err != nil {
		fmt.Println(reportIOError(name, err))
		return false
	}

	actual := execute(string(src))
	goldenPath := filepath.Join(dir, name+".golden")

	if *update {
		return writeGolden(goldenPath, actual, name)
	}

	want, err := readGolden(goldenPath)
	if err != nil {
		fmt.Println(reportIOError(name, err))
		return false
	}

	ok := want.exitCode == actual.exitCode && want.stdout == actual.stdout && want.stderr == actual.stderr
	printResult(name, ok, want, actual)
	return ok
}

// execute runs src to completion in-process, capturing output into
// buffers and returning 65/70/0 using the same exit-code convention as
// cmd/golox. Scan/parse errors are appended to stdout and only a
// runtime error (UndefinedVariable, TypeError, AssertionFailed) goes
// to stderr, matching cmd/golox's split between reportParseError and
// reportRuntimeError.
func execute(src string) golden {
	var stdout bytes.Buffer
	var stderrLines []string

	in := interpreter.New()
	in.Stdout = &stdout

	tokens, scanErrs := lexer.Scan(src)
	for _, e := range scanErrs {
		fmt.Fprintln(&stdout, e)
	}

	parsed, parseErrs := parser.Parse(tokens)
	for _, e := range parseErrs {
		fmt.Fprintln(&stdout, e)
	}

	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		return golden{exitCode: 65, stdout: stdout.String(), stderr: joinLines(stderrLines)}
	}

	if err := in.Run(parsed); err != nil {
		stderrLines = append(stderrLines, err.Error())
		return golden{exitCode: 70, stdout: stdout.String(), stderr: joinLines(stderrLines)}
	}

	return golden{exitCode: 0, stdout: stdout.String(), stderr: joinLines(stderrLines)}
}

// joinLines renders stderr lines the way fmt.Fprintln would have, one
// per line with a trailing newline, so a golden file's stderr section
// reads like an ordinary error log.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func readGolden(path string) (golden, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return golden{}, err
	}
	lines := strings.Split(string(raw), "\n")
	if len(lines) == 0 {
		return golden{}, fmt.Errorf("%s: empty golden file", path)
	}
	code, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return golden{}, fmt.Errorf("%s: bad exit code header: %w", path, err)
	}
	rest := strings.Join(lines[1:], "\n")
	stdout, stderr, ok := strings.Cut(rest, stderrMarker+"\n")
	if !ok {
		stdout, stderr = rest, ""
	}
	return golden{exitCode: code, stdout: stdout, stderr: stderr}, nil
}

// writeGolden renders a golden file as: the exit code line, the
// captured stdout, the stderr marker line, then the captured stderr.
// Both streams already end in "\n" when non-empty, so no extra
// separators are needed.
func writeGolden(path string, g golden, name string) bool {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", g.exitCode)
	b.WriteString(g.stdout)
	b.WriteString(stderrMarker + "\n")
	b.WriteString(g.stderr)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		fmt.Println(reportIOError(name, err))
		return false
	}
	fmt.Printf("  [%s] %s\n", color.YellowString("updated"), name)
	return true
}

func reportIOError(name string, err error) string {
	return fmt.Sprintf("  [%s] %s: %s", color.RedString("error"), name, err)
}

func printResult(name string, ok bool, want, actual golden) {
	result := color.GreenString("passed")
	if !ok {
		result = color.RedString("failed")
	}
	spacing := strings.Repeat(" ", max(1, width-len("  [passed] ")-len(name)))
	fmt.Printf("  [%s] %s%s\n", result, name, spacing)
	if ok {
		return
	}

	fmt.Println(strings.Repeat("-", width))
	if want.exitCode != actual.exitCode {
		fmt.Printf("Expected exit code %d, but got %d\n", want.exitCode, actual.exitCode)
	}
	if want.stdout != actual.stdout {
		fmt.Println("Expected stdout vs actual stdout:")
		printDiff(want.stdout, actual.stdout)
	}
	if want.stderr != actual.stderr {
		fmt.Println("Expected stderr vs actual stderr:")
		printDiff(want.stderr, actual.stderr)
	}
	fmt.Println(strings.Repeat("-", width))
}

// printDiff renders expected/actual side by side at half the
// configured width each.
func printDiff(expected, actual string) {
	expLines := strings.Split(expected, "\n")
	actLines := strings.Split(actual, "\n")
	for i := 0; i < len(expLines) || i < len(actLines); i++ {
		var e, a string
		if i < len(expLines) {
			e = expLines[i]
		}
		if i < len(actLines) {
			a = actLines[i]
		}
		spacing := strings.Repeat(" ", max(1, (width/2)-len(e)))
		fmt.Printf("%s%s%s\n", e, spacing, a)
	}
}
