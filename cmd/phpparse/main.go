// Command phpparse lexes, parses, and type-checks PHP source files and
// reports diagnostics, following the same unified-pipeline shape the
// library's own Processor chain is built around.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/gophp-lang/corephp/internal/analyzer"
	"github.com/gophp-lang/corephp/internal/ast"
	"github.com/gophp-lang/corephp/internal/astdump"
	"github.com/gophp-lang/corephp/internal/config"
	"github.com/gophp-lang/corephp/internal/diagnostics"
	"github.com/gophp-lang/corephp/internal/lexer"
	"github.com/gophp-lang/corephp/internal/parser"
	"github.com/gophp-lang/corephp/internal/pipeline"
	"github.com/gophp-lang/corephp/internal/prettyprinter"
	"github.com/gophp-lang/corephp/internal/symbols"
)

func main() {
	args := os.Args[1:]

	jsonOutput := false
	printOutput := false
	noColor := false
	batch := false
	var paths []string

	for _, arg := range args {
		switch arg {
		case "--json":
			jsonOutput = true
		case "--print":
			printOutput = true
		case "--no-color":
			noColor = true
		case "--batch":
			batch = true
		case "-h", "--help", "help":
			printUsage()
			return
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown flag: %s\n", arg)
				os.Exit(1)
			}
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		printUsage()
		os.Exit(1)
	}

	useColor := !noColor && isatty.IsTerminal(os.Stdout.Fd())

	var files []string
	if batch {
		for _, root := range paths {
			found, err := collectSourceFiles(root)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s\n", err)
				os.Exit(1)
			}
			files = append(files, found...)
		}
	} else {
		files = paths
	}

	cwd, _ := os.Getwd()
	if _, err := config.Load(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
	}

	exitCode := 0
	for _, path := range files {
		if runFile(path, jsonOutput, printOutput, useColor) {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println("Usage: phpparse [--json] [--print] [--no-color] [--batch] <file|dir>...")
	fmt.Println()
	fmt.Println("  --json      also dump the parsed AST as JSON after printing diagnostics")
	fmt.Println("  --print     render the parsed AST back to source via the pretty printer")
	fmt.Println("  --batch     treat each path as a directory to walk for source files")
	fmt.Println("  --no-color  disable ANSI diagnostic coloring even on a terminal")
}

// collectSourceFiles walks root and returns every file with a recognized
// source extension.
func collectSourceFiles(root string) ([]string, error) {
	var out []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && config.HasSourceExt(path) {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}

// runFile runs the lexer -> parser -> type engine pipeline over one file
// and reports diagnostics. Returns true if the file had any error-severity
// diagnostic.
func runFile(path string, jsonOutput, printOutput, useColor bool) bool {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %s\n", path, err)
		return true
	}

	ctx := pipeline.NewContext(path, string(source))
	index := symbols.New()
	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		analyzer.Processor{Index: index},
	)
	ctx = p.Run(ctx)

	hasErrors := reportDiagnostics(path, ctx.Errors, useColor)

	prog, _ := ctx.AstRoot.(*ast.Program)
	switch {
	case jsonOutput && prog != nil:
		printJSON(prog)
	case printOutput && prog != nil:
		fmt.Print(prettyprinter.Print(prog))
	}

	return hasErrors
}

func reportDiagnostics(path string, diags []*diagnostics.Diagnostic, useColor bool) bool {
	hasErrors := false
	for _, d := range diags {
		if d.Severity == diagnostics.Error {
			hasErrors = true
		}
		line := fmt.Sprintf("%s: %s [%s] at byte %d: %s", path, d.Severity, d.Code, d.Span.Start, d.Message)
		if useColor {
			line = colorize(d.Severity, line)
		}
		fmt.Fprintln(os.Stderr, line)
	}
	return hasErrors
}

func colorize(sev diagnostics.Severity, line string) string {
	const (
		red    = "\x1b[31m"
		yellow = "\x1b[33m"
		cyan   = "\x1b[36m"
		reset  = "\x1b[0m"
	)
	switch sev {
	case diagnostics.Error:
		return red + line + reset
	case diagnostics.Warning:
		return yellow + line + reset
	default:
		return cyan + line + reset
	}
}

func printJSON(prog *ast.Program) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(astdump.Dump(prog))
}
