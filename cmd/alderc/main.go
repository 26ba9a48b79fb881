// Command alderc is the driver for the alder transpiler: it reads a
// source file, runs it through the lexer, the sample parser and the
// statement-tree renderer, and prints (or, with -o, builds) the
// resulting C. None of this driver is part of the normative core; it
// exists to exercise the lexer and renderer end to end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	alder "go.alderlang.dev/pkg"
)

var (
	redColor   = color.New(color.FgRed)
	cyanColor  = color.New(color.FgCyan)
	greenColor = color.New(color.FgGreen)
)

func main() {
	var (
		out    = flag.String("o", "", "build a native binary at this path instead of printing C")
		cc     = flag.String("cc", "cc", "system C compiler to invoke when -o is set")
		repl   = flag.Bool("repl", false, "start the interactive token inspector instead of transpiling a file")
		target = flag.String("target", string(alder.X86_64), "target architecture passed to the C compiler via --target=")
	)
	flag.Parse()

	if *repl {
		runRepl()
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: alderc [-o out] [-cc compiler] <file>")
		os.Exit(2)
	}

	filename := flag.Arg(0)
	source, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	compiler := alder.NewCompiler(alder.Target{Arch: alder.Arch(*target), Vendor: alder.Unknown, OS: currentOS()}, *cc)

	if *out == "" {
		csrc, diags, err := compiler.Transpile(filename, string(source), []string{"<stdio.h>", "<stdint.h>", "<stdbool.h>"})
		if err != nil {
			redColor.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if len(diags) != 0 {
			printDiagnostics(diags)
			os.Exit(1)
		}

		fmt.Println(csrc)
		return
	}

	diags, err := compiler.Build(filename, string(source), *out)
	if err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if len(diags) != 0 {
		printDiagnostics(diags)
		os.Exit(1)
	}

	greenColor.Fprintln(os.Stdout, "ok: "+*out)
}

func printDiagnostics(diags []alder.Diagnostic) {
	for _, d := range diags {
		cyanColor.Fprintln(os.Stderr, d.String())
	}
}

func currentOS() alder.OS {
	switch os.Getenv("GOOS") {
	case "windows":
		return alder.Windows
	case "darwin":
		return alder.Darwin
	default:
		return alder.Linux
	}
}
