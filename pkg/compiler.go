package alder

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"golang.org/x/sync/errgroup"
)

// Arch, Vendor and OS name a build target the same way an LLVM target
// triple would; the resulting triple is handed to the system C compiler
// through its `--target=...` flag.
type Arch string
type Vendor string
type OS string

const (
	X86_64  Arch = "x86_64"
	ARM64   Arch = "arm64"
	Unknown Vendor = "unknown"
	Windows OS     = "windows"
	Linux   OS     = "linux"
	Darwin  OS     = "darwin"
)

// Target identifies the platform a Compiler builds native binaries for.
type Target struct {
	Arch   Arch
	Vendor Vendor
	OS     OS
}

func (t Target) String() string {
	return fmt.Sprintf("%s-%s-%s", t.Arch, t.Vendor, t.OS)
}

// Compiler drives the full pipeline from source text to a native binary:
// lex, parse (the toy parser in parser.go), render to C, then optionally
// hand the rendered C to a system C compiler. Lexing and rendering are
// this package's normative core; parsing and the native build step are
// not.
type Compiler struct {
	target Target
	cc     string
}

// NewCompiler creates a Compiler targeting target, invoking the named
// system C compiler (e.g. "cc", "gcc", "clang") to turn rendered C into a
// native binary.
func NewCompiler(target Target, cc string) *Compiler {
	if cc == "" {
		cc = "cc"
	}

	return &Compiler{target: target, cc: cc}
}

// Transpile lexes and parses source, returning the rendered C text. If
// any diagnostics were reported during lexing or parsing, rendering is
// skipped and the diagnostics are returned instead.
func (c *Compiler) Transpile(name, source string, includes []string) (string, []Diagnostic, error) {
	sink := NewSupervisor()

	tokens := Lex(source, sink)
	if sink.HasErrors() {
		return "", sink.Errors(), nil
	}

	module := NewParser(tokens, sink).ParseModule(name, includes)
	if sink.HasErrors() {
		return "", sink.Errors(), nil
	}

	return module.Render(), nil, nil
}

// Build transpiles source and pipes the rendered C into a system C
// compiler, producing a native binary at outPath. It pipes the payload
// into the compiler's stdin while draining its combined output
// concurrently with an errgroup.Group, the same way an LLVM-targeting
// pipeline would pipe IR text into clang; here the payload is C source
// text and the downstream tool is a generic C compiler rather than clang
// specifically.
func (c *Compiler) Build(name, source, outPath string) ([]Diagnostic, error) {
	csrc, diags, err := c.Transpile(name, source, []string{"<stdio.h>", "<stdint.h>", "<stdbool.h>"})
	if err != nil || len(diags) != 0 {
		return diags, err
	}

	csrc = RuntimePrelude() + "\n" + csrc

	return nil, c.compile(csrc, outPath)
}

func (c *Compiler) compile(csrc, outPath string) error {
	args := []string{"-x", "c", "-o", outPath, "-"}
	if c.target.Arch != "" {
		args = append(args, "--target="+c.target.String())
	}

	cmd := exec.Command(c.cc, args...)

	r, w := io.Pipe()
	cmd.Stdin = r

	errs := errgroup.Group{}
	errs.Go(func() error {
		if _, err := w.Write([]byte(csrc)); err != nil {
			return err
		}

		return w.Close()
	})

	errs.Go(func() error {
		if out, err := cmd.CombinedOutput(); err != nil {
			return errors.New(fmt.Sprintf("%v: %s", err, out))
		}

		return nil
	})

	return errs.Wait()
}
