package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	alder "go.alderlang.dev/pkg"
)

// Color definitions for the REPL's token dump: one color per concern,
// never reused for something unrelated.
var (
	blueColor    = color.New(color.FgBlue)
	yellowColor  = color.New(color.FgYellow)
	magentaColor = color.New(color.FgMagenta)
)

const replBanner = "alder token inspector -- type a line, see its tokens. Type '.exit' to quit."

// runRepl is a debugging aid for the lexer: it lexes whatever line the
// user types and prints the resulting tokens one per line, the kind in
// one color and the lexeme in another. It does not parse or render; it
// exists purely to make the
// lexer's behavior visible interactively.
func runRepl() {
	blueColor.Println(replBanner)

	rl, err := readline.New("alder> ")
	if err != nil {
		redColor.Println(err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			blueColor.Println("bye")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == ".exit" {
			blueColor.Println("bye")
			return
		}

		rl.SaveHistory(line)
		printTokens(line)
	}
}

func printTokens(line string) {
	sink := alder.NewSupervisor()
	tokens := alder.Lex(line, sink)

	for _, tok := range tokens {
		yellowColor.Printf("%-14s", tok.Kind)
		magentaColor.Printf(" %q\n", tok.Lexeme)
	}

	for _, d := range sink.Errors() {
		redColor.Println(d.String())
	}
}
