// Package test provides fixture generators shared by the lexer's
// benchmarks. It deliberately only reaches for lexemes the lexer itself
// recognizes, so generated input never trips the unrecognized-character
// guard.
package test

import (
	"math/rand"
	"strings"
)

const validTokens = "fn;main;(;);{;};mut;i32;x;=;==;+;+=;-;->;--;<;<=;,;;"

// GetRandomTokens builds a source string out of size randomly chosen
// valid lexemes, separated by single spaces.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

// GetRandomTokensWithSep is GetRandomTokens with a caller-chosen
// separator between lexemes.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
