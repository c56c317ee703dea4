package sample

import (
	"context"
	"fmt"
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jptrs93/protoclass/internal/generate"
	"github.com/jptrs93/protoclass/internal/generate/classgen"
	"github.com/jptrs93/protoclass/internal/parser"
)

// goTokens lists the tokens of src, comments included. Layout is ignored.
func goTokens(t *testing.T, src []byte) []string {
	t.Helper()
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		t.Errorf("%s: %s", pos, msg)
	}, scanner.ScanComments)
	var toks []string
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			return toks
		}
		if tok == token.SEMICOLON {
			lit = ";"
		}
		toks = append(toks, fmt.Sprintf("%d: %s %s", fset.Position(pos).Line, tok, lit))
	}
}

func TestCheckedInCodeIsCurrent(t *testing.T) {
	p := parser.Parser{ImportPaths: []string{"testdata"}}
	files, err := p.Parse(context.Background(), []string{"sample.proto"})
	require.NoError(t, err)
	outputs, err := classgen.Generator{}.Generate(files, generate.Options{OutDir: ".", Targets: []string{"sample.proto"}})
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	for _, out := range outputs {
		checkedIn, err := os.ReadFile(filepath.Base(out.Path))
		require.NoError(t, err)
		want, got := goTokens(t, out.Content), goTokens(t, checkedIn)
		for i := range min(len(want), len(got)) {
			if stripLine(want[i]) != stripLine(got[i]) {
				t.Fatalf("%s is stale: generated %q, checked in %q; run go generate", out.Path, want[i], got[i])
			}
		}
		assert.Equal(t, len(want), len(got), "%s is stale; run go generate", out.Path)
	}
}

// stripLine drops the line prefix goTokens adds for error messages.
func stripLine(tok string) string {
	for i := range len(tok) {
		if tok[i] == ' ' {
			return tok[i+1:]
		}
	}
	return tok
}
