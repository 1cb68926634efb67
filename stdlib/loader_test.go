package stdlib

import (
	"context"
	"errors"
	"testing"

	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/workspace"
)

func fixtureSyntax(name string) astx.SyntaxFile {
	return astx.SyntaxFile{
		Dialect:  astx.SysML,
		Elements: []astx.Element{{Kind: "PartDefinition", Name: name}},
	}
}

func TestLoader_EnsureLoaded_populatesAllPaths(t *testing.T) {
	ws := workspace.New()
	parse := func(path string) (astx.SyntaxFile, error) {
		switch path {
		case "Base.sysml":
			return fixtureSyntax("Base"), nil
		case "Ports.sysml":
			return fixtureSyntax("Ports"), nil
		}
		return astx.SyntaxFile{}, errors.New("unknown path")
	}

	ldr := New(ws, []string{"Base.sysml", "Ports.sysml"}, parse, Manifest{}, nil)
	if err := ldr.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	if !ws.HasStdlib() {
		t.Fatal("HasStdlib() = false after EnsureLoaded")
	}
	if _, ok := ws.Symbols().LookupQualified("Base"); !ok {
		t.Error("Base not found in symbol table")
	}
	if _, ok := ws.Symbols().LookupQualified("Ports"); !ok {
		t.Error("Ports not found in symbol table")
	}
}

func TestLoader_EnsureLoaded_idempotent(t *testing.T) {
	ws := workspace.New()
	calls := 0
	parse := func(path string) (astx.SyntaxFile, error) {
		calls++
		return fixtureSyntax("Base"), nil
	}

	ldr := New(ws, []string{"Base.sysml"}, parse, Manifest{}, nil)
	if err := ldr.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("first EnsureLoaded: %v", err)
	}
	if err := ldr.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("second EnsureLoaded: %v", err)
	}
	if calls != 1 {
		t.Errorf("parse called %d times, want 1 (idempotent)", calls)
	}
}

func TestLoader_skipsFailedParse_nonStrict(t *testing.T) {
	ws := workspace.New()
	parse := func(path string) (astx.SyntaxFile, error) {
		if path == "Broken.sysml" {
			return astx.SyntaxFile{}, errors.New("syntax error")
		}
		return fixtureSyntax("Base"), nil
	}

	ldr := New(ws, []string{"Base.sysml", "Broken.sysml"}, parse, Manifest{Strict: false}, nil)
	if err := ldr.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("EnsureLoaded: %v", err)
	}
	if !ws.HasStdlib() {
		t.Error("HasStdlib() = false; mark_stdlib_loaded must still be set after a skipped failure")
	}
	if _, ok := ws.Symbols().LookupQualified("Base"); !ok {
		t.Error("Base not found; a sibling failure must not prevent it from loading")
	}
}

func TestLoader_abortsOnFailedParse_strict(t *testing.T) {
	ws := workspace.New()
	parse := func(path string) (astx.SyntaxFile, error) {
		if path == "Broken.sysml" {
			return astx.SyntaxFile{}, errors.New("syntax error")
		}
		return fixtureSyntax("Base"), nil
	}

	ldr := New(ws, []string{"Base.sysml", "Broken.sysml"}, parse, Manifest{Strict: true}, nil)
	if err := ldr.EnsureLoaded(context.Background()); err == nil {
		t.Fatal("EnsureLoaded: want error in strict mode")
	}
}
