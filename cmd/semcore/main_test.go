package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sysml-tools/semcore/astx"
	"github.com/sysml-tools/semcore/location"
)

// fakeParse recognizes two fixture shapes used by these tests: a single
// classifier declaration, and an import statement followed by one.
func fakeParse(sourceID location.SourceID, content string, registry *location.Registry) astx.ParseResult {
	var elements []astx.Element
	offset := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSuffix(line, ";")
		switch {
		case strings.HasPrefix(trimmed, "import "):
			path := strings.TrimPrefix(trimmed, "import ")
			elements = append(elements, astx.Element{
				Kind:       "Import",
				ImportPath: path,
				Span:       location.RangeWithBytes(sourceID, 0, 0, offset, 0, len(line), offset+len(line)),
			})
		case strings.HasPrefix(trimmed, "classifier "):
			name := strings.TrimPrefix(trimmed, "classifier ")
			nameStart := offset + len("classifier ")
			elements = append(elements, astx.Element{
				Kind:     "Classifier",
				Name:     name,
				Span:     location.RangeWithBytes(sourceID, 0, 0, offset, 0, len(line), offset+len(line)),
				NameSpan: location.RangeWithBytes(sourceID, 0, len("classifier "), nameStart, 0, len("classifier ")+len(name), nameStart+len(name)),
			})
		}
		offset += len(line) + 1
	}
	if len(elements) == 0 {
		return astx.Failed(nil)
	}
	return astx.Success(astx.SyntaxFile{Dialect: astx.KerML, Elements: elements})
}

func TestRunAnalyzesFileAndExitsZeroOnSuccess(t *testing.T) {
	RegisterParseFunc(fakeParse)
	dir := t.TempDir()
	path := filepath.Join(dir, "dog.kerml")
	if err := os.WriteFile(path, []byte("classifier Dog;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := run([]string{path}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run exit code = %d, stderr = %s", code, stderr.String())
	}
}

func TestRunWalksDirectory(t *testing.T) {
	RegisterParseFunc(fakeParse)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "dog.kerml"), []byte("classifier Dog;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	files, err := discoverFiles([]string{dir})
	if err != nil {
		t.Fatalf("discoverFiles: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "dog.kerml" {
		t.Fatalf("files = %v, want just dog.kerml", files)
	}
}

func TestRunReturnsTwoWithNoArgs(t *testing.T) {
	RegisterParseFunc(fakeParse)
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("code = %d, want 2", code)
	}
}

func TestRunPrintsVersionAndExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("code = %d, stderr = %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "semcore") {
		t.Fatalf("stdout = %q", stdout.String())
	}
}
