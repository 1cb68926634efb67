package lsp

import "testing"

func TestURIToPathRoundTrip(t *testing.T) {
	path := "/home/user/project/model.sysml"
	uri := PathToURI(path)
	if uri != "file:///home/user/project/model.sysml" {
		t.Fatalf("PathToURI(%q) = %q", path, uri)
	}
	got, err := URIToPath(uri)
	if err != nil {
		t.Fatalf("URIToPath: %v", err)
	}
	if got != path {
		t.Fatalf("URIToPath(%q) = %q, want %q", uri, got, path)
	}
}

func TestURIToPathRejectsNonFileScheme(t *testing.T) {
	if _, err := URIToPath("https://example.com/model.sysml"); err == nil {
		t.Fatal("expected error for non-file URI")
	}
}

func TestIsSupportedURI(t *testing.T) {
	cases := map[string]bool{
		"file:///a/b.sysml": true,
		"file:///a/b.kerml": true,
		"file:///a/b.txt":   false,
		"file:///a/b":       false,
	}
	for uri, want := range cases {
		if got := isSupportedURI(uri); got != want {
			t.Errorf("isSupportedURI(%q) = %v, want %v", uri, got, want)
		}
	}
}
