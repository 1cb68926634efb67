package query

import (
	"testing"

	"github.com/sysml-tools/semcore/location"
)

func TestDefinition_fromReference(t *testing.T) {
	table, _, _, file := buildFixture(t)

	span, ok := Definition(table, file, location.NewPosition(4, 20, 0))
	if !ok {
		t.Fatal("Definition: not found")
	}
	if span != location.Range(file, 0, 0, 2, 1) {
		t.Errorf("Definition span = %+v, want Engine's declaration span", span)
	}
}

func TestDefinition_fromOwnDeclaration(t *testing.T) {
	table, _, _, file := buildFixture(t)

	span, ok := Definition(table, file, location.NewPosition(1, 1, 0))
	if !ok {
		t.Fatal("Definition: not found")
	}
	if span != location.Range(file, 0, 0, 2, 1) {
		t.Errorf("Definition span = %+v, want Engine's declaration span", span)
	}
}
