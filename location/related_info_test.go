package location

import "testing"

func TestRelatedInfo_IsValid(t *testing.T) {
	src := NewSyntheticSourceID("test://unit/a.sysml")

	if (RelatedInfo{}).IsValid() {
		t.Error("empty RelatedInfo should not be valid")
	}
	if !(RelatedInfo{Message: MsgDeclaredHere}).IsValid() {
		t.Error("a message-only RelatedInfo should be valid")
	}
	if !(RelatedInfo{Span: Point(src, 0, 0)}).IsValid() {
		t.Error("a span-only RelatedInfo should be valid")
	}
}

func TestRelatedInfo_String(t *testing.T) {
	src := NewSyntheticSourceID("test://unit/a.sysml")
	span := Point(src, 0, 0)

	tests := []struct {
		name string
		info RelatedInfo
		want string
	}{
		{"message only", RelatedInfo{Message: MsgDeclaredHere}, MsgDeclaredHere},
		{"span only", RelatedInfo{Span: span}, span.String()},
		{"span and message", RelatedInfo{Span: span, Message: MsgPreviousDefinition}, span.String() + ": " + MsgPreviousDefinition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q; want %q", got, tt.want)
			}
		})
	}
}
