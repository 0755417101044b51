package source

import (
	"testing"

	"github.com/textsieve/textsieve/internal/model"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"markup removed", "<p>Great <b>product</b></p>", "Great product"},
		{"script skipped", "<p>visible</p><script>alert(1)</script>", "visible"},
		{"style skipped", "<style>p{color:red}</style><span>text</span>", "text"},
		{"plain text unchanged", "no markup at all", "no markup at all"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripHTMLAllMarkupFallsBack(t *testing.T) {
	// Nothing visible survives: return the input rather than an empty text
	in := "<script>only code</script>"
	if got := StripHTML(in); got != in {
		t.Errorf("expected original text back, got %q", got)
	}
}

func TestStripItemText(t *testing.T) {
	items := []model.InputItem{
		{"text": "<em>styled</em>"},
		{"other": "untouched"},
		{"text": 7},
	}
	StripItemText(items, "text")

	if items[0]["text"] != "styled" {
		t.Errorf("expected stripped text, got %v", items[0]["text"])
	}
	if items[1]["other"] != "untouched" {
		t.Error("items without the field should be left alone")
	}
	if items[2]["text"] != 7 {
		t.Error("non-string text should be left alone")
	}
}
