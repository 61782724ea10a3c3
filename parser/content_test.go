package parser

import (
	"testing"
)

const sampleContent = `+MATH02
1,C1,P=30,H=L 10:00-12:00,F1,S=B203
2,D1,P=15,H=MA 14:00-16:00,F1,S=B203
+GL02
1,C1,P=24,H=V 8:00-10:00,F1,S=S102//
Page générée en 0.1 seconde

some prose that is not a session
`

func TestParseContent(t *testing.T) {
	records, diags := ParseContent(sampleContent)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[0].Course != "MATH02" || records[1].Course != "MATH02" {
		t.Fatalf("expected first two records under MATH02, got %+v", records[:2])
	}
	if records[2].Course != "GL02" {
		t.Fatalf("expected record under GL02, got %+v", records[2])
	}
	if len(diags) != 1 || diags[0].Kind != IgnoredLine {
		t.Fatalf("expected one IgnoredLine diagnostic for the prose, got %+v", diags)
	}
}

func TestParseContentSessionBeforeCourse(t *testing.T) {
	// A session line before any "+" header has no course to attach to.
	records, diags := ParseContent("1,C1,P=30,H=L 10:00-12:00,F1,S=B203\n")
	if len(records) != 0 {
		t.Fatalf("expected no records, got %+v", records)
	}
	if len(diags) != 1 || diags[0].Kind != IgnoredLine {
		t.Fatalf("expected one IgnoredLine diagnostic, got %+v", diags)
	}
}

func TestParseContentCourseReset(t *testing.T) {
	text := "+A01\n1,C1,P=10,H=L 08:00-09:00,F1,S=B101\n+B02\n1,C1,P=10,H=L 09:00-10:00,F1,S=B101\n"
	records, _ := ParseContent(text)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Course != "A01" || records[1].Course != "B02" {
		t.Fatalf("course header must reset parsing context, got %+v", records)
	}
}
