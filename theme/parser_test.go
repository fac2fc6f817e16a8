package theme_test

import (
	"testing"

	"github.com/ByLCY/chronotype/theme"
)

const sampleTheme = `
// 画布与边距
theme {
  canvas: 640 400
  background: #FFFFFF
  margin-top: 50

  quote {
    font: "Lora"
    size: 38
    line-spacing: 8.5
    max-width: 600
    color: #000
  }

  highlight {
    font: "Lora"
    weight: "extra-bold"
    color: #FF0000
  }
}
`

func TestParseDocument(t *testing.T) {
	doc, err := theme.ParseString(sampleTheme)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(doc.Statements) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(doc.Statements))
	}

	canvas := doc.Statements[0].Assignment
	if canvas == nil || canvas.Key != "canvas" {
		t.Fatalf("expected canvas assignment, got %+v", doc.Statements[0])
	}
	if len(canvas.Values) != 2 {
		t.Fatalf("expected 2 canvas values, got %d", len(canvas.Values))
	}
	if canvas.Values[0].Number == nil || *canvas.Values[0].Number != 640 {
		t.Fatalf("unexpected canvas width: %+v", canvas.Values[0])
	}
	if canvas.Values[1].Number == nil || *canvas.Values[1].Number != 400 {
		t.Fatalf("unexpected canvas height: %+v", canvas.Values[1])
	}

	bg := doc.Statements[1].Assignment
	if bg == nil || bg.Key != "background" {
		t.Fatalf("expected background assignment, got %+v", doc.Statements[1])
	}
	if bg.Values[0].Color == nil || *bg.Values[0].Color != "#FFFFFF" {
		t.Fatalf("expected color value, got %+v", bg.Values[0])
	}

	quote := doc.Statements[3].Style
	if quote == nil || quote.Name != "quote" {
		t.Fatalf("expected quote style block, got %+v", doc.Statements[3])
	}
	if len(quote.Assignments) != 5 {
		t.Fatalf("expected 5 quote assignments, got %d", len(quote.Assignments))
	}
	font := quote.Assignments[0]
	if font.Key != "font" || font.Values[0].String == nil {
		t.Fatalf("expected font string assignment, got %+v", font)
	}
	if got := string(*font.Values[0].String); got != "Lora" {
		t.Fatalf("expected font Lora, got %s", got)
	}
	spacing := quote.Assignments[2]
	if spacing.Key != "line-spacing" || spacing.Values[0].Number == nil || *spacing.Values[0].Number != 8.5 {
		t.Fatalf("unexpected line-spacing: %+v", spacing)
	}
	if quote.Assignments[4].Values[0].Color == nil || *quote.Assignments[4].Values[0].Color != "#000" {
		t.Fatalf("expected short color form, got %+v", quote.Assignments[4])
	}

	highlight := doc.Statements[4].Style
	if highlight == nil || highlight.Name != "highlight" {
		t.Fatalf("expected highlight style block, got %+v", doc.Statements[4])
	}
	weight := highlight.Assignments[1]
	if weight.Key != "weight" || string(*weight.Values[0].String) != "extra-bold" {
		t.Fatalf("unexpected weight: %+v", weight)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"theme {",
		"theme { canvas 640 }",
		"nope { }",
	} {
		if _, err := theme.ParseString(input); err == nil {
			t.Fatalf("expected parse error for %q", input)
		}
	}
}

func TestParseSample(t *testing.T) {
	doc, err := theme.ParseString(theme.Sample)
	if err != nil {
		t.Fatalf("built-in sample must parse: %v", err)
	}
	if len(doc.Statements) == 0 {
		t.Fatal("built-in sample yielded no statements")
	}
}
