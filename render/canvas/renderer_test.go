package canvasrenderer

import (
	"image/color"
	"testing"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/chronotype/fonts"
	"github.com/ByLCY/chronotype/layout"
)

func testSpecs() map[layout.StyleID]layout.FontSpec {
	return map[layout.StyleID]layout.FontSpec{
		layout.StyleNormal:      {Family: "Lora", Size: 38},
		layout.StyleHighlight:   {Family: "Lora", Size: 38, Weight: "extra-bold", Color: layout.Color{R: 255}},
		layout.StyleAttribution: {Family: "Open Sans", Size: 32, Weight: "italic", Color: layout.Color{G: 128}},
	}
}

// requireFonts 在系统缺少可用字体时跳过依赖真实字体的用例。
func requireFonts(t *testing.T) {
	t.Helper()
	if _, err := fonts.Resolve("Lora", ""); err != nil {
		t.Skipf("系统无可用字体: %v", err)
	}
}

func TestParseFontStyle(t *testing.T) {
	cases := []struct {
		weight string
		want   canvas.FontStyle
	}{
		{"", canvas.FontRegular},
		{"regular", canvas.FontRegular},
		{"bold", canvas.FontBold},
		{"extra-bold", canvas.FontExtraBold},
		{"extrabold", canvas.FontExtraBold},
		{"semibold", canvas.FontSemiBold},
		{"black", canvas.FontBlack},
		{"italic", canvas.FontRegular | canvas.FontItalic},
		{"bold italic", canvas.FontBold | canvas.FontItalic},
	}
	for _, tc := range cases {
		if got := parseFontStyle(tc.weight); got != tc.want {
			t.Fatalf("parseFontStyle(%q) = %v, want %v", tc.weight, got, tc.want)
		}
	}
}

func TestMeasureEmpty(t *testing.T) {
	r := NewRenderer(testSpecs())
	if got := r.Measure("", layout.StyleNormal); got != 0 {
		t.Fatalf("空文本宽度应为 0，实际 %g", got)
	}
}

func TestMeasureFallbackEstimate(t *testing.T) {
	r := NewRenderer(testSpecs())
	// 标记字体加载失败，强制走估算分支
	r.failed["Lora|"] = true
	got := r.Measure("hello", layout.StyleNormal)
	want := estimateTextWidth("hello", 38)
	if got != want {
		t.Fatalf("估算宽度错误: got=%g want=%g", got, want)
	}
	if got <= 0 {
		t.Fatal("估算宽度应为正")
	}
}

func TestMeasureMonotonic(t *testing.T) {
	requireFonts(t)
	r := NewRenderer(testSpecs())
	short := r.Measure("abc", layout.StyleNormal)
	long := r.Measure("abcdefgh", layout.StyleNormal)
	if short <= 0 || long <= short {
		t.Fatalf("更长的文本应更宽: short=%g long=%g", short, long)
	}
	// 相同输入重复测量结果一致
	if again := r.Measure("abc", layout.StyleNormal); again != short {
		t.Fatalf("重复测量结果不一致: %g != %g", again, short)
	}
}

func TestRenderNil(t *testing.T) {
	r := NewRenderer(testSpecs())
	if _, err := r.Render(nil); err == nil {
		t.Fatal("空结果应报错")
	}
}

func TestRenderCanvasSize(t *testing.T) {
	requireFonts(t)
	r := NewRenderer(testSpecs())
	cfg := layout.Config{
		CanvasWidth:            640,
		CanvasHeight:           400,
		Background:             layout.Color{R: 255, G: 255, B: 255},
		MarginLeft:             50,
		MarginTop:              50,
		BottomMargin:           50,
		MaxLineWidth:           540,
		QuoteLineSpacing:       8,
		AttributionLineSpacing: 5,
		Fonts:                  testSpecs(),
	}
	q := layout.Quote{
		Part1:       "it was",
		Part2:       "ten past nine",
		Part3:       "already",
		Attribution: layout.Attribution{Title: "A Book", Author: "Jane Doe"},
	}
	res, err := layout.Build(q, cfg, layout.BuildOptions{Measurer: r})
	if err != nil {
		t.Fatalf("布局失败: %v", err)
	}
	img, err := r.Render(res)
	if err != nil {
		t.Fatalf("渲染失败: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != 400 {
		t.Fatalf("输出尺寸应等于配置像素尺寸: %dx%d", b.Dx(), b.Dy())
	}
	// 角落应是背景色
	cr, cg, cb, _ := img.At(1, 1).RGBA()
	wr, wg, wb, _ := color.White.RGBA()
	if cr != wr || cg != wg || cb != wb {
		t.Fatalf("角落应为背景色: got=(%d,%d,%d)", cr, cg, cb)
	}
}
