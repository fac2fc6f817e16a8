package canvasrenderer

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/chronotype/fonts"
	"github.com/ByLCY/chronotype/layout"
	"github.com/ByLCY/chronotype/render"
)

// Renderer 基于 github.com/tdewolff/canvas 绘制布局结果，同时实现
// layout.Measurer：布局阶段用与最终绘制相同的字体面测量文本宽度，
// 保证折行结果与画面一致。
//
// 约定：布局坐标与字号均为像素（px）；canvas 内部使用 mm/pt，
// 所有换算收敛在本包的边界上。
type Renderer struct {
	dpi   float64
	specs map[layout.StyleID]layout.FontSpec

	fontMu   sync.Mutex
	families map[string]*canvas.FontFamily
	failed   map[string]bool
}

var (
	_ render.Renderer = (*Renderer)(nil)
	_ layout.Measurer = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	// DPI 控制 px↔mm 换算，缺省 layout.DefaultDPI。
	DPI float64
}

// NewRenderer creates a renderer for the given per-style font specs.
func NewRenderer(specs map[layout.StyleID]layout.FontSpec) *Renderer {
	return NewRendererWithOptions(specs, Options{})
}

// NewRendererWithOptions creates a renderer with explicit options.
func NewRendererWithOptions(specs map[layout.StyleID]layout.FontSpec, opts Options) *Renderer {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = layout.DefaultDPI
	}
	return &Renderer{
		dpi:      dpi,
		specs:    specs,
		families: map[string]*canvas.FontFamily{},
		failed:   map[string]bool{},
	}
}

// Measure 实现 layout.Measurer。字体不可用时退化为按字号估算，
// 估算值偏保守但能保证布局仍然可用。
func (r *Renderer) Measure(text string, style layout.StyleID) float64 {
	if text == "" {
		return 0
	}
	spec := r.specs[style]
	face, err := r.fontFace(style)
	if err != nil || face == nil {
		return estimateTextWidth(text, spec.Size)
	}
	return layout.MmToPx(face.TextWidth(text), r.dpi)
}

// Render 将布局结果光栅化为位图。输出尺寸等于布局配置的像素尺寸。
func (r *Renderer) Render(result *layout.Result) (image.Image, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}

	wMm := layout.PxToMm(result.Width, r.dpi)
	hMm := layout.PxToMm(result.Height, r.dpi)
	c := canvas.New(wMm, hMm)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	ctx.SetFillColor(colorFromLayout(result.Background))
	ctx.DrawPath(0, 0, canvas.Rectangle(wMm, hMm))

	for _, cmd := range result.Commands {
		face, err := r.fontFace(cmd.Run.Style)
		if err != nil {
			return nil, err
		}
		textLine := canvas.NewTextLine(face, cmd.Run.Text, canvas.Left)
		// 基线位置：行顶部（px→mm）加上字体上升部（Ascent，mm）
		baseline := layout.PxToMm(cmd.Y, r.dpi) + face.Metrics().Ascent
		ctx.DrawText(layout.PxToMm(cmd.X, r.dpi), baseline, textLine)
	}

	// 每 mm 的像素数取自 dpi，光栅尺寸即配置的像素尺寸
	img := rasterizer.Draw(c, canvas.DPMM(layout.MmToPx(1, r.dpi)), canvas.DefaultColorSpace)
	return img, nil
}

func (r *Renderer) fontFace(style layout.StyleID) (*canvas.FontFace, error) {
	spec, ok := r.specs[style]
	if !ok {
		return nil, fmt.Errorf("样式 %s 缺少字体配置", style)
	}
	family, err := r.ensureFontFamily(spec)
	if err != nil {
		return nil, err
	}
	sizePt := layout.PxToPt(spec.Size, r.dpi)
	return family.Face(sizePt, colorFromLayout(spec.Color), parseFontStyle(spec.Weight), canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(spec layout.FontSpec) (*canvas.FontFamily, error) {
	key := spec.Family + "|" + spec.Weight
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.families[key]; ok {
		return family, nil
	}
	if r.failed[key] {
		return nil, fmt.Errorf("字体 %s (%s) 此前加载失败", spec.Family, spec.Weight)
	}

	data, err := fonts.Resolve(spec.Family, spec.Weight)
	if err != nil {
		r.failed[key] = true
		return nil, err
	}
	family := canvas.NewFontFamily(spec.Family)
	if err := family.LoadFont(data, 0, parseFontStyle(spec.Weight)); err != nil {
		r.failed[key] = true
		return nil, fmt.Errorf("加载字体 %s 失败: %w", spec.Family, err)
	}
	r.families[key] = family
	return family, nil
}

func parseFontStyle(weight string) canvas.FontStyle {
	if weight == "" {
		return canvas.FontRegular
	}
	s := strings.ReplaceAll(strings.ToLower(weight), "-", "")
	result := canvas.FontRegular
	switch {
	case strings.Contains(s, "black"):
		result = canvas.FontBlack
	case strings.Contains(s, "extrabold"):
		result = canvas.FontExtraBold
	case strings.Contains(s, "bold"):
		result = canvas.FontBold
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"):
		result = canvas.FontSemiBold
	case strings.Contains(s, "medium"):
		result = canvas.FontMedium
	case strings.Contains(s, "light"):
		result = canvas.FontLight
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}

// estimateTextWidth 在没有字体数据时按字号粗略估算文本宽度（px）。
func estimateTextWidth(text string, sizePx float64) float64 {
	return float64(utf8.RuneCountInString(text)) * sizePx * 0.55
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
