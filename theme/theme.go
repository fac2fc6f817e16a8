package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ByLCY/chronotype/layout"
)

// Sample 是默认主题文件的内容，首次运行时写出，便于用户直接修改。
const Sample = `// chronotype 主题文件
theme {
  canvas: 640 400
  background: #FFFFFF
  margin-top: 50
  margin-bottom: 50

  quote {
    font: "Lora"
    size: 38
    line-spacing: 8
    max-width: 600
    color: #000000
  }

  highlight {
    font: "Lora"
    weight: "extra-bold"
    size: 38
    color: #FF0000
  }

  attribution {
    font: "Open Sans"
    weight: "italic"
    size: 32
    line-spacing: 5
    color: #008000
  }
}
`

// Defaults 返回内置主题，与 Sample 文件的内容一致。
func Defaults() layout.Config {
	return layout.Config{
		CanvasWidth:            640,
		CanvasHeight:           400,
		Background:             layout.Color{R: 255, G: 255, B: 255},
		MarginLeft:             20,
		MarginTop:              50,
		BottomMargin:           50,
		MaxLineWidth:           600,
		QuoteLineSpacing:       8,
		AttributionLineSpacing: 5,
		Fonts: map[layout.StyleID]layout.FontSpec{
			layout.StyleNormal:      {Family: "Lora", Size: 38, Color: layout.Color{}},
			layout.StyleHighlight:   {Family: "Lora", Size: 38, Weight: "extra-bold", Color: layout.Color{R: 255}},
			layout.StyleAttribution: {Family: "Open Sans", Size: 32, Weight: "italic", Color: layout.Color{G: 128}},
		},
	}
}

// Load 读取并解析主题文件。文件不存在时写出 Sample 并返回内置主题，
// 保证首次运行即可出图。
func Load(path string) (layout.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if werr := os.WriteFile(path, []byte(Sample), 0o644); werr != nil {
				return layout.Config{}, fmt.Errorf("写出默认主题 %s 失败: %w", path, werr)
			}
			return Defaults(), nil
		}
		return layout.Config{}, fmt.Errorf("读取主题 %s 失败: %w", path, err)
	}
	doc, err := ParseString(string(data))
	if err != nil {
		return layout.Config{}, fmt.Errorf("解析主题 %s 失败: %w", path, err)
	}
	return Resolve(doc)
}

// Resolve 把主题 AST 应用到内置默认值之上，未出现的键保留默认值。
// 未显式指定 margin-left 时按最大行宽水平居中。
func Resolve(doc *Document) (layout.Config, error) {
	cfg := Defaults()
	marginLeftSet := false

	for _, st := range doc.Statements {
		switch {
		case st.Assignment != nil:
			a := st.Assignment
			switch a.Key {
			case "canvas":
				if len(a.Values) != 2 || a.Values[0].Number == nil || a.Values[1].Number == nil {
					return layout.Config{}, fmt.Errorf("canvas 需要两个数值（宽 高）")
				}
				cfg.CanvasWidth = *a.Values[0].Number
				cfg.CanvasHeight = *a.Values[1].Number
			case "background":
				c, err := singleColor(a)
				if err != nil {
					return layout.Config{}, err
				}
				cfg.Background = c
			case "margin":
				// 上下边距的简写
				v, err := singleNumber(a)
				if err != nil {
					return layout.Config{}, err
				}
				cfg.MarginTop = v
				cfg.BottomMargin = v
			case "margin-top":
				v, err := singleNumber(a)
				if err != nil {
					return layout.Config{}, err
				}
				cfg.MarginTop = v
			case "margin-bottom":
				v, err := singleNumber(a)
				if err != nil {
					return layout.Config{}, err
				}
				cfg.BottomMargin = v
			case "margin-left":
				v, err := singleNumber(a)
				if err != nil {
					return layout.Config{}, err
				}
				cfg.MarginLeft = v
				marginLeftSet = true
			default:
				return layout.Config{}, fmt.Errorf("未知的主题键: %s", a.Key)
			}

		case st.Style != nil:
			style, ok := styleByName(st.Style.Name)
			if !ok {
				return layout.Config{}, fmt.Errorf("未知的样式块: %s", st.Style.Name)
			}
			spec := cfg.Fonts[style]
			for _, a := range st.Style.Assignments {
				switch a.Key {
				case "font":
					s, err := singleString(a)
					if err != nil {
						return layout.Config{}, err
					}
					spec.Family = s
				case "weight":
					s, err := singleString(a)
					if err != nil {
						return layout.Config{}, err
					}
					spec.Weight = s
				case "size":
					v, err := singleNumber(a)
					if err != nil {
						return layout.Config{}, err
					}
					spec.Size = v
				case "color":
					c, err := singleColor(a)
					if err != nil {
						return layout.Config{}, err
					}
					spec.Color = c
				case "line-spacing":
					v, err := singleNumber(a)
					if err != nil {
						return layout.Config{}, err
					}
					switch style {
					case layout.StyleNormal:
						cfg.QuoteLineSpacing = v
					case layout.StyleAttribution:
						cfg.AttributionLineSpacing = v
					}
				case "max-width":
					v, err := singleNumber(a)
					if err != nil {
						return layout.Config{}, err
					}
					if style == layout.StyleNormal {
						cfg.MaxLineWidth = v
					}
				default:
					return layout.Config{}, fmt.Errorf("样式块 %s 中未知的键: %s", st.Style.Name, a.Key)
				}
			}
			cfg.Fonts[style] = spec
		}
	}

	if cfg.MaxLineWidth > cfg.CanvasWidth {
		cfg.MaxLineWidth = cfg.CanvasWidth
	}
	if !marginLeftSet {
		cfg.MarginLeft = (cfg.CanvasWidth - cfg.MaxLineWidth) / 2
	}
	return cfg, nil
}

func styleByName(name string) (layout.StyleID, bool) {
	switch name {
	case "quote":
		return layout.StyleNormal, true
	case "highlight":
		return layout.StyleHighlight, true
	case "attribution":
		return layout.StyleAttribution, true
	default:
		return 0, false
	}
}

func singleNumber(a *Assignment) (float64, error) {
	if len(a.Values) != 1 || a.Values[0].Number == nil {
		return 0, fmt.Errorf("%s 需要一个数值", a.Key)
	}
	return *a.Values[0].Number, nil
}

func singleString(a *Assignment) (string, error) {
	if len(a.Values) != 1 || a.Values[0].String == nil {
		return "", fmt.Errorf("%s 需要一个字符串", a.Key)
	}
	return string(*a.Values[0].String), nil
}

func singleColor(a *Assignment) (layout.Color, error) {
	if len(a.Values) != 1 || a.Values[0].Color == nil {
		return layout.Color{}, fmt.Errorf("%s 需要一个颜色（#RGB 或 #RRGGBB）", a.Key)
	}
	return parseColor(*a.Values[0].Color)
}

// parseColor 解析 #RGB / #RRGGBB 颜色字面量。
func parseColor(s string) (layout.Color, error) {
	hexPart := strings.TrimPrefix(s, "#")
	switch len(hexPart) {
	case 3:
		var sb strings.Builder
		for _, ch := range hexPart {
			sb.WriteRune(ch)
			sb.WriteRune(ch)
		}
		hexPart = sb.String()
	case 6:
	default:
		return layout.Color{}, fmt.Errorf("无效的颜色格式: %s", s)
	}
	v, err := strconv.ParseUint(hexPart, 16, 32)
	if err != nil {
		return layout.Color{}, fmt.Errorf("无效的颜色格式 %s: %w", s, err)
	}
	return layout.Color{
		R: int(v >> 16 & 0xFF),
		G: int(v >> 8 & 0xFF),
		B: int(v & 0xFF),
	}, nil
}
