// Package fonts 把主题中的字体族映射到系统字体文件。
//
// 目标平台（树莓派一类的 Linux 小机器）通常装有 Liberation 与 DejaVu，
// 按字体族的衬线分类和字重挑一个形状相近的替身，逐个路径尝试，
// 第一个可读的命中即用。
package fonts

import (
	"fmt"
	"os"
	"strings"
)

type class int

const (
	serif class = iota
	sans
)

// familyClasses 把常见网络字体族归入衬线/无衬线两类。
// 未知字体族按无衬线处理。
var familyClasses = map[string]class{
	"lora":       serif,
	"open sans":  sans,
	"roboto":     sans,
	"lato":       sans,
	"montserrat": sans,
}

// Resolve 按字体族与字重查找系统字体文件，返回其内容。
func Resolve(family, weight string) ([]byte, error) {
	cls, ok := familyClasses[strings.ToLower(family)]
	if !ok {
		cls = sans
	}
	paths := candidates(cls, isBold(weight), isItalic(weight))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("未找到 %s (%s) 的可用系统字体", family, weight)
}

// candidates 返回按优先级排列的字体文件路径。
func candidates(cls class, bold, italic bool) []string {
	switch cls {
	case serif:
		switch {
		case bold && italic:
			return []string{
				"/usr/share/fonts/truetype/liberation/LiberationSerif-BoldItalic.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSerif-BoldOblique.ttf",
			}
		case bold:
			return []string{
				"/usr/share/fonts/truetype/liberation/LiberationSerif-Bold.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSerif-Bold.ttf",
			}
		case italic:
			return []string{
				"/usr/share/fonts/truetype/liberation/LiberationSerif-Italic.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSerif-Oblique.ttf",
			}
		default:
			return []string{
				"/usr/share/fonts/truetype/liberation/LiberationSerif-Regular.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSerif.ttf",
			}
		}
	default:
		switch {
		case bold && italic:
			return []string{
				"/usr/share/fonts/truetype/liberation/LiberationSans-BoldItalic.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSans-BoldOblique.ttf",
			}
		case bold:
			return []string{
				"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
			}
		case italic:
			return []string{
				"/usr/share/fonts/truetype/liberation/LiberationSans-Italic.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSans-Oblique.ttf",
			}
		default:
			return []string{
				"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
				"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
			}
		}
	}
}

func isBold(weight string) bool {
	switch strings.ToLower(weight) {
	case "bold", "semibold", "extrabold", "extra-bold", "black":
		return true
	default:
		return false
	}
}

func isItalic(weight string) bool {
	return strings.ToLower(weight) == "italic"
}
