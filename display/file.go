package display

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// ExpandPattern 将输出路径中的 ${time}/${date} 占位符替换为给定时刻的值。
// ${time} 展开为 HHMM，${date} 展开为 YYYY-MM-DD；未知占位符原样保留。
func ExpandPattern(pattern string, at time.Time) string {
	return exprPattern.ReplaceAllStringFunc(pattern, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		switch strings.TrimSpace(groups[1]) {
		case "time":
			return at.Format("1504")
		case "date":
			return at.Format("2006-01-02")
		default:
			return match
		}
	})
}

// FileSink 把每帧画面写为 PNG 文件。路径可含 ${time}/${date} 占位符，
// 按帧展开，因此同一个 Sink 能写出随时间滚动的文件序列。
type FileSink struct {
	Pattern string

	// now 可注入以便测试，默认取系统时钟。
	now func() time.Time
}

// NewFileSink 创建写文件的输出后端。
func NewFileSink(pattern string) *FileSink {
	return &FileSink{Pattern: pattern}
}

// Display 实现 display.Sink。
func (s *FileSink) Display(img image.Image) error {
	now := s.now
	if now == nil {
		now = time.Now
	}
	path := ExpandPattern(s.Pattern, now())
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录 %s 失败: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建输出文件 %s 失败: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("写入 PNG %s 失败: %w", path, err)
	}
	return f.Close()
}

// Close 实现 display.Sink，文件后端无需清理。
func (s *FileSink) Close() error { return nil }
