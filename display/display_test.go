package display

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestExpandPattern(t *testing.T) {
	at := time.Date(2026, 8, 30, 15, 4, 0, 0, time.Local)
	cases := []struct {
		pattern string
		want    string
	}{
		{"time_image.png", "time_image.png"},
		{"out/${time}.png", "out/1504.png"},
		{"${date}/${time}.png", "2026-08-30/1504.png"},
		{"${unknown}.png", "${unknown}.png"},
		{"a_${time}_${time}.png", "a_1504_1504.png"},
	}
	for _, tc := range cases {
		if got := ExpandPattern(tc.pattern, at); got != tc.want {
			t.Fatalf("ExpandPattern(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
}

func TestFileSinkWritesPNG(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(filepath.Join(dir, "frames", "${time}.png"))
	sink.now = func() time.Time {
		return time.Date(2026, 8, 30, 9, 5, 0, 0, time.Local)
	}

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	if err := sink.Display(img); err != nil {
		t.Fatalf("写文件失败: %v", err)
	}

	path := filepath.Join(dir, "frames", "0905.png")
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("输出文件不存在: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("输出不是合法 PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 8 {
		t.Fatalf("输出尺寸错误: %v", decoded.Bounds())
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("关闭失败: %v", err)
	}
}

func TestFileSinkBadDir(t *testing.T) {
	// 以普通文件充当目录，MkdirAll 必然失败
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	sink := NewFileSink(filepath.Join(blocker, "sub", "out.png"))
	if err := sink.Display(image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("目录不可创建时应报错")
	}
}

func TestNewEPaperSinkRejectsUnknownModel(t *testing.T) {
	if _, err := NewEPaperSink("impression"); err == nil {
		t.Fatal("未知型号应报错")
	}
}
