package display

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// FullscreenSink 在全屏窗口里显示画面。Display 可以从任意 goroutine
// 调用；Run 驱动窗口事件循环，必须在主 goroutine 上执行，按 Esc 退出。
type FullscreenSink struct {
	title string

	mu    sync.Mutex
	frame *ebiten.Image
}

// NewFullscreenSink 创建全屏输出后端。
func NewFullscreenSink(title string) *FullscreenSink {
	return &FullscreenSink{title: title}
}

// Display 实现 display.Sink，替换当前帧。
func (s *FullscreenSink) Display(img image.Image) error {
	frame := ebiten.NewImageFromImage(img)
	s.mu.Lock()
	s.frame = frame
	s.mu.Unlock()
	return nil
}

// Close 实现 display.Sink，窗口退出由事件循环负责。
func (s *FullscreenSink) Close() error { return nil }

// Run 启动全屏事件循环，阻塞到窗口关闭或用户按下 Esc。
func (s *FullscreenSink) Run() error {
	ebiten.SetFullscreen(true)
	ebiten.SetWindowTitle(s.title)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	err := ebiten.RunGame(s)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Update 实现 ebiten.Game。
func (s *FullscreenSink) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw 实现 ebiten.Game：按等比缩放把当前帧居中画在白底上。
func (s *FullscreenSink) Draw(screen *ebiten.Image) {
	s.mu.Lock()
	frame := s.frame
	s.mu.Unlock()

	screen.Fill(color.White)
	if frame == nil {
		return
	}

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	if fw == 0 || fh == 0 {
		return
	}
	scale := min(float64(sw)/float64(fw), float64(sh)/float64(fh))

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(sw)-float64(fw)*scale)/2,
		(float64(sh)-float64(fh)*scale)/2,
	)
	screen.DrawImage(frame, &op)
}

// Layout 实现 ebiten.Game，逻辑分辨率跟随窗口。
func (s *FullscreenSink) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
