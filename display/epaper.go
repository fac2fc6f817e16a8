package display

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/inky"
	"periph.io/x/host/v3"
)

// 树莓派上 Inky 屏的标准接线。
const (
	spiPort  = "SPI0.0"
	dcPin    = "22"
	resetPin = "27"
	busyPin  = "17"
)

// EPaperSink 把画面刷到 Pimoroni Inky 墨水屏上。
type EPaperSink struct {
	port spi.PortCloser
	dev  *inky.Dev
}

// NewEPaperSink 初始化 SPI 总线与 GPIO 并连接墨水屏。
// model 取 "phat" 或 "what"。
func NewEPaperSink(model string) (*EPaperSink, error) {
	var m inky.Model
	switch model {
	case "phat":
		m = inky.PHAT
	case "what":
		m = inky.WHAT
	default:
		return nil, fmt.Errorf("未知的墨水屏型号: %s", model)
	}

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("初始化外设失败: %w", err)
	}
	port, err := spireg.Open(spiPort)
	if err != nil {
		return nil, fmt.Errorf("打开 SPI %s 失败: %w", spiPort, err)
	}

	dc := gpioreg.ByName(dcPin)
	reset := gpioreg.ByName(resetPin)
	busy := gpioreg.ByName(busyPin)
	if dc == nil || reset == nil || busy == nil {
		port.Close()
		return nil, fmt.Errorf("GPIO 引脚不可用 (dc=%s reset=%s busy=%s)", dcPin, resetPin, busyPin)
	}

	dev, err := inky.New(port, dc, reset, busy, &inky.Opts{
		Model:       m,
		ModelColor:  inky.Red,
		BorderColor: inky.White,
	})
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("连接墨水屏失败: %w", err)
	}
	return &EPaperSink{port: port, dev: dev}, nil
}

// Display 实现 display.Sink。墨水屏刷新以秒计，调用方应控制频率。
func (s *EPaperSink) Display(img image.Image) error {
	if err := s.dev.Draw(s.dev.Bounds(), img, image.Point{}); err != nil {
		return fmt.Errorf("刷新墨水屏失败: %w", err)
	}
	return nil
}

// Close 实现 display.Sink。
func (s *EPaperSink) Close() error {
	if s.port != nil {
		return s.port.Close()
	}
	return nil
}
