package render

import (
	"image"

	"github.com/ByLCY/chronotype/layout"
)

// Renderer 将布局结果绘制为位图，供各个显示后端消费。
type Renderer interface {
	Render(result *layout.Result) (image.Image, error)
}
