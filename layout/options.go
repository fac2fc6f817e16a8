package layout

// BuildOptions 配置布局阶段所需的依赖，例如文本测量后端。
type BuildOptions struct {
	Measurer Measurer
}

// Measurer 负责测量一段文本在某一样式下的渲染像素宽度。
// 约定：对固定的字体配置，结果必须确定（相同输入恒得相同宽度），
// 且 Measure("", style) == 0。实现内部可以缓存，但对调用方不可见。
type Measurer interface {
	Measure(text string, style StyleID) float64
}
