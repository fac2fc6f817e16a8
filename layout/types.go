package layout

// 该文件定义布局的输入输出数据模型，供布局计算、渲染与调试 JSON 共用。

// StyleID 标识一段文本所使用的样式。
type StyleID int

const (
	// StyleNormal 普通引文文本。
	StyleNormal StyleID = iota
	// StyleHighlight 引文中点出时间的高亮片段。
	StyleHighlight
	// StyleAttribution 署名区域（书名与作者）。
	StyleAttribution
)

// String 返回样式的可读名称。
func (s StyleID) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleHighlight:
		return "highlight"
	case StyleAttribution:
		return "attribution"
	default:
		return "unknown"
	}
}

// Segment 是一段独立撰写的引文片段及其样式，任意片段都可以为空。
type Segment struct {
	Text  string  `json:"text"`
	Style StyleID `json:"style"`
}

// StyledSpan 记录合并后段落中 [Start,End) 的样式区间，偏移按字符（rune）计。
// 区间由构造过程保证按 Start 有序且互不重叠；未覆盖的空隙隐含为 StyleNormal。
type StyledSpan struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Style StyleID `json:"style"`
}

// Paragraph 合并后的段落文本与其有序样式区间。
type Paragraph struct {
	Text  string       `json:"text"`
	Spans []StyledSpan `json:"spans,omitempty"`
}

// Line 折行后的一行文本；Start 为该行首个单词在段落文本中的字符偏移，
// StyleLine 依赖它与样式区间求交。
type Line struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
}

// StyledRun 一行中样式一致的连续子串。
// 不变式：一行的全部片段按序拼接精确还原该行文本，无缝隙、无重叠。
type StyledRun struct {
	Text  string  `json:"text"`
	Style StyleID `json:"style"`
}

// Attribution 署名区域，Title/Author 均可为空，为空的字段不产生行。
type Attribution struct {
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// Quote 一条完整的时间引文：三段引文片段（中段为高亮）加署名。
type Quote struct {
	Part1       string      `json:"part1"`
	Part2       string      `json:"part2"`
	Part3       string      `json:"part3"`
	Attribution Attribution `json:"attribution"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// FontSpec 描述某一样式使用的字体：逻辑字体族、像素字号、字重与颜色。
// 逻辑字体族到具体字体文件的解析发生在渲染阶段，布局核心只读字号。
type FontSpec struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
	Weight string  `json:"weight,omitempty"`
	Color  Color   `json:"color"`
}

// Config 单次布局所需的全部参数，由调用方持有，布局过程中只读。
// 所有长度单位均为像素。
type Config struct {
	CanvasWidth  float64 `json:"canvasWidth"`
	CanvasHeight float64 `json:"canvasHeight"`
	Background   Color   `json:"background"`

	MarginLeft   float64 `json:"marginLeft"`
	MarginTop    float64 `json:"marginTop"`
	BottomMargin float64 `json:"bottomMargin"`

	// MaxLineWidth 引文折行的像素预算。
	MaxLineWidth float64 `json:"maxLineWidth"`

	QuoteLineSpacing       float64 `json:"quoteLineSpacing"`
	AttributionLineSpacing float64 `json:"attributionLineSpacing"`

	// Fonts 按样式解析好的字体查找表，布局前构建一次，布局中不再解析字符串。
	Fonts map[StyleID]FontSpec `json:"fonts"`
}

// DrawCommand 最终输出单元：在画布坐标 (X,Y)（行顶部左端，像素）绘制 Run。
// 每次布局重新生成，不跨调用保留。
type DrawCommand struct {
	X   float64   `json:"x"`
	Y   float64   `json:"y"`
	Run StyledRun `json:"run"`
}

// Result 保存一次布局的全部产物，可直接交给渲染器或调试输出。
type Result struct {
	Width      float64              `json:"width"`
	Height     float64              `json:"height"`
	Background Color                `json:"background"`
	Fonts      map[StyleID]FontSpec `json:"fonts"`
	Paragraph  Paragraph            `json:"paragraph"`
	Lines      [][]StyledRun        `json:"lines,omitempty"`
	Commands   []DrawCommand        `json:"commands"`
}
