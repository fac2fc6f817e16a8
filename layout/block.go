package layout

import "fmt"

// Build 执行一次完整布局：合并段落、折行、逐行切分样式片段，并为引文块
// 与署名块计算绝对绘制坐标。整个过程是输入的纯函数：不持有跨调用状态、
// 不做 IO，不同的 Config/Quote 可以在多个 goroutine 上并发布局。
func Build(q Quote, cfg Config, opts BuildOptions) (*Result, error) {
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: 缺少文本测量后端 Measurer")
	}
	m := opts.Measurer

	para := BuildParagraph([]Segment{
		{Text: q.Part1, Style: StyleNormal},
		{Text: q.Part2, Style: StyleHighlight},
		{Text: q.Part3, Style: StyleNormal},
	})

	res := &Result{
		Width:      cfg.CanvasWidth,
		Height:     cfg.CanvasHeight,
		Background: cfg.Background,
		Fonts:      cfg.Fonts,
		Paragraph:  para,
	}

	// 引文块：从 (MarginLeft, MarginTop) 起，折行以 StyleNormal 度量，
	// 行内按片段各自的样式度量并推进 x，行间推进 字号+行距。
	wrapped := WrapLines(para.Text, func(s string) float64 {
		return m.Measure(s, StyleNormal)
	}, cfg.MaxLineWidth)

	quoteFont := cfg.Fonts[StyleNormal]
	y := cfg.MarginTop
	for _, ln := range wrapped {
		runs := StyleLine(ln, para.Spans)
		res.Lines = append(res.Lines, runs)
		x := cfg.MarginLeft
		for _, run := range runs {
			res.Commands = append(res.Commands, DrawCommand{X: x, Y: y, Run: run})
			x += m.Measure(run.Text, run.Style)
		}
		y += quoteFont.Size + cfg.QuoteLineSpacing
	}

	// 署名块独立计算，锚定在画布底部，位置不随引文长度变化。
	// 引文过长时允许与署名区域重叠（既有行为，不视为错误）。
	attr := attributionLines(q.Attribution)
	if len(attr) > 0 {
		af := cfg.Fonts[StyleAttribution]
		total := float64(len(attr))*(af.Size+cfg.AttributionLineSpacing) - cfg.AttributionLineSpacing
		ay := cfg.CanvasHeight - cfg.BottomMargin - total
		for _, text := range attr {
			res.Commands = append(res.Commands, DrawCommand{
				X:   cfg.MarginLeft,
				Y:   ay,
				Run: StyledRun{Text: text, Style: StyleAttribution},
			})
			ay += af.Size + cfg.AttributionLineSpacing
		}
	}
	return res, nil
}

// attributionLines 依序生成署名行：书名一行，作者一行（带破折号前缀）。
// 缺失的字段不产生行。
func attributionLines(a Attribution) []string {
	var lines []string
	if a.Title != "" {
		lines = append(lines, a.Title)
	}
	if a.Author != "" {
		lines = append(lines, "— "+a.Author)
	}
	return lines
}
