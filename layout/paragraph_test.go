package layout

import "testing"

// TestBuildParagraphSeparator 验证片段拼接时的空格分隔规则：
// 前文非空且片段不以空白开头时补一个空格，否则原样衔接。
func TestBuildParagraphSeparator(t *testing.T) {
	p := BuildParagraph([]Segment{
		{Text: "The mountains are calling", Style: StyleNormal},
		{Text: "and I must go", Style: StyleHighlight},
		{Text: ".", Style: StyleNormal},
	})
	want := "The mountains are calling and I must go ."
	if p.Text != want {
		t.Fatalf("合并文本错误: got=%q want=%q", p.Text, want)
	}
	if len(p.Spans) != 3 {
		t.Fatalf("应产生 3 个样式区间，实际 %d", len(p.Spans))
	}
	if p.Spans[1].Style != StyleHighlight {
		t.Fatalf("第二个区间应为高亮，实际 %v", p.Spans[1].Style)
	}
	// 高亮区间应精确覆盖 "and I must go"
	runes := []rune(p.Text)
	got := string(runes[p.Spans[1].Start:p.Spans[1].End])
	if got != "and I must go" {
		t.Fatalf("高亮区间覆盖错误: got=%q", got)
	}
}

// TestBuildParagraphLeadingWhitespace 片段自带前导空白时不再补空格。
func TestBuildParagraphLeadingWhitespace(t *testing.T) {
	p := BuildParagraph([]Segment{
		{Text: "half past", Style: StyleNormal},
		{Text: " ten", Style: StyleHighlight},
	})
	if p.Text != "half past ten" {
		t.Fatalf("不应重复插入空格: got=%q", p.Text)
	}
	if p.Spans[1].Start != 9 || p.Spans[1].End != 13 {
		t.Fatalf("区间偏移错误: %+v", p.Spans[1])
	}
}

// TestBuildParagraphSkipsEmpty 空片段不贡献文本也不贡献区间。
func TestBuildParagraphSkipsEmpty(t *testing.T) {
	p := BuildParagraph([]Segment{
		{Text: "before", Style: StyleNormal},
		{Text: "", Style: StyleHighlight},
		{Text: "after", Style: StyleNormal},
	})
	if p.Text != "before after" {
		t.Fatalf("合并文本错误: got=%q", p.Text)
	}
	if len(p.Spans) != 2 {
		t.Fatalf("空片段不应产生区间: %+v", p.Spans)
	}
	for _, sp := range p.Spans {
		if sp.Style == StyleHighlight {
			t.Fatalf("不应存在高亮区间: %+v", sp)
		}
	}
}

// TestBuildParagraphAllEmpty 全空输入得到空段落。
func TestBuildParagraphAllEmpty(t *testing.T) {
	p := BuildParagraph([]Segment{{}, {Style: StyleHighlight}, {}})
	if p.Text != "" || len(p.Spans) != 0 {
		t.Fatalf("全空输入应得到空段落: %+v", p)
	}
}

// TestBuildParagraphSpansOrdered 区间按 Start 有序且互不重叠。
func TestBuildParagraphSpansOrdered(t *testing.T) {
	p := BuildParagraph([]Segment{
		{Text: "it was", Style: StyleNormal},
		{Text: "eleven o'clock", Style: StyleHighlight},
		{Text: "at night", Style: StyleNormal},
	})
	prevEnd := 0
	for i, sp := range p.Spans {
		if sp.Start < prevEnd {
			t.Fatalf("区间 %d 与前一区间重叠: %+v", i, p.Spans)
		}
		if sp.End <= sp.Start {
			t.Fatalf("区间 %d 为空或反向: %+v", i, sp)
		}
		prevEnd = sp.End
	}
}
