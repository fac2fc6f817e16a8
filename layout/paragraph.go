package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BuildParagraph 将若干独立撰写的引文片段合并为一个逻辑段落，并记录每个
// 非空片段在合并文本中占据的样式区间（字符偏移，半开区间 [Start,End)）。
// 拼接规则：当已累计文本非空且片段自身不以空白开头时，插入一个空格分隔，
// 对应独立成句的引文片段之间的自然衔接。
// 全空输入返回空段落（无文本、无区间），由调用方决定是否视为"无可渲染内容"。
func BuildParagraph(segments []Segment) Paragraph {
	var b strings.Builder
	var spans []StyledSpan
	length := 0 // 已累计的字符数（按 rune 计）
	for _, seg := range segments {
		if seg.Text == "" {
			continue
		}
		if length > 0 && !startsWithSpace(seg.Text) {
			b.WriteByte(' ')
			length++
		}
		start := length
		b.WriteString(seg.Text)
		length += utf8.RuneCountInString(seg.Text)
		spans = append(spans, StyledSpan{Start: start, End: length, Style: seg.Style})
	}
	return Paragraph{Text: b.String(), Spans: spans}
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}
