package layout

import (
	"strings"
	"unicode"
)

// word 记录一个单词（最长非空白序列）及其在原文中的字符偏移。
type word struct {
	text  string
	start int
}

// WrapLines 对段落文本做贪心折行：依次尝试把每个单词追加到当前行，
// 候选行宽度（用 StyleNormal 的字体度量）超出 maxWidth 时换行。
// 单个单词自身超出预算时整词独立成行——接受溢出，绝不截断或断词。
// 不变式：所有行按序拼接出的单词序列与原文完全一致（不拆词、不丢词、不重复）。
// 空文本（或仅空白）返回零行。
func WrapLines(text string, measure func(string) float64, maxWidth float64) []Line {
	words := splitWords(text)
	var lines []Line
	current := "" // 当前行缓冲
	start := 0    // 当前行首个单词的字符偏移
	flush := func() {
		if current == "" {
			return
		}
		lines = append(lines, Line{Text: current, Start: start})
		current = ""
	}
	for _, w := range words {
		candidate := w.text
		if current != "" {
			candidate = current + " " + w.text
		}
		if measure(candidate) <= maxWidth {
			if current == "" {
				start = w.start
			}
			current = candidate
			continue
		}
		if current != "" {
			flush()
			current = w.text
			start = w.start
			continue
		}
		// 缓冲为空且单词独自超宽：溢出成行，缓冲保持为空。
		lines = append(lines, Line{Text: w.text, Start: w.start})
	}
	flush()
	return lines
}

// splitWords 按空白切分文本，保留每个单词的字符偏移。
func splitWords(text string) []word {
	var words []word
	var b strings.Builder
	start := 0
	idx := 0 // 字符偏移（按 rune 计）
	for _, r := range text {
		if unicode.IsSpace(r) {
			if b.Len() > 0 {
				words = append(words, word{text: b.String(), start: start})
				b.Reset()
			}
		} else {
			if b.Len() == 0 {
				start = idx
			}
			b.WriteRune(r)
		}
		idx++
	}
	if b.Len() > 0 {
		words = append(words, word{text: b.String(), start: start})
	}
	return words
}
