package layout

// StyleLine 将折行后的一行与段落样式区间求交，切出按序覆盖整行、
// 无缝隙无重叠的样式片段序列：片段按序拼接必须精确还原该行文本。
//
// 策略：一行内只认第一个与之相交的高亮区间，落在同一物理行上的后续
// 高亮区间按普通样式处理。正常情况下整段只有一个高亮区间，该策略与
// 既有渲染输出保持兼容；若将来允许多个高亮区间同行，此处是已知限制。
func StyleLine(line Line, spans []StyledSpan) []StyledRun {
	runes := []rune(line.Text)
	lineStart := line.Start
	lineEnd := lineStart + len(runes)

	// 区间有序且互不重叠，顺序扫描即可找到第一个相交的高亮区间。
	hiStart, hiEnd := -1, -1
	for _, sp := range spans {
		if sp.Style != StyleHighlight {
			continue
		}
		s := max(sp.Start, lineStart)
		e := min(sp.End, lineEnd)
		if s < e {
			hiStart, hiEnd = s, e
			break
		}
	}
	if hiStart < 0 {
		// 无相交高亮：整行即一个普通片段。
		return []StyledRun{{Text: line.Text, Style: StyleNormal}}
	}

	var runs []StyledRun
	if hiStart > lineStart {
		runs = append(runs, StyledRun{Text: string(runes[:hiStart-lineStart]), Style: StyleNormal})
	}
	runs = append(runs, StyledRun{Text: string(runes[hiStart-lineStart : hiEnd-lineStart]), Style: StyleHighlight})
	if hiEnd < lineEnd {
		runs = append(runs, StyledRun{Text: string(runes[hiEnd-lineStart:]), Style: StyleNormal})
	}
	return runs
}
