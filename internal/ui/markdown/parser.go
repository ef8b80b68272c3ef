package markdown

import "strings"

type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeader
	BlockSubheader
	BlockList
	BlockCode
	BlockBlank
)

type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
)

type Span struct {
	Kind SpanKind
	Text string
}

// Block is one display node of a chat message. Paragraphs, headers and
// subheaders carry Spans; lists carry one span slice per item; code blocks
// keep their lines verbatim.
type Block struct {
	Kind  BlockKind
	Spans []Span
	Items [][]Span
	Lines []string
}

// Parse turns chat message text into display blocks. The function is total:
// unbalanced markers degrade to literal text, and an unterminated code fence
// keeps its collected lines.
func Parse(text string) []Block {
	if text == "" {
		return nil
	}

	var blocks []Block
	var codeLines []string
	var listItems [][]Span
	inCode := false

	flushList := func() {
		if len(listItems) > 0 {
			blocks = append(blocks, Block{Kind: BlockList, Items: listItems})
			listItems = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inCode {
				blocks = append(blocks, Block{Kind: BlockCode, Lines: codeLines})
				codeLines = nil
				inCode = false
			} else {
				flushList()
				inCode = true
			}
			continue
		}

		if inCode {
			codeLines = append(codeLines, line)
			continue
		}

		switch {
		case trimmed == "":
			flushList()
			blocks = append(blocks, Block{Kind: BlockBlank})

		case strings.HasPrefix(trimmed, "**"):
			flushList()
			kind := BlockSubheader
			if end := strings.Index(trimmed[2:], "**"); end >= 0 && strings.Contains(trimmed[2:2+end], ":") {
				kind = BlockHeader
			}
			blocks = append(blocks, Block{Kind: kind, Spans: ParseInline(trimmed)})

		case strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "- "):
			listItems = append(listItems, ParseInline(trimmed[2:]))

		default:
			flushList()
			blocks = append(blocks, Block{Kind: BlockParagraph, Spans: ParseInline(trimmed)})
		}
	}

	flushList()
	if inCode && len(codeLines) > 0 {
		blocks = append(blocks, Block{Kind: BlockCode, Lines: codeLines})
	}

	return blocks
}

type inlineMarker struct {
	kind  SpanKind
	open  string
	close string
}

// Scan order breaks ties at the same index: bold before italic so that "**"
// is never consumed as an empty italic span.
var inlineMarkers = []inlineMarker{
	{SpanBold, "**", "**"},
	{SpanItalic, "*", "*"},
	{SpanCode, "`", "`"},
}

// ParseInline scans left to right for the earliest of bold, italic or inline
// code; text before the match is emitted verbatim and the scan continues after
// it. Span contents are not re-scanned, and unmatched markers stay literal.
func ParseInline(text string) []Span {
	var spans []Span
	rest := text

	for rest != "" {
		bestStart := -1
		var best inlineMarker
		bestEnd := 0

		for _, m := range inlineMarkers {
			start := strings.Index(rest, m.open)
			if start < 0 || (bestStart >= 0 && start >= bestStart) {
				continue
			}
			// Empty spans are rejected so a dangling "**" is not consumed
			// as an empty italic.
			end := strings.Index(rest[start+len(m.open):], m.close)
			if end < 1 {
				continue
			}
			bestStart = start
			best = m
			bestEnd = start + len(m.open) + end
		}

		if bestStart < 0 {
			spans = append(spans, Span{Kind: SpanText, Text: rest})
			break
		}

		if bestStart > 0 {
			spans = append(spans, Span{Kind: SpanText, Text: rest[:bestStart]})
		}
		spans = append(spans, Span{Kind: best.kind, Text: rest[bestStart+len(best.open) : bestEnd]})
		rest = rest[bestEnd+len(best.close):]
	}

	return spans
}
