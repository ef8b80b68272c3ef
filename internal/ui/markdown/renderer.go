package markdown

import "strings"

type Renderer struct {
	styles Styles
	width  int
}

func NewRenderer(styles Styles) *Renderer {
	return &Renderer{
		styles: styles,
		width:  80,
	}
}

func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Render styles parsed blocks for terminal display.
func (r *Renderer) Render(text string) string {
	blocks := Parse(text)
	if len(blocks) == 0 {
		return ""
	}

	var result []string
	for _, block := range blocks {
		switch block.Kind {
		case BlockBlank:
			result = append(result, "")
		case BlockCode:
			result = append(result, r.styles.CodeBlock.Render(strings.Join(block.Lines, "\n")))
		case BlockHeader:
			result = append(result, r.styles.Header.Render(r.renderSpans(block.Spans)))
		case BlockSubheader:
			result = append(result, r.styles.Subheader.Render(r.renderSpans(block.Spans)))
		case BlockList:
			for _, item := range block.Items {
				result = append(result, r.styles.ListBullet.Render("•")+" "+r.styles.ListItem.Render(r.renderSpans(item)))
			}
		default:
			result = append(result, r.renderSpans(block.Spans))
		}
	}

	return strings.Join(result, "\n")
}

func (r *Renderer) renderSpans(spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case SpanBold:
			b.WriteString(r.styles.Bold.Render(span.Text))
		case SpanItalic:
			b.WriteString(r.styles.Italic.Render(span.Text))
		case SpanCode:
			b.WriteString(r.styles.Code.Render(span.Text))
		default:
			b.WriteString(r.styles.Text.Render(span.Text))
		}
	}
	return b.String()
}
