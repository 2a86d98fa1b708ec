package extract

import (
	"bytes"
	"html"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// docxText extracts paragraph texts from a DOCX document, joined by
// newlines in document order.
func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", ErrReadFailed(err)
	}
	defer doc.Close()

	return flattenDocxContent(doc.Editable().GetContent()), nil
}

// flattenDocxContent reduces the raw document.xml markup to plain text:
// one line per paragraph, text runs concatenated in order. Run text is
// XML-escaped in the markup, so entities are decoded on the way out.
func flattenDocxContent(content string) string {
	var paragraphs []string
	var current strings.Builder

	for rest := content; ; {
		tagStart := strings.IndexByte(rest, '<')
		if tagStart < 0 {
			break
		}
		tagEnd := strings.IndexByte(rest[tagStart:], '>')
		if tagEnd < 0 {
			break
		}
		tag := rest[tagStart : tagStart+tagEnd+1]

		switch {
		case strings.HasPrefix(tag, "<w:t>") || strings.HasPrefix(tag, "<w:t "):
			after := rest[tagStart+tagEnd+1:]
			if close := strings.Index(after, "</w:t>"); close >= 0 {
				current.WriteString(after[:close])
				rest = after[close:]
				continue
			}
		case tag == "</w:p>":
			paragraphs = append(paragraphs, current.String())
			current.Reset()
		}
		rest = rest[tagStart+tagEnd+1:]
	}

	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}
	return html.UnescapeString(strings.Join(paragraphs, "\n"))
}
