package scraper

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ExtractText reduces an HTML document to its visible text: tags are
// stripped, script/style/noscript/template contents are skipped, and text
// nodes are joined with newlines. Non-UTF-8 documents are decoded using the
// charset declared in contentType or sniffed from the body.
func ExtractText(r io.Reader, contentType string, maxBytes int64) (string, error) {
	limited := io.LimitReader(r, maxBytes)

	decoded, err := charset.NewReader(limited, contentType)
	if err != nil {
		return "", fmt.Errorf("detecting charset: %w", err)
	}

	tokenizer := html.NewTokenizer(decoded)

	var parts []string
	skipDepth := 0

	for {
		tokenType := tokenizer.Next()
		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return strings.Join(parts, "\n"), nil
			}
			return "", fmt.Errorf("parsing html: %w", tokenizer.Err())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isInvisibleTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isInvisibleTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text != "" {
				parts = append(parts, text)
			}
		}
	}
}

func isInvisibleTag(name string) bool {
	switch name {
	case "script", "style", "noscript", "template":
		return true
	}
	return false
}
