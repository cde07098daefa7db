package pipeline

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/joseph-ayodele/threat-mapper/constants"
)

// ExtractText pulls plain text out of a document's bytes based on its
// file extension. Plain text and markdown pass through; HTML goes
// through readability so boilerplate does not become evidence.
func ExtractText(r io.Reader, filename string) (string, error) {
	ext := constants.NormalizeExt(extOf(filename))
	switch ext {
	case "txt", "md":
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read document: %w", err)
		}
		return string(b), nil
	case "html", "htm":
		return extractHTML(r)
	default:
		return "", fmt.Errorf("unknown file suffix: %q", ext)
	}
}

func extractHTML(r io.Reader) (string, error) {
	pageURL, _ := url.Parse("file:///document.html")
	article, err := readability.FromReader(r, pageURL)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return article.TextContent, nil
}

func extOf(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return ""
	}
	return filename[idx:]
}
