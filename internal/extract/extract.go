// Package extract converts files into short text excerpts suitable for
// title generation and document-date detection.
//
// Extraction never mutates inputs and fails safely: unsupported formats and
// tool failures produce an empty excerpt with a method tag, never an abort.
package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/scanstamp/internal/config"
)

// Result is the outcome of one extraction attempt. Method tags which
// extractor ran (or why none could).
type Result struct {
	Excerpt string
	Method  string
	Err     error
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// Extract reads path and returns a bounded excerpt built with the given
// strategy. Plain text and markdown are read directly; PDFs go through
// pdftotext; images go through tesseract when ocr is set. Anything else
// returns an empty excerpt tagged "unsupported".
func Extract(ctx context.Context, path string, mode config.ExcerptMode, maxChars int, ocr bool) Result {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".txt" || ext == ".md":
		return extractTextFile(path, mode, maxChars)
	case ext == ".pdf":
		return extractPDF(ctx, path, mode, maxChars)
	case imageExts[ext]:
		if !ocr {
			return Result{Method: "unsupported"}
		}
		return extractOCR(ctx, path, mode, maxChars)
	default:
		return Result{Method: "unsupported"}
	}
}

func extractTextFile(path string, mode config.ExcerptMode, maxChars int) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Method: "text", Err: err}
	}
	return buildExcerpt(string(data), "text", mode, maxChars)
}

// buildExcerpt applies the excerpt strategy and char budget to raw text.
func buildExcerpt(text, method string, mode config.ExcerptMode, maxChars int) Result {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{Method: method + "-empty"}
	}

	var excerpt string
	switch mode {
	case config.ExcerptRaw:
		excerpt = text
	case config.ExcerptFirstLine:
		excerpt = firstLine(text)
	case config.ExcerptHeadings:
		excerpt = headings(text)
	default: // ExcerptFirstParas
		excerpt = firstParagraphs(text)
	}

	excerpt = truncate(strings.TrimSpace(excerpt), maxChars)
	return Result{Excerpt: excerpt, Method: method}
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// headings collects markdown heading lines. Text without headings falls
// back to the first paragraph block.
func headings(text string) string {
	var hs []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			hs = append(hs, strings.TrimSpace(strings.TrimLeft(trimmed, "#")))
		}
	}
	if len(hs) == 0 {
		return firstParagraphs(text)
	}
	return strings.Join(hs, "\n")
}

// firstParagraphs returns the first paragraph-like chunk of a text blob.
func firstParagraphs(text string) string {
	for _, part := range strings.Split(text, "\n\n") {
		if p := strings.TrimSpace(part); p != "" {
			return p
		}
	}
	return text
}

// truncate bounds the excerpt to maxChars characters (not bytes), trimming
// trailing whitespace left by the cut.
func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return strings.TrimRight(string(runes[:maxChars]), " \t\n")
}
