package extract

// External extraction tools. Both are optional: a missing binary or a
// failed invocation degrades to an empty excerpt with a method tag so the
// caller can fall back to the existing filename.

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/backmassage/scanstamp/internal/config"
)

// toolTimeout bounds every external extractor invocation.
const toolTimeout = 30 * time.Second

// extractPDF shells out to pdftotext, reading the converted text from
// stdout ("-" output argument).
func extractPDF(ctx context.Context, path string, mode config.ExcerptMode, maxChars int) Result {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return Result{Method: "pdftotext-missing"}
	}

	out, err := runTool(ctx, "pdftotext", "-q", path, "-")
	if err != nil {
		return Result{Method: "pdftotext", Err: err}
	}
	return buildExcerpt(out, "pdftotext", mode, maxChars)
}

// extractOCR shells out to tesseract for image-based documents.
func extractOCR(ctx context.Context, path string, mode config.ExcerptMode, maxChars int) Result {
	if _, err := exec.LookPath("tesseract"); err != nil {
		return Result{Method: "ocr-missing"}
	}

	out, err := runTool(ctx, "tesseract", path, "stdout")
	if err != nil {
		return Result{Method: "ocr", Err: err}
	}
	return buildExcerpt(out, "ocr", mode, maxChars)
}

func runTool(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}
