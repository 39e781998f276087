package pipeline

import (
	"context"

	"github.com/backmassage/scanstamp/internal/config"
	"github.com/backmassage/scanstamp/internal/extract"
	"github.com/backmassage/scanstamp/internal/llm"
	"github.com/backmassage/scanstamp/internal/naming"
)

// TitleSupplier yields document titles from excerpts. The production
// implementation is the llm provider chain; tests substitute fakes so the
// orchestration can run without any network or external binary.
type TitleSupplier interface {
	Available() bool
	Derive(ctx context.Context, excerpt, fallback string) llm.Result
}

// ExtractFunc matches extract.Extract. Injected so tests can feed canned
// excerpts for files that have no extractable content.
type ExtractFunc func(ctx context.Context, path string, mode config.ExcerptMode, maxChars int, ocr bool) extract.Result

// Collaborators bundles the two injectable dependencies of a batch run.
type Collaborators struct {
	Titles  TitleSupplier
	Extract ExtractFunc
}

// DefaultCollaborators wires the production implementations.
func DefaultCollaborators() Collaborators {
	return Collaborators{
		Titles:  llm.DefaultChain(),
		Extract: extract.Extract,
	}
}

// smartTitle derives a title from file content. Privacy flags and a missing
// backend both degrade to the existing filename title, never to an error.
func smartTitle(ctx context.Context, b *batch, path, excerpt string) string {
	fallback := naming.ExistingTitle(path)

	if b.cfg.NoLLM || b.cfg.LocalOnly || !b.collab.Titles.Available() {
		return fallback
	}

	result := b.collab.Titles.Derive(ctx, excerpt, fallback)
	if result.Title == "" {
		return fallback
	}
	return result.Title
}
