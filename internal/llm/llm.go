// Package llm isolates all title-model calls behind a minimal, testable
// surface. Backends are tried in a fixed order and every failure degrades
// to the caller's fallback title; nothing in here is ever fatal.
//
// Model output is treated as untrusted input and cleaned before use.
package llm

import (
	"context"
	"strings"
	"time"
)

// Result carries the derived title plus a raw diagnostic string describing
// which backend produced it (or why the fallback was used).
type Result struct {
	Title string
	Raw   string
}

// Provider is one title backend. Available must be cheap and side-effect
// free; DeriveTitle may block up to the chain's timeout.
type Provider interface {
	Name() string
	Available() bool
	DeriveTitle(ctx context.Context, excerpt string) (string, error)
}

// titlePrompt is the instruction sent ahead of the excerpt.
const titlePrompt = "Generate a short descriptive title (4-12 words) for the following document. " +
	"Reply with the title only: no quotes, no date, no file extension."

// Chain tries providers in order until one yields a usable title. The
// resolution order is an explicit policy, not nested conditionals, so tests
// can exercise it with fake providers.
type Chain struct {
	providers []Provider
	timeout   time.Duration
}

// NewChain builds a chain over the given providers with the given per-call
// timeout.
func NewChain(timeout time.Duration, providers ...Provider) *Chain {
	return &Chain{providers: providers, timeout: timeout}
}

// DefaultChain is the production policy: OpenAI first, sgpt second.
func DefaultChain() *Chain {
	return NewChain(30*time.Second, &openAIProvider{}, &sgptProvider{})
}

// Available reports whether any backend can be reached.
func (c *Chain) Available() bool {
	for _, p := range c.providers {
		if p.Available() {
			return true
		}
	}
	return false
}

// Derive asks each available provider for a title. An empty or
// whitespace-only excerpt short-circuits to the fallback; so does a chain
// where every backend errors or returns nothing usable.
func (c *Chain) Derive(ctx context.Context, excerpt, fallback string) Result {
	if strings.TrimSpace(excerpt) == "" {
		return Result{Title: fallback, Raw: "(fallback: empty excerpt)"}
	}

	for _, p := range c.providers {
		if !p.Available() {
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		raw, err := p.DeriveTitle(callCtx, excerpt)
		cancel()
		if err != nil {
			continue
		}

		if title := CleanTitle(raw); title != "" {
			return Result{Title: title, Raw: p.Name() + ": " + raw}
		}
	}

	return Result{Title: fallback, Raw: "(fallback: no backend produced a title)"}
}

// CleanTitle reduces raw model output to a single usable line: the first
// non-blank line, with one layer of surrounding quotes stripped.
func CleanTitle(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		return stripQuotes(line)
	}
	return ""
}

func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
