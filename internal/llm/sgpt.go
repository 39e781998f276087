package llm

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// sgptProvider drives the shell-gpt executable as a secondary backend.
// The excerpt is piped through stdin so document content never appears in
// the process list.
type sgptProvider struct{}

func (p *sgptProvider) Name() string { return "sgpt" }

func (p *sgptProvider) Available() bool {
	_, err := exec.LookPath("sgpt")
	return err == nil
}

func (p *sgptProvider) DeriveTitle(ctx context.Context, excerpt string) (string, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, "sgpt", titlePrompt)
	cmd.Stdin = strings.NewReader(excerpt)
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return stdout.String(), nil
}
