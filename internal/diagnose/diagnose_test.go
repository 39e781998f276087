package diagnose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/backmassage/scanstamp/internal/term"
)

type stubAvailability bool

func (s stubAvailability) Available() bool { return bool(s) }

func TestRun_ReportsEveryTool(t *testing.T) {
	con := &term.Recorder{}
	Run(con, stubAvailability(false))

	require.Equal(t, "Scanstamp diagnose", con.Lines[0])
	require.Len(t, con.Lines, 2+len(tools))
	for i, tool := range tools {
		require.Contains(t, con.Lines[i+1], tool+":")
	}
	require.Equal(t, "LLM available: missing", con.Lines[len(con.Lines)-1])
}

func TestRun_LLMAvailable(t *testing.T) {
	con := &term.Recorder{}
	Run(con, stubAvailability(true))
	require.Equal(t, "LLM available: OK", con.Lines[len(con.Lines)-1])
}
