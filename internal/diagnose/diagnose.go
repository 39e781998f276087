// Package diagnose reports the availability of the optional external tools
// and title backends. Informational only; a missing tool is never fatal.
package diagnose

import (
	"os/exec"

	"github.com/backmassage/scanstamp/internal/term"
)

// Availability is the minimal backend probe needed by Run, satisfied by the
// llm provider chain.
type Availability interface {
	Available() bool
}

// Tools probed for extraction support.
var tools = []string{"pdftotext", "tesseract", "sgpt"}

// Run prints one OK/missing line per optional tool plus the overall title
// backend availability.
func Run(con term.Console, llm Availability) {
	con.Print("Scanstamp diagnose")
	for _, tool := range tools {
		if _, err := exec.LookPath(tool); err != nil {
			con.Warn("%s: missing", tool)
		} else {
			con.Success("%s: OK", tool)
		}
	}
	if llm.Available() {
		con.Success("LLM available: OK")
	} else {
		con.Warn("LLM available: missing")
	}
}
