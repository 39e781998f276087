package term

import "fmt"

// Recorder is a Console test double. It captures every emitted line and
// answers Confirm from a scripted queue (default answer: no, matching the
// conservative prompt semantics).
type Recorder struct {
	Lines   []string
	Prompts []string
	Answers []bool
}

func (r *Recorder) record(format string, args ...any) {
	r.Lines = append(r.Lines, fmt.Sprintf(format, args...))
}

func (r *Recorder) Print(format string, args ...any)   { r.record(format, args...) }
func (r *Recorder) Info(format string, args ...any)    { r.record(format, args...) }
func (r *Recorder) Success(format string, args ...any) { r.record(format, args...) }
func (r *Recorder) Warn(format string, args ...any)    { r.record(format, args...) }
func (r *Recorder) Error(format string, args ...any)   { r.record(format, args...) }

// Confirm records the prompt and pops the next scripted answer.
func (r *Recorder) Confirm(format string, args ...any) bool {
	r.Prompts = append(r.Prompts, fmt.Sprintf(format, args...))
	if len(r.Answers) == 0 {
		return false
	}
	answer := r.Answers[0]
	r.Answers = r.Answers[1:]
	return answer
}
