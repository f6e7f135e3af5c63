package domain

import "time"

// Status is the outcome of executing one candidate
type Status int

const (
	StatusPass Status = iota
	StatusFail
)

func (s Status) String() string {
	if s == StatusPass {
		return "PASS"
	}
	return "FAIL"
}

// Result represents the result of executing a test binary
type Result struct {
	Candidate Candidate
	Status    Status
	ExitCode  int           // -1 when the process never reported an exit status
	Stdout    string        // Captured standard output
	Stderr    string        // Captured standard error
	Err       error         // Launch or wait error, nil for a plain non-zero exit
	Duration  time.Duration // Time taken to execute
	TimedOut  bool
	Signaled  bool // Killed by a signal, e.g. a segfault; Err names the signal
}

// Passed reports whether the binary exited with status zero
func (r Result) Passed() bool {
	return r.Status == StatusPass
}

// Summary aggregates the results of a run
type Summary struct {
	Total  int
	Failed int
}

// Add records one result in the summary
func (s *Summary) Add(r Result) {
	s.Total++
	if !r.Passed() {
		s.Failed++
	}
}

// Passed returns the number of results that passed
func (s Summary) Passed() int {
	return s.Total - s.Failed
}

// OK reports whether every executed test passed
func (s Summary) OK() bool {
	return s.Failed == 0
}

// Summarize builds a Summary from a list of results
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Add(r)
	}
	return s
}
