package domain

// CaseFailure represents a failed GoogleTest case parsed from a binary's output
type CaseFailure struct {
	Case    TestCase
	Binary  string // Display name of the binary that reported it
	Message string // Assertion output printed between RUN and FAILED
}
