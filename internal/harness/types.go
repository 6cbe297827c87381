package harness

import "github.com/roach88/ts2abc/internal/backend"

// Execution captures one run of the command.
type Execution struct {
	ExitCode   int               `json:"exit_code"`
	Stdout     string            `json:"stdout"`
	Stderr     string            `json:"stderr"`
	StdinReads int               `json:"stdin_reads"`
	Calls      []backend.Request `json:"calls"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every expectation held on both runs.
	Pass bool `json:"pass"`

	// Runs holds the first and the repeated execution.
	Runs []Execution `json:"runs"`

	// Errors contains validation error messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
