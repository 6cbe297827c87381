package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Backend modes for a scenario.
const (
	BackendRecord = "record" // record calls and succeed
	BackendFail   = "fail"   // record calls and fail every one
	BackendEmit   = "emit"   // record calls and run the reference emitter
)

// Scenario defines one end-to-end run of the ts2abc command.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Args is the argument vector without the program name.
	Args []string `yaml:"args"`

	// Files are written into the scratch directory before the run.
	// Keys are paths relative to that directory.
	Files map[string]string `yaml:"files,omitempty"`

	// Stdin is the content of standard input. Empty when unset.
	Stdin string `yaml:"stdin,omitempty"`

	// Backend selects the generator behaviour; defaults to BackendRecord.
	Backend string `yaml:"backend,omitempty"`

	// Expect describes the required outcome.
	Expect Expectation `yaml:"expect"`
}

// Expectation is the required outcome of a scenario.
type Expectation struct {
	// Exit is the expected process exit code.
	Exit int `yaml:"exit"`

	// Stdout and Stderr, when set, must match exactly.
	Stdout *string `yaml:"stdout,omitempty"`
	Stderr *string `yaml:"stderr,omitempty"`

	// StdoutContains and StderrContains list required substrings.
	StdoutContains []string `yaml:"stdout_contains,omitempty"`
	StderrContains []string `yaml:"stderr_contains,omitempty"`

	// StdinRead, when set, states whether standard input was read at all.
	StdinRead *bool `yaml:"stdin_read,omitempty"`

	// Calls lists the backend requests in order. An empty list means the
	// backend must not be called.
	Calls []ExpectedCall `yaml:"calls"`

	// Artifact, when set, must name a readable, valid artifact after the run.
	Artifact string `yaml:"artifact,omitempty"`
}

// ExpectedCall is one expected backend request.
type ExpectedCall struct {
	// Payload is the literal expected payload.
	Payload *string `yaml:"payload,omitempty"`

	// PayloadFile names a scenario file whose content is the expected payload.
	PayloadFile string `yaml:"payload_file,omitempty"`

	Output      string `yaml:"output"`
	OptLevel    int    `yaml:"opt_level"`
	OptLogLevel string `yaml:"opt_log_level"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "call:" vs "calls:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch s.Backend {
	case "", BackendRecord, BackendFail, BackendEmit:
	default:
		return fmt.Errorf("backend %q: must be one of %s, %s, %s", s.Backend, BackendRecord, BackendFail, BackendEmit)
	}

	for name := range s.Files {
		if name == "" || filepath.IsAbs(name) {
			return fmt.Errorf("file %q: must be a relative path", name)
		}
	}

	for i, c := range s.Expect.Calls {
		if c.Payload != nil && c.PayloadFile != "" {
			return fmt.Errorf("calls[%d]: payload and payload_file are mutually exclusive", i)
		}
		if c.PayloadFile != "" {
			if _, ok := s.Files[c.PayloadFile]; !ok {
				return fmt.Errorf("calls[%d]: payload_file %q is not in files", i, c.PayloadFile)
			}
		}
	}

	if s.Expect.Artifact != "" && s.Backend != BackendEmit {
		return fmt.Errorf("artifact expectations need backend %q", BackendEmit)
	}

	return nil
}
