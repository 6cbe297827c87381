package harness

import (
	"fmt"
	"os"
	"strings"

	"github.com/roach88/ts2abc/internal/backend"
)

// evaluate checks one run against the scenario's expectations and returns a
// message for every expectation that does not hold.
func evaluate(s *Scenario, dir string, run Execution) []string {
	var errs []string
	exp := s.Expect

	if run.ExitCode != exp.Exit {
		errs = append(errs, fmt.Sprintf("exit code: expected %d, got %d", exp.Exit, run.ExitCode))
	}

	errs = append(errs, checkStream("stdout", run.Stdout, exp.Stdout, exp.StdoutContains)...)
	errs = append(errs, checkStream("stderr", run.Stderr, exp.Stderr, exp.StderrContains)...)

	if exp.StdinRead != nil {
		read := run.StdinReads > 0
		if read != *exp.StdinRead {
			errs = append(errs, fmt.Sprintf("stdin read: expected %t, got %t", *exp.StdinRead, read))
		}
	}

	errs = append(errs, checkCalls(s, dir, run.Calls)...)

	if exp.Artifact != "" {
		if err := checkArtifact(expand(exp.Artifact, dir)); err != nil {
			errs = append(errs, err.Error())
		}
	}

	return errs
}

func checkStream(name, got string, exact *string, fragments []string) []string {
	var errs []string
	if exact != nil && got != *exact {
		errs = append(errs, fmt.Sprintf("%s: expected %q, got %q", name, *exact, got))
	}
	for _, f := range fragments {
		if !strings.Contains(got, f) {
			errs = append(errs, fmt.Sprintf("%s: missing %q in %q", name, f, got))
		}
	}
	return errs
}

func checkCalls(s *Scenario, dir string, calls []backend.Request) []string {
	want := s.Expect.Calls
	if len(calls) != len(want) {
		return []string{fmt.Sprintf("backend calls: expected %d, got %d", len(want), len(calls))}
	}

	var errs []string
	for i, w := range want {
		got := calls[i]

		payload := s.Files[w.PayloadFile]
		if w.Payload != nil {
			payload = *w.Payload
		}
		if got.Payload != payload {
			errs = append(errs, fmt.Sprintf("calls[%d].payload: expected %q, got %q", i, payload, got.Payload))
		}
		if output := expand(w.Output, dir); got.OutputPath != output {
			errs = append(errs, fmt.Sprintf("calls[%d].output: expected %q, got %q", i, output, got.OutputPath))
		}
		if int(got.OptLevel) != w.OptLevel {
			errs = append(errs, fmt.Sprintf("calls[%d].opt_level: expected %d, got %d", i, w.OptLevel, int(got.OptLevel)))
		}
		if got.OptLogLevel != w.OptLogLevel {
			errs = append(errs, fmt.Sprintf("calls[%d].opt_log_level: expected %q, got %q", i, w.OptLogLevel, got.OptLogLevel))
		}
	}
	return errs
}

func checkArtifact(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("artifact: %w", err)
	}
	defer f.Close()

	if _, _, err := backend.ReadArtifact(f); err != nil {
		return fmt.Errorf("artifact %s: %w", path, err)
	}
	return nil
}
