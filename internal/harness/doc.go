// Package harness runs end-to-end ts2abc scenarios described in YAML.
//
// A scenario fixes the command line, the files present in a scratch
// directory, the bytes on standard input and the behaviour of the backend,
// then states what the run must produce.
//
// # Scenario Format
//
//	name: file_mode_default_level
//	description: "File mode forwards the whole file to the backend"
//	args: ["${dir}/test.json", "test.abc"]
//	files:
//	  test.json: |
//	    [{"t": 2, "s": "hello"}]
//	stdin: "optional bytes on standard input"
//	backend: record        # record (default) | fail | emit
//	expect:
//	  exit: 0
//	  stdout: ""           # exact match, optional
//	  stderr_contains: []  # substrings, optional
//	  stdin_read: false    # optional
//	  calls:
//	    - payload_file: test.json
//	      output: test.abc
//	      opt_level: 0
//	      opt_log_level: error
//	  artifact: "${dir}/test.abc"   # emit backend only
//
// "${dir}" in args, call outputs and the artifact path expands to the
// scenario's scratch directory.
//
// Every scenario is executed twice. The second run must issue exactly the
// same backend calls as the first.
package harness
