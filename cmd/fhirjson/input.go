package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type input struct {
	name string
	data []byte
}

// readInputs expands file arguments and glob patterns. No arguments, or
// "-", reads standard input.
func readInputs(args []string, stdin io.Reader) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var inputs []input
	for _, arg := range args {
		if arg == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			inputs = append(inputs, input{name: "stdin", data: data})
			continue
		}

		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", arg)
		}
		for _, path := range matches {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			inputs = append(inputs, input{name: path, data: data})
		}
	}
	return inputs, nil
}
