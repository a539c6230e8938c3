package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// readJackFile loads a source file, enforcing the .jack extension so the
// default output path never clobbers the input.
func readJackFile(path string) (string, error) {
	if filepath.Ext(path) != ".jack" {
		return "", fmt.Errorf("%s: input must have a .jack extension", path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// writeResult stores rendered output at the -o path, or next to the input
// with the given suffix replacing the .jack extension.
func writeResult(inputPath, suffix, content string) error {
	target := outPath
	if target == "" {
		target = strings.TrimSuffix(inputPath, ".jack") + suffix
	}
	if target == "-" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	return os.WriteFile(target, []byte(content), 0o644)
}
