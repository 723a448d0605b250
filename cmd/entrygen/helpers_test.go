package main

import (
	"bytes"
	"testing"
)

func overrideExit(t *testing.T) *int {
	t.Helper()

	code := -1
	old := exitFn
	exitFn = func(c int) { code = c }
	t.Cleanup(func() { exitFn = old })

	return &code
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()

	return out.String(), err
}
