package main

import (
	"bytes"
	"io"
	"testing"
)

func TestRootCmd_RegistersCommands(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{
		{"import", "quotazioni"},
		{"import", "giocatori"},
		{"backup"},
		{"restore"},
		{"stats", "general"},
		{"stats", "lega"},
		{"stats", "comparative"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd == root {
			t.Fatalf("command %v not registered: %v", path, err)
		}
	}
}

func TestImportCmd_RequiresFileArgument(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"import", "quotazioni"})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected error without file argument")
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, map[string]int{"squadre": 2}); err != nil {
		t.Fatalf("printJSON error: %v", err)
	}
	want := "{\n  \"squadre\": 2\n}\n"
	if buf.String() != want {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
