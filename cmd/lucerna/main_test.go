package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestConfigInitCommand(t *testing.T) {
	tmp := t.TempDir() + "/lucerna.yaml"

	rootCmd.SetArgs([]string{"config", "init", tmp})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "theme:") {
		t.Errorf("generated settings missing theme key:\n%s", data)
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	tmp := t.TempDir() + "/lucerna.yaml"
	if err := os.WriteFile(tmp, []byte("theme: neon\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"config", "init", tmp})
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err == nil {
		t.Error("init over an existing file should fail")
	}
}

func TestConfigValidateCommand(t *testing.T) {
	tmp := t.TempDir() + "/lucerna.yaml"
	content := []byte(`theme: light
showDate: false
errorHandling: fallback
`)
	if err := os.WriteFile(tmp, content, 0644); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetArgs([]string{"config", "validate", tmp})
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
}

func TestVersionCommand(t *testing.T) {
	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
}
