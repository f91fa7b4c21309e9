package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseArguments(t *testing.T) {
	config, err := parseArguments([]string{"-keywords", " in, between ,", "-ci", "-format", "json", "a.expr", "b.expr"})
	if err != nil {
		t.Fatalf("parseArguments failed: %v", err)
	}
	if strings.Join(config.Keywords, "|") != "in|between" {
		t.Errorf("Expected keywords in|between, got %v", config.Keywords)
	}
	if !config.CaseInsensitive || config.Format != "json" || config.Mode != "tokens" {
		t.Errorf("Unexpected configuration %+v", config)
	}
	if len(config.Files) != 2 {
		t.Errorf("Expected 2 files, got %v", config.Files)
	}

	for _, args := range [][]string{
		{"-mode", "gui"},
		{"-format", "yaml"},
		{"-workers", "-1"},
	} {
		if _, err := parseArguments(args); err == nil {
			t.Errorf("Expected %v to be rejected", args)
		}
	}
}

func TestRunTokens_Text(t *testing.T) {
	var out bytes.Buffer
	config := Configuration{Format: "text", Expr: "a in [1]", Keywords: []string{"in"}, Workers: 1}

	if err := runTokens(config, &out); err != nil {
		t.Fatalf("runTokens failed: %v", err)
	}
	if strings.Count(out.String(), "\n") != 5 {
		t.Errorf("Expected 5 token lines, got:\n%s", out.String())
	}
}

func TestRunTokens_JSONFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.expr")
	b := filepath.Join(dir, "b.expr")
	if err := os.WriteFile(a, []byte("x >= 2.5m"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("  "), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	config := Configuration{Format: "json", Files: []string{a, b}, Workers: 2}
	if err := runTokens(config, &out); err != nil {
		t.Fatalf("runTokens failed: %v", err)
	}

	dec := json.NewDecoder(&out)
	var first, second struct {
		Input  string           `json:"input"`
		Tokens []map[string]any `json:"tokens"`
	}
	if err := dec.Decode(&first); err != nil {
		t.Fatal(err)
	}
	if err := dec.Decode(&second); err != nil {
		t.Fatal(err)
	}

	if first.Input != a || len(first.Tokens) != 3 {
		t.Fatalf("Unexpected first result %+v", first)
	}
	if first.Tokens[2]["type"] != "Decimal" || first.Tokens[2]["value"] != "2.5" {
		t.Errorf("Expected decimal 2.5 as string, got %v", first.Tokens[2])
	}
	if second.Input != b || second.Tokens == nil || len(second.Tokens) != 0 {
		t.Errorf("Expected empty token list for blank file, got %+v", second)
	}
}

func TestRunTokens_Error(t *testing.T) {
	var out bytes.Buffer
	err := runTokens(Configuration{Format: "text", Expr: "'abc"}, &out)
	if err == nil || !strings.HasPrefix(err.Error(), "lexing expr: ") {
		t.Errorf("Expected error naming the input, got %v", err)
	}
}
