package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// execute runs the CLI with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"ref parse", []string{"ref", "parse", "Sheet1.A1:B2"}, "Sheet1.A1:B2\t[Sheet1.A1:.B2]\n"},
		{"ref parse list", []string{"ref", "parse", "--kind", "list", "A1:B2  C3:D4"}, "A1:B2 C3:D4\n"},
		{"ref parse list single cell", []string{"ref", "parse", "--kind", "list", "$Sheet1.$B$2 C3:D4"}, "$Sheet1.$B$2 C3:D4\n"},
		{"ref a1", []string{"ref", "a1", "'My Sheet'!$A$1:$D$10"}, "'My Sheet'.$A$1:$D$10\t['My Sheet'.$A$1:.$D$10]\n"},
		{"formula", []string{"formula", "=SUM(A1:A2)"}, "of:=SUM([.A1:.A2])\n"},
		{"value", []string{"value", "--kind", "date", "2000-01-01T11:22:33.5"}, "date\t2000-01-01T11:22:33.500\n"},
		{"value bool", []string{"value", "--kind", "boolean", "true"}, "boolean\ttrue\n"},
		{"condition", []string{"condition", "cell-content()>5"}, "cell-content()>5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := [][]string{
		{"ref", "parse", "A"},
		{"ref", "parse", "--kind", "sheet", "A1"},
		{"value", "--kind", "uint32", "--", "-1"},
		{"value", "--kind", "text", "x"},
		{"condition", "cell-content()"},
		{"extract", "--mode", "full", "book.xlsx"},
		{"lint", "book.txt"},
		{"--log-level", "loud", "ref", "parse", "A1"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := execute(t, args...); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestExtractCommand(t *testing.T) {
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "Name")
	f.SetCellValue("Sheet1", "B1", 42)
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$1",
		Scope:    "Sheet1",
	}); err != nil {
		t.Fatalf("Failed to set print area: %v", err)
	}
	dir := t.TempDir()
	input := filepath.Join(dir, "book.xlsx")
	if err := f.SaveAs(input); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	f.Close()

	out, err := execute(t, "extract", input)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	var wb map[string]any
	if err := json.Unmarshal([]byte(out), &wb); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", out, err)
	}
	if wb["book_name"] != "book.xlsx" {
		t.Errorf("Expected book_name 'book.xlsx', got %v", wb["book_name"])
	}

	areasDir := filepath.Join(dir, "areas")
	if _, err := execute(t, "extract", "--print-areas-dir", areasDir, input); err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(areasDir, "Sheet1_area1.json"))
	if err != nil {
		t.Fatalf("Expected print area file: %v", err)
	}
	if !strings.Contains(string(data), `"sheet_name":"Sheet1"`) {
		t.Errorf("Expected sheet_name in %s", data)
	}
}
