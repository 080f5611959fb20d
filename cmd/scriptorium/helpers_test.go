package main

import (
	"testing"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
	"scriptorium/internal/sla"
)

func newFilterTestCommand() (*cobra.Command, *filterFlags) {
	flags := &filterFlags{}
	cmd := &cobra.Command{Use: "probe", RunE: func(*cobra.Command, []string) error { return nil }}
	flags.register(cmd)
	return cmd, flags
}

func TestFilterFlagsCriteria(t *testing.T) {
	cmd, flags := newFilterTestCommand()
	cmd.SetArgs([]string{
		"--number", " MS-1 ",
		"--stage", "receipt",
		"--stage", "Quality-Review",
		"--department", "access-services",
		"--status", "on-time",
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	criteria, err := flags.criteria()
	if err != nil {
		t.Fatalf("criteria: %v", err)
	}
	if criteria.Number != "MS-1" {
		t.Fatalf("expected trimmed number, got %q", criteria.Number)
	}
	if len(criteria.Stages) != 2 || criteria.Stages[1] != registry.StageQualityCheck {
		t.Fatalf("unexpected stages: %v", criteria.Stages)
	}
	if len(criteria.Departments) != 1 || criteria.Departments[0] != registry.DepartmentAccess {
		t.Fatalf("unexpected departments: %v", criteria.Departments)
	}
	if len(criteria.Statuses) != 1 || criteria.Statuses[0] != sla.StatusOnTime {
		t.Fatalf("unexpected statuses: %v", criteria.Statuses)
	}
}

func TestFilterFlagsRejectUnknownTokens(t *testing.T) {
	cases := [][]string{
		{"--stage", "binding"},
		{"--department", "shipping"},
		{"--status", "overdue"},
	}
	for _, args := range cases {
		cmd, flags := newFilterTestCommand()
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("parse flags %v: %v", args, err)
		}
		if _, err := flags.criteria(); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestParseRecordID(t *testing.T) {
	if id, err := parseRecordID(" 42 "); err != nil || id != 42 {
		t.Fatalf("parseRecordID(42) = %d, %v", id, err)
	}
	for _, bad := range []string{"", "abc", "0", "-3"} {
		if _, err := parseRecordID(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestOrDash(t *testing.T) {
	if orDash("") != "-" || orDash("  ") != "-" {
		t.Fatal("expected dash for empty values")
	}
	if orDash("x") != "x" {
		t.Fatal("expected passthrough for non-empty values")
	}
}
