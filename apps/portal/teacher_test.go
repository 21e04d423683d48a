package main

import (
	"strings"
	"testing"

	"github.com/edumanage/portal/core/academics"
	"github.com/edumanage/portal/core/school"
)

func TestMarkLines(t *testing.T) {
	roster := []school.Student{
		{ID: "s1", FirstName: "Brian", LastName: "Otieno"},
		{ID: "s2", FirstName: "Mary", LastName: "Wanjiku"},
	}
	marks := []academics.Mark{
		{StudentID: "s1", Score: 72},
		{StudentID: "s9", Score: 55}, // transferred out, still on the sheet
	}

	lines := markLines(roster, marks)
	if len(lines) != 3 {
		t.Fatalf("markLines() = %d lines, want 3:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[0], "Brian Otieno") || !strings.Contains(lines[0], "72.0") {
		t.Errorf("lines[0] = %q, want the s1 mark under the student's name", lines[0])
	}
	if !strings.Contains(lines[1], school.UnknownStudentLabel) {
		t.Errorf("lines[1] = %q, want %q for a mark outside the roster", lines[1], school.UnknownStudentLabel)
	}
	if !strings.Contains(lines[2], "Mary Wanjiku") || !strings.Contains(lines[2], "(no mark)") {
		t.Errorf("lines[2] = %q, want the unmarked student flagged", lines[2])
	}
}
