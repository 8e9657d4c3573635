package services

import (
	"bytes"
	"strings"
	"testing"

	"usermgmt/internal/domain/models"
)

func TestBuildRosterPDF(t *testing.T) {
	users := []models.User{
		{UserID: "ADMIN001", FirstName: "Alice", LastName: "Admin", UserType: "A"},
		{UserID: "USER0001", FirstName: "Bob", LastName: "Regular", UserType: "U"},
	}

	pdfBytes, filename, err := buildRosterPDF(users)
	if err != nil {
		t.Fatalf("buildRosterPDF error: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF document")
	}
	if !strings.HasPrefix(filename, "USER_ROSTER_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestBuildRosterPDFEmptyList(t *testing.T) {
	pdfBytes, _, err := buildRosterPDF(nil)
	if err != nil {
		t.Fatalf("buildRosterPDF error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatalf("expected a document even with no users")
	}
}
