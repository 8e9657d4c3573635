package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"usermgmt/internal/domain/models"
	"usermgmt/internal/repositories"
	"usermgmt/internal/utils"
)

// RosterService renders the user roster report as a PDF.
type RosterService struct {
	Repo      repositories.UserRepository
	RequestID string
}

// rosterBatchSize bounds each repository fetch while walking the full list.
const rosterBatchSize = 100

func (s RosterService) GenerateRoster() ([]byte, string, error) {
	users := []models.User{}
	cursor := ""
	for {
		page, err := s.Repo.NextPage(cursor, rosterBatchSize)
		if err != nil {
			return nil, "", err
		}
		users = append(users, page.Content...)
		if !page.HasNext || page.LastUserID == "" {
			break
		}
		cursor = page.LastUserID
	}

	utils.LogEvent(s.RequestID, "roster", "generate", fmt.Sprintf("users=%d", len(users)))
	return buildRosterPDF(users)
}

func buildRosterPDF(users []models.User) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("User Roster", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "USER ROSTER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(30, 8, "User ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 8, "First Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(55, 8, "Last Name", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Type", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, u := range users {
		pdf.CellFormat(30, 7, u.UserID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 7, u.FirstName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 7, u.LastName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, models.UserTypeLabel(u.UserType), "1", 1, "L", false, 0, "")
	}

	if len(users) == 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No users found")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("USER_ROSTER_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
