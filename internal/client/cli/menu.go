package cli

import (
	"context"
	"os"

	"usermgmt/internal/client"
	"usermgmt/internal/domain/models"
)

func (a *App) menuScreen(ctx context.Context, user client.SessionUser) error {
	for {
		a.printf("")
		a.printf("===== MAIN MENU =================== %s", clock())
		a.printf("Signed on as %s (%s)", user.UserID, typeLabel(user.UserType))
		if user.UserType == models.UserTypeAdmin {
			a.printf("  1) User list")
			a.printf("  2) Add user")
			a.printf("  3) Export user roster (PDF)")
		}
		a.printf("  9) Sign off")
		a.printf("  0) Exit")

		choice, err := a.readLine("Option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			if user.UserType != models.UserTypeAdmin {
				a.printf("Option not available")
				continue
			}
			if err := a.listScreen(ctx); err != nil {
				return err
			}
		case "2":
			if user.UserType != models.UserTypeAdmin {
				a.printf("Option not available")
				continue
			}
			if err := a.addScreen(ctx); err != nil {
				return err
			}
		case "3":
			if user.UserType != models.UserTypeAdmin {
				a.printf("Option not available")
				continue
			}
			a.exportRoster(ctx)
		case "9":
			if err := a.store.Clear(); err != nil {
				a.printf("Failed to clear session: %v", err)
				continue
			}
			a.printf("Signed off.")
			return nil
		case "0", "x", "exit", "quit":
			return errExit
		default:
			a.printf("Unknown option")
		}
	}
}

func (a *App) exportRoster(ctx context.Context) {
	pdfBytes, err := a.api.ExportRoster(ctx)
	if err != nil {
		a.printf("%v", err)
		return
	}

	name := "user_roster.pdf"
	if err := os.WriteFile(name, pdfBytes, 0o644); err != nil {
		a.printf("Failed to write %s: %v", name, err)
		return
	}
	a.printf("Roster written to %s", name)
}
