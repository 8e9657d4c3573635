package cli

import (
	"context"
	"strings"

	"usermgmt/internal/client/controller"
)

// listScreen drives the user list: search, cursor paging, row intents.
//
// Commands:
//
//	n                next page
//	p                previous page
//	f <term>         search by user ID prefix
//	c                clear search
//	<userId> <u|d>   mark a row for update or delete
//	go               process marked rows (first marked row wins)
//	x                return to the menu
func (a *App) listScreen(ctx context.Context) error {
	lc := controller.NewListController(a.api)
	if err := lc.Load(ctx); err != nil {
		a.printf("%v", err)
	}

	for {
		a.renderList(lc)

		line, err := a.readLine("List> ")
		if err != nil {
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "n":
			if err := lc.Next(ctx); err != nil {
				a.printf("%v", err)
			}
		case "p":
			if err := lc.Previous(ctx); err != nil {
				a.printf("%v", err)
			}
		case "f":
			term := ""
			if len(parts) > 1 {
				term = strings.Join(parts[1:], " ")
			}
			if err := lc.Search(ctx, term); err != nil {
				a.printf("%v", err)
			}
		case "c":
			if err := lc.ClearSearch(ctx); err != nil {
				a.printf("%v", err)
			}
		case "go":
			userID, action, err := lc.ProcessSelections()
			if err != nil {
				a.printf("%v", err)
				continue
			}
			if action == controller.IntentUpdate {
				err = a.editScreen(ctx, userID)
			} else {
				err = a.deleteScreen(ctx, userID)
			}
			if err != nil {
				return err
			}
			if err := lc.Load(ctx); err != nil {
				a.printf("%v", err)
			}
		case "x":
			return nil
		default:
			if len(parts) == 2 {
				if err := lc.SetIntent(strings.ToUpper(parts[0]), parts[1]); err != nil {
					a.printf("%v", err)
				}
				continue
			}
			a.printf("Unknown command")
		}
	}
}

func (a *App) renderList(lc *controller.ListController) {
	page := lc.Page()

	a.printf("")
	a.printf("===== USER LIST =================== %s", clock())
	if lc.SearchTerm() != "" {
		a.printf("Search: %s", lc.SearchTerm())
	}
	a.printf("%-4s %-10s %-20s %-20s %s", "Sel", "User ID", "First Name", "Last Name", "Type")
	for _, u := range page.Content {
		a.printf("%-4s %-10s %-20s %-20s %s",
			lc.Intent(u.UserID), u.UserID, u.FirstName, u.LastName, typeLabel(u.UserType))
	}
	a.printf("Page %d of %d", page.PageNumber+1, page.TotalPages)

	if a.notice != "" {
		a.printf("%s", a.notice)
		a.notice = ""
	}
	if lc.Message != "" {
		a.printf("%s", lc.Message)
	}
	if lc.ErrMsg != "" {
		a.printf("%s", lc.ErrMsg)
	}
}
