package cli

import (
	"context"
	"log"

	"usermgmt/internal/client"
)

// signOnScreen prompts for credentials until sign-on succeeds or the user
// leaves. Returns false when the user chose to exit.
func (a *App) signOnScreen(ctx context.Context) (bool, error) {
	a.printf("")
	a.printf("===== SIGN ON ===================== %s", clock())
	a.printf("Enter a blank User ID to exit.")

	for {
		userID, err := a.readLine("User ID......: ")
		if err != nil {
			return false, err
		}
		if userID == "" {
			return false, nil
		}

		password, err := a.readPassword("Password.....: ")
		if err != nil {
			return false, err
		}

		result, err := a.api.SignOn(ctx, userID, password)
		if err != nil {
			// both a rejected credential and an unreachable server come
			// back as a retry prompt, but the kinds stay distinct in logs
			switch {
			case client.IsTransport(err):
				log.Printf("[SIGNON] transport failure: %v", err)
			case client.IsAuth(err):
				log.Printf("[SIGNON] rejected credentials")
			default:
				log.Printf("[SIGNON] error: %v", err)
			}
			a.printf("Wrong password, try again...")
			continue
		}

		if err := a.store.Save(result.Token, result.User); err != nil {
			a.printf("Failed to save session: %v", err)
			continue
		}

		a.printf("%s", result.Message)
		return true, nil
	}
}
