package cli

import (
	"context"

	"usermgmt/internal/client/controller"
)

func (a *App) addScreen(ctx context.Context) error {
	form := controller.NewCreateForm(a.api)

	a.printf("")
	a.printf("===== ADD USER ==================== %s", clock())

	var err error
	if form.FirstName, err = a.readLine("First Name...: "); err != nil {
		return err
	}
	if form.LastName, err = a.readLine("Last Name....: "); err != nil {
		return err
	}
	if form.UserID, err = a.readLine("User ID......: "); err != nil {
		return err
	}
	if form.Password, err = a.readPassword("Password.....: "); err != nil {
		return err
	}
	if form.UserType, err = a.readLine("Type (A/U)...: "); err != nil {
		return err
	}

	message, submitErr := form.Submit(ctx)
	if submitErr != nil {
		a.printf("%v", submitErr)
		if form.InvalidField != "" {
			a.printf("Check the %s field.", form.InvalidField)
		}
		return nil
	}

	a.printf("%s", message)
	return nil
}

func (a *App) editScreen(ctx context.Context, userID string) error {
	form := controller.NewUpdateForm(a.api, userID)
	if err := form.Load(ctx); err != nil {
		a.printf("%v", err)
		return nil
	}

	a.printf("")
	a.printf("===== UPDATE USER ================= %s", clock())
	a.printf("User ID: %s (press Enter to keep the current value)", form.UserID)

	if v, err := a.readLine("First Name [" + form.FirstName + "]: "); err != nil {
		return err
	} else if v != "" {
		form.FirstName = v
	}
	if v, err := a.readLine("Last Name [" + form.LastName + "]: "); err != nil {
		return err
	} else if v != "" {
		form.LastName = v
	}
	if v, err := a.readLine("Type (A/U) [" + form.UserType + "]: "); err != nil {
		return err
	} else if v != "" {
		form.UserType = v
	}
	if v, err := a.readPassword("New Password (blank = keep): "); err != nil {
		return err
	} else {
		form.Password = v
	}

	message, err := form.Submit(ctx)
	if err != nil {
		a.printf("%v", err)
		return nil
	}

	a.printf("%s", message)
	return nil
}

func (a *App) deleteScreen(ctx context.Context, userID string) error {
	form := controller.NewDeleteForm(a.api, userID)
	if err := form.Load(ctx); err != nil {
		a.printf("%v", err)
		return nil
	}

	a.printf("")
	a.printf("===== DELETE USER ================= %s", clock())
	a.printf("User ID....: %s", form.User.UserID)
	a.printf("Name.......: %s %s", form.User.FirstName, form.User.LastName)
	a.printf("Type.......: %s", typeLabel(form.User.UserType))

	answer, err := a.readLine("Delete this user? (y/N): ")
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		a.printf("Delete cancelled.")
		return nil
	}

	message, err := form.Confirm(ctx)
	if err != nil {
		a.printf("%v", err)
		return nil
	}

	// shown on the list screen after navigation, instead of a timed pause
	a.notice = message
	return nil
}
