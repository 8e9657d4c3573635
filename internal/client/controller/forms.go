package controller

import (
	"context"
	"errors"

	"usermgmt/internal/client"
	"usermgmt/internal/domain/models"
	"usermgmt/internal/utils"
)

// Validation and lookup messages, matching the screens' wording.
const (
	msgFirstNameEmpty = "First Name can NOT be empty..."
	msgLastNameEmpty  = "Last Name can NOT be empty..."
	msgUserIDEmpty    = "User ID can NOT be empty..."
	msgPasswordEmpty  = "Password can NOT be empty..."
	msgUserTypeEmpty  = "User Type can NOT be empty..."
	msgNoModification = "Please modify at least one field before updating..."
	msgUserNotFound   = "User ID NOT found..."
)

// FormAPI is the slice of the API client the form screens need.
type FormAPI interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateUser(ctx context.Context, req client.CreateUserRequest) (client.UserResult, error)
	UpdateUser(ctx context.Context, userID string, req client.UpdateUserRequest) (client.UserResult, error)
	DeleteUser(ctx context.Context, userID string) (string, error)
}

// CreateForm owns the add-user screen's record. InvalidField names the
// field the last failure was about, for highlighting.
type CreateForm struct {
	api FormAPI

	UserID    string
	FirstName string
	LastName  string
	Password  string
	UserType  string

	InvalidField string
}

func NewCreateForm(api FormAPI) *CreateForm {
	return &CreateForm{api: api, UserType: models.UserTypeRegular}
}

// Submit validates and creates. Validation failures never reach the
// network; a conflict marks the userId field as invalid.
func (f *CreateForm) Submit(ctx context.Context) (string, error) {
	f.InvalidField = ""

	switch {
	case utils.TrimOrEmpty(f.FirstName) == "":
		f.InvalidField = "firstName"
		return "", errors.New(msgFirstNameEmpty)
	case utils.TrimOrEmpty(f.LastName) == "":
		f.InvalidField = "lastName"
		return "", errors.New(msgLastNameEmpty)
	case utils.TrimOrEmpty(f.UserID) == "":
		f.InvalidField = "userId"
		return "", errors.New(msgUserIDEmpty)
	case utils.TrimOrEmpty(f.Password) == "":
		f.InvalidField = "password"
		return "", errors.New(msgPasswordEmpty)
	case utils.TrimOrEmpty(f.UserType) == "":
		f.InvalidField = "userType"
		return "", errors.New(msgUserTypeEmpty)
	}

	res, err := f.api.CreateUser(ctx, client.CreateUserRequest{
		UserID:    f.UserID,
		FirstName: utils.TrimOrEmpty(f.FirstName),
		LastName:  utils.TrimOrEmpty(f.LastName),
		Password:  f.Password,
		UserType:  utils.Canonical(f.UserType),
	})
	if err != nil {
		if client.IsConflict(err) {
			f.InvalidField = "userId"
		}
		return "", err
	}

	f.Reset()
	return res.Message, nil
}

func (f *CreateForm) Reset() {
	f.UserID = ""
	f.FirstName = ""
	f.LastName = ""
	f.Password = ""
	f.UserType = models.UserTypeRegular
	f.InvalidField = ""
}

// UpdateForm owns one record's edit lifecycle: load the baseline, edit,
// submit only when something actually changed, reconcile with the server's
// returned record.
type UpdateForm struct {
	api FormAPI

	UserID   string
	baseline models.User
	Loaded   bool

	FirstName string
	LastName  string
	Password  string
	UserType  string
}

func NewUpdateForm(api FormAPI, userID string) *UpdateForm {
	return &UpdateForm{api: api, UserID: utils.Canonical(userID)}
}

func (f *UpdateForm) Load(ctx context.Context) error {
	user, err := f.api.GetUser(ctx, f.UserID)
	if err != nil {
		if client.IsNotFound(err) {
			return errors.New(msgUserNotFound)
		}
		return err
	}

	f.baseline = user
	f.FirstName = user.FirstName
	f.LastName = user.LastName
	f.UserType = user.UserType
	f.Password = ""
	f.Loaded = true
	return nil
}

func (f *UpdateForm) Baseline() models.User { return f.baseline }

// Modified reports whether any field differs from the loaded snapshot. A
// non-blank password always counts as a change.
func (f *UpdateForm) Modified() bool {
	if !f.Loaded {
		return false
	}
	return f.FirstName != f.baseline.FirstName ||
		f.LastName != f.baseline.LastName ||
		utils.Canonical(f.UserType) != f.baseline.UserType ||
		utils.TrimOrEmpty(f.Password) != ""
}

func (f *UpdateForm) Submit(ctx context.Context) (string, error) {
	switch {
	case utils.TrimOrEmpty(f.FirstName) == "":
		return "", errors.New(msgFirstNameEmpty)
	case utils.TrimOrEmpty(f.LastName) == "":
		return "", errors.New(msgLastNameEmpty)
	case utils.TrimOrEmpty(f.UserType) == "":
		return "", errors.New(msgUserTypeEmpty)
	}

	if !f.Modified() {
		return "", errors.New(msgNoModification)
	}

	req := client.UpdateUserRequest{
		FirstName: utils.TrimOrEmpty(f.FirstName),
		LastName:  utils.TrimOrEmpty(f.LastName),
		UserType:  utils.Canonical(f.UserType),
	}
	// blank password means keep the current one; omit it entirely
	if utils.TrimOrEmpty(f.Password) != "" {
		req.Password = f.Password
	}

	res, err := f.api.UpdateUser(ctx, f.UserID, req)
	if err != nil {
		if client.IsNotFound(err) {
			return "", errors.New(msgUserNotFound)
		}
		return "", err
	}

	// the server's returned record is the new baseline, so the next
	// Modified check compares against the latest persisted state
	f.baseline = res.User
	f.FirstName = res.User.FirstName
	f.LastName = res.User.LastName
	f.UserType = res.User.UserType
	f.Password = ""
	return res.Message, nil
}

// DeleteForm loads the record for confirmation, then performs the delete
// on a single confirm action.
type DeleteForm struct {
	api FormAPI

	UserID string
	User   models.User
	Loaded bool
}

func NewDeleteForm(api FormAPI, userID string) *DeleteForm {
	return &DeleteForm{api: api, UserID: utils.Canonical(userID)}
}

func (f *DeleteForm) Load(ctx context.Context) error {
	user, err := f.api.GetUser(ctx, f.UserID)
	if err != nil {
		if client.IsNotFound(err) {
			return errors.New(msgUserNotFound)
		}
		return err
	}
	f.User = user
	f.Loaded = true
	return nil
}

func (f *DeleteForm) Confirm(ctx context.Context) (string, error) {
	message, err := f.api.DeleteUser(ctx, f.UserID)
	if err != nil {
		if client.IsNotFound(err) {
			return "", errors.New(msgUserNotFound)
		}
		return "", err
	}
	return message, nil
}
