package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"usermgmt/internal/domain"
	"usermgmt/internal/domain/models"
	"usermgmt/internal/repositories"
	"usermgmt/internal/utils"
)

// UserService applies the business rules on top of the repository:
// canonicalization of user IDs and passwords, field validation, password
// hashing, conflict checks.
type UserService struct {
	Repo      repositories.UserRepository
	RequestID string
}

type CreateUserInput struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	UserType  string `json:"userType"`
}

type UpdateUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	UserType  string `json:"userType"`
}

func (s UserService) SignOn(userID, password string) (models.User, error) {
	userID = utils.Canonical(userID)
	password = utils.Canonical(password)
	if userID == "" || password == "" {
		return models.User{}, domain.ValidationError{Msg: "User ID and password are required"}
	}

	user, hash, err := s.Repo.PasswordHash(userID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, domain.AuthError{Msg: "Invalid user ID or password"}
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return models.User{}, domain.AuthError{Msg: "Invalid user ID or password"}
	}

	utils.LogEvent(s.RequestID, "users", "signon", fmt.Sprintf("user_id=%s", userID))
	return user, nil
}

func (s UserService) Create(in CreateUserInput) (models.User, error) {
	user := models.User{
		UserID:    utils.Canonical(in.UserID),
		FirstName: utils.TrimOrEmpty(in.FirstName),
		LastName:  utils.TrimOrEmpty(in.LastName),
		UserType:  utils.Canonical(in.UserType),
	}
	password := utils.Canonical(in.Password)

	if err := validateNames(user); err != nil {
		return models.User{}, err
	}
	if user.UserID == "" {
		return models.User{}, domain.ValidationError{Field: "userId", Msg: "is required"}
	}
	if len(user.UserID) > models.UserIDMaxLen {
		return models.User{}, domain.ValidationError{Field: "userId", Msg: fmt.Sprintf("must be at most %d characters", models.UserIDMaxLen)}
	}
	if password == "" {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "is required"}
	}
	if len(password) > models.PasswordMaxLen {
		return models.User{}, domain.ValidationError{Field: "password", Msg: fmt.Sprintf("must be at most %d characters", models.PasswordMaxLen)}
	}

	exists, err := s.Repo.Exists(user.UserID)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "User ID already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	if err := s.Repo.Insert(user, string(hash)); err != nil {
		return models.User{}, err
	}

	utils.LogEvent(s.RequestID, "users", "create", fmt.Sprintf("user_id=%s", user.UserID))
	return s.Repo.GetByID(user.UserID)
}

func (s UserService) Get(userID string) (models.User, error) {
	return s.Repo.GetByID(utils.Canonical(userID))
}

// Update writes names and type; a blank password means keep the current one.
// The stored row is returned so callers can refresh their baseline.
func (s UserService) Update(userID string, in UpdateUserInput) (models.User, error) {
	userID = utils.Canonical(userID)
	user := models.User{
		UserID:    userID,
		FirstName: utils.TrimOrEmpty(in.FirstName),
		LastName:  utils.TrimOrEmpty(in.LastName),
		UserType:  utils.Canonical(in.UserType),
	}
	if err := validateNames(user); err != nil {
		return models.User{}, err
	}

	hash := ""
	if password := utils.Canonical(in.Password); password != "" {
		if len(password) > models.PasswordMaxLen {
			return models.User{}, domain.ValidationError{Field: "password", Msg: fmt.Sprintf("must be at most %d characters", models.PasswordMaxLen)}
		}
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
		}
		hash = string(h)
	}

	if err := s.Repo.Update(userID, user, hash); err != nil {
		return models.User{}, err
	}

	utils.LogEvent(s.RequestID, "users", "update", fmt.Sprintf("user_id=%s", userID))
	return s.Repo.GetByID(userID)
}

func (s UserService) Delete(userID string) error {
	userID = utils.Canonical(userID)
	if err := s.Repo.Delete(userID); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "users", "delete", fmt.Sprintf("user_id=%s", userID))
	return nil
}

func (s UserService) List(search string, page, size int) (models.UserPage, error) {
	return s.Repo.List(utils.Canonical(search), page, size)
}

func (s UserService) NextPage(lastUserID string, size int) (models.UserPage, error) {
	return s.Repo.NextPage(utils.Canonical(lastUserID), size)
}

func (s UserService) PreviousPage(firstUserID string, size int) (models.UserPage, error) {
	return s.Repo.PreviousPage(utils.Canonical(firstUserID), size)
}

func validateNames(u models.User) error {
	if u.FirstName == "" {
		return domain.ValidationError{Field: "firstName", Msg: "is required"}
	}
	if len(u.FirstName) > models.FirstNameMaxLen {
		return domain.ValidationError{Field: "firstName", Msg: fmt.Sprintf("must be at most %d characters", models.FirstNameMaxLen)}
	}
	if u.LastName == "" {
		return domain.ValidationError{Field: "lastName", Msg: "is required"}
	}
	if len(u.LastName) > models.LastNameMaxLen {
		return domain.ValidationError{Field: "lastName", Msg: fmt.Sprintf("must be at most %d characters", models.LastNameMaxLen)}
	}
	if u.UserType != models.UserTypeAdmin && u.UserType != models.UserTypeRegular {
		return domain.ValidationError{Field: "userType", Msg: "must be A or U"}
	}
	return nil
}
