package models

import "time"

// User types as stored and transmitted. "A" is an administrator,
// "U" a regular user.
const (
	UserTypeAdmin   = "A"
	UserTypeRegular = "U"
)

// Field length limits enforced on create/update.
const (
	UserIDMaxLen    = 8
	FirstNameMaxLen = 20
	LastNameMaxLen  = 20
	PasswordMaxLen  = 8
)

const DefaultPageSize = 10

type User struct {
	UserID    string    `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// UserPage is one window of the user list. Content is sorted ascending by
// user ID; FirstUserID/LastUserID are the boundary keys the next cursor
// fetch uses, empty strings when the page is empty.
type UserPage struct {
	Content     []User `json:"content"`
	PageNumber  int    `json:"pageNumber"`
	PageSize    int    `json:"pageSize"`
	TotalElems  int64  `json:"totalElements"`
	TotalPages  int    `json:"totalPages"`
	HasNext     bool   `json:"hasNext"`
	HasPrevious bool   `json:"hasPrevious"`
	FirstUserID string `json:"firstUserId"`
	LastUserID  string `json:"lastUserId"`
}

func UserTypeLabel(t string) string {
	switch t {
	case UserTypeAdmin:
		return "Administrator"
	case UserTypeRegular:
		return "Regular User"
	default:
		return t
	}
}
