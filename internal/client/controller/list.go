// Package controller holds the screen controllers: the list/pagination
// state machine and the create/update/delete form lifecycles. Controllers
// are plain state over an API interface, so the terminal front-end stays a
// thin rendering loop.
package controller

import (
	"context"
	"errors"

	"usermgmt/internal/client"
	"usermgmt/internal/domain/models"
	"usermgmt/internal/utils"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateError
)

// Row intent values: what the operator wants done with a row next.
const (
	IntentNone   = ""
	IntentUpdate = "U"
	IntentDelete = "D"
)

// Messages shown without any network call.
const (
	msgAtBottom        = "You are already at the bottom of the page..."
	msgAtTop           = "You are already at the top of the page..."
	msgNoUsers         = "No users found"
	msgInvalidIntent   = "Invalid selection. Valid values are U and D"
	msgSelectRequired  = "Please select a user to update or delete"
	msgRequestInFlight = "Please wait for the current request to finish..."
)

// ListAPI is the slice of the API client the list screen needs.
type ListAPI interface {
	ListUsers(ctx context.Context, params client.ListParams) (models.UserPage, error)
	NextPage(ctx context.Context, lastUserID string, size int) (models.UserPage, error)
	PreviousPage(ctx context.Context, firstUserID string, size int) (models.UserPage, error)
}

// ListController drives the user list screen: current page window,
// forward/backward cursors, search term, and per-row pending intent.
// One logical request is in flight at a time; while loading, further
// actions are refused locally.
type ListController struct {
	api      ListAPI
	PageSize int

	state      State
	page       models.UserPage
	search     string
	selections map[string]string

	// Message is informational (boundary hits, empty results); ErrMsg is a
	// failure. Both are display text for the screen.
	Message string
	ErrMsg  string
}

func NewListController(api ListAPI) *ListController {
	return &ListController{
		api:        api,
		PageSize:   models.DefaultPageSize,
		state:      StateIdle,
		selections: map[string]string{},
	}
}

func (lc *ListController) State() State          { return lc.state }
func (lc *ListController) Page() models.UserPage { return lc.page }
func (lc *ListController) SearchTerm() string    { return lc.search }

// Intent returns the stored row intent for a user ID.
func (lc *ListController) Intent(userID string) string {
	return lc.selections[userID]
}

// Load fetches the first page for the current search term.
func (lc *ListController) Load(ctx context.Context) error {
	return lc.fetch(ctx, func() (models.UserPage, error) {
		return lc.api.ListUsers(ctx, client.ListParams{Search: lc.search, Page: 0, Size: lc.PageSize})
	})
}

// Search sets the term and reloads from the first page.
func (lc *ListController) Search(ctx context.Context, term string) error {
	lc.search = utils.TrimOrEmpty(term)
	return lc.Load(ctx)
}

// ClearSearch drops the term and any pending selections, then reloads.
func (lc *ListController) ClearSearch(ctx context.Context) error {
	lc.search = ""
	lc.selections = map[string]string{}
	return lc.Load(ctx)
}

// Next pages forward. At the boundary it produces only a local message and
// never calls the API.
func (lc *ListController) Next(ctx context.Context) error {
	if lc.state == StateLoading {
		lc.Message = msgRequestInFlight
		return nil
	}
	if !lc.page.HasNext {
		lc.Message = msgAtBottom
		return nil
	}
	return lc.fetch(ctx, func() (models.UserPage, error) {
		return lc.api.NextPage(ctx, lc.page.LastUserID, lc.PageSize)
	})
}

// Previous pages backward, mirrored boundary discipline.
func (lc *ListController) Previous(ctx context.Context) error {
	if lc.state == StateLoading {
		lc.Message = msgRequestInFlight
		return nil
	}
	if !lc.page.HasPrevious {
		lc.Message = msgAtTop
		return nil
	}
	return lc.fetch(ctx, func() (models.UserPage, error) {
		return lc.api.PreviousPage(ctx, lc.page.FirstUserID, lc.PageSize)
	})
}

// SetIntent stores a row intent. Only "", "U" and "D" are accepted
// (case-insensitive, canonicalized to upper); anything else is rejected
// and the stored intent stays unchanged.
func (lc *ListController) SetIntent(userID, value string) error {
	v := utils.Canonical(value)
	switch v {
	case IntentNone, IntentUpdate, IntentDelete:
		lc.selections[userID] = v
		lc.Message = ""
		lc.ErrMsg = ""
		return nil
	default:
		lc.ErrMsg = msgInvalidIntent
		return errors.New(msgInvalidIntent)
	}
}

// ProcessSelections resolves the pending intents: the first row in display
// order with a non-empty intent wins. Returns that row's user ID and the
// intent tag.
func (lc *ListController) ProcessSelections() (string, string, error) {
	for _, u := range lc.page.Content {
		switch lc.selections[u.UserID] {
		case IntentUpdate:
			return u.UserID, IntentUpdate, nil
		case IntentDelete:
			return u.UserID, IntentDelete, nil
		}
	}
	lc.ErrMsg = msgSelectRequired
	return "", "", errors.New(msgSelectRequired)
}

func (lc *ListController) fetch(ctx context.Context, call func() (models.UserPage, error)) error {
	if lc.state == StateLoading {
		lc.Message = msgRequestInFlight
		return nil
	}

	lc.state = StateLoading
	lc.Message = ""
	lc.ErrMsg = ""

	page, err := call()
	if err != nil {
		// previous window stays on screen; only the state and message change
		lc.state = StateError
		lc.ErrMsg = err.Error()
		return err
	}

	lc.state = StateLoaded
	lc.page = page
	// switching pages invalidates in-flight row intents
	lc.selections = map[string]string{}
	if len(page.Content) == 0 {
		lc.Message = msgNoUsers
	}
	return nil
}
