package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermgmt/internal/client"
	"usermgmt/internal/domain/models"
)

// fakeFormAPI records calls and replays scripted results.
type fakeFormAPI struct {
	getUser    models.User
	getErr     error
	createErr  error
	updateErr  error
	deleteErr  error
	updatedRes client.UserResult

	createCalls int
	updateCalls int
	deleteCalls int
	lastCreate  client.CreateUserRequest
	lastUpdate  client.UpdateUserRequest
	lastUserID  string
}

func (f *fakeFormAPI) GetUser(ctx context.Context, userID string) (models.User, error) {
	f.lastUserID = userID
	return f.getUser, f.getErr
}

func (f *fakeFormAPI) CreateUser(ctx context.Context, req client.CreateUserRequest) (client.UserResult, error) {
	f.createCalls++
	f.lastCreate = req
	if f.createErr != nil {
		return client.UserResult{}, f.createErr
	}
	return client.UserResult{Message: "User created successfully"}, nil
}

func (f *fakeFormAPI) UpdateUser(ctx context.Context, userID string, req client.UpdateUserRequest) (client.UserResult, error) {
	f.updateCalls++
	f.lastUserID = userID
	f.lastUpdate = req
	if f.updateErr != nil {
		return client.UserResult{}, f.updateErr
	}
	return f.updatedRes, nil
}

func (f *fakeFormAPI) DeleteUser(ctx context.Context, userID string) (string, error) {
	f.deleteCalls++
	f.lastUserID = userID
	if f.deleteErr != nil {
		return "", f.deleteErr
	}
	return "User deleted successfully", nil
}

func TestCreateBlankUserIDFailsNamingFieldWithoutNetworkCall(t *testing.T) {
	api := &fakeFormAPI{}
	form := NewCreateForm(api)
	form.FirstName = "John"
	form.LastName = "Doe"
	form.Password = "SECRET"
	form.UserType = "U"

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "User ID can NOT be empty...", err.Error())
	assert.Equal(t, "userId", form.InvalidField)
	assert.Zero(t, api.createCalls, "validation failure must not reach the network")
}

func TestCreateValidatesFieldsInScreenOrder(t *testing.T) {
	api := &fakeFormAPI{}
	form := NewCreateForm(api)
	form.UserID = "JOHN01"

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "First Name can NOT be empty...", err.Error())
	assert.Equal(t, "firstName", form.InvalidField)
}

func TestCreateConflictMarksUserIDField(t *testing.T) {
	api := &fakeFormAPI{createErr: &client.APIError{Kind: client.KindConflict, Message: "User ID already exists"}}
	form := NewCreateForm(api)
	form.UserID = "JOHN01"
	form.FirstName = "John"
	form.LastName = "Doe"
	form.Password = "SECRET"
	form.UserType = "U"

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "userId", form.InvalidField)
	assert.Equal(t, "JOHN01", form.UserID, "form keeps its values on failure")
}

func TestCreateSuccessResetsForm(t *testing.T) {
	api := &fakeFormAPI{}
	form := NewCreateForm(api)
	form.UserID = "JOHN01"
	form.FirstName = "John"
	form.LastName = "Doe"
	form.Password = "SECRET"
	form.UserType = "a"

	msg, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "User created successfully", msg)
	assert.Empty(t, form.UserID)
	assert.Equal(t, "A", api.lastCreate.UserType, "user type canonicalized")
}

func TestUpdateWithoutModificationFailsWithoutNetworkCall(t *testing.T) {
	api := &fakeFormAPI{getUser: models.User{UserID: "JOHN01", FirstName: "JOHN", LastName: "DOE", UserType: "U"}}
	form := NewUpdateForm(api, "john01")
	require.NoError(t, form.Load(context.Background()))

	// identical values, blank password
	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Please modify at least one field before updating...", err.Error())
	assert.Zero(t, api.updateCalls)
}

func TestUpdateBlankPasswordOmittedFromPayload(t *testing.T) {
	api := &fakeFormAPI{
		getUser:    models.User{UserID: "JOHN01", FirstName: "JOHN", LastName: "DOE", UserType: "U"},
		updatedRes: client.UserResult{Message: "User updated successfully", User: models.User{UserID: "JOHN01", FirstName: "JANE", LastName: "DOE", UserType: "U"}},
	}
	form := NewUpdateForm(api, "JOHN01")
	require.NoError(t, form.Load(context.Background()))

	form.FirstName = "JANE"
	msg, err := form.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "User updated successfully", msg)
	assert.Equal(t, 1, api.updateCalls)
	assert.Empty(t, api.lastUpdate.Password, "blank password means keep current")
	assert.Equal(t, "JANE", api.lastUpdate.FirstName)
}

func TestUpdateSuccessRefreshesBaseline(t *testing.T) {
	api := &fakeFormAPI{
		getUser:    models.User{UserID: "JOHN01", FirstName: "JOHN", LastName: "DOE", UserType: "U"},
		updatedRes: client.UserResult{Message: "User updated successfully", User: models.User{UserID: "JOHN01", FirstName: "JANE", LastName: "DOE", UserType: "U"}},
	}
	form := NewUpdateForm(api, "JOHN01")
	require.NoError(t, form.Load(context.Background()))

	form.FirstName = "JANE"
	_, err := form.Submit(context.Background())
	require.NoError(t, err)

	// the returned record is the new baseline: resubmitting unchanged
	// values is once again "no modification"
	assert.False(t, form.Modified())
	assert.Equal(t, "JANE", form.Baseline().FirstName)
}

func TestUpdateLoadNotFound(t *testing.T) {
	api := &fakeFormAPI{getErr: &client.APIError{Kind: client.KindNotFound, Message: "user not found"}}
	form := NewUpdateForm(api, "GHOST")

	err := form.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "User ID NOT found...", err.Error())
	assert.False(t, form.Loaded)
}

func TestDeleteConfirmIssuesSingleCallWithCanonicalID(t *testing.T) {
	api := &fakeFormAPI{getUser: models.User{UserID: "JOHN01", FirstName: "John", LastName: "Doe", UserType: "U"}}
	form := NewDeleteForm(api, "john01")
	require.NoError(t, form.Load(context.Background()))

	msg, err := form.Confirm(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "User deleted successfully", msg)
	assert.Equal(t, 1, api.deleteCalls)
	assert.Equal(t, "JOHN01", api.lastUserID)
}
