package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermgmt/internal/domain/models"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestSignOnCanonicalizesPayload(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/signon", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(SignOnResult{
			Success: true,
			Message: "Sign on successful",
			Token:   "tok",
			User:    SessionUser{UserID: "ADMIN001", UserType: "A"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	res, err := c.SignOn(context.Background(), "admin001", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "ADMIN001", got["userId"])
	assert.Equal(t, "SECRET1", got["password"])
	assert.True(t, res.Success)
	assert.Equal(t, "tok", res.Token)
}

func TestBearerTokenAttached(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(models.UserPage{})
	}))
	defer srv.Close()

	c := New(srv.URL, staticToken("tok123"))
	_, err := c.ListUsers(context.Background(), ListParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", auth)
}

func TestErrorKindsDecodedFromCode(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   string
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, "NOT_FOUND", IsNotFound},
		{"conflict", http.StatusConflict, "CONFLICT", IsConflict},
		{"auth", http.StatusUnauthorized, "AUTH", IsAuth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]string{
					"message": "backend says no",
					"code":    tc.code,
				})
			}))
			defer srv.Close()

			c := New(srv.URL, nil)
			_, err := c.GetUser(context.Background(), "nobody")
			require.Error(t, err)
			assert.True(t, tc.check(err))
			assert.Equal(t, "backend says no", err.Error())
		})
	}
}

func TestErrorFallbackMessageWhenBodyMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.GetUser(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, "Failed to fetch user", err.Error())
	assert.False(t, IsTransport(err))
}

func TestTransportFailureIsDistinct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, nil)
	_, err := c.SignOn(context.Background(), "a", "b")
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.False(t, IsAuth(err))
}

func TestDeleteUppercasesPathAndCallsOnce(t *testing.T) {
	var calls int
	var path, method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		path = r.URL.Path
		method = r.Method
		json.NewEncoder(w).Encode(map[string]string{"message": "User deleted successfully"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	msg, err := c.DeleteUser(context.Background(), "john01")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/users/JOHN01", path)
	assert.Equal(t, "User deleted successfully", msg)
}

func TestCursorParamsCanonicalized(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		json.NewEncoder(w).Encode(models.UserPage{})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.NextPage(context.Background(), "user0010", 10)
	require.NoError(t, err)
	assert.Equal(t, "lastUserId=USER0010&size=10", query)
}
