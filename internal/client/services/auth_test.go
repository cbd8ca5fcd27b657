package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartuniversity/campusctl/internal/client/api"
	"github.com/smartuniversity/campusctl/internal/client/models"
)

func TestLogin_SendsCredentialsAndReturnsToken(t *testing.T) {
	var got credentialsRequest
	a := NewAuthService(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"token":"jwt-abc"}`))
	})))

	token, err := a.Login(context.Background(), "alice", "secret", "north")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", token)
	assert.Equal(t, credentialsRequest{Username: "alice", Password: "secret", TenantID: "north"}, got)
}

func TestRegister_IncludesRole(t *testing.T) {
	var got credentialsRequest
	a := NewAuthService(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"token":"jwt-new"}`))
	})))

	token, err := a.Register(context.Background(), "bob", "pw", "north", models.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, "jwt-new", token)
	assert.Equal(t, "TEACHER", got.Role)
}

func TestLogin_BadCredentialsSurfaceStatus(t *testing.T) {
	a := NewAuthService(newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
	})))

	_, err := a.Login(context.Background(), "alice", "wrong", "north")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, api.StatusOf(err))
	assert.Equal(t, "bad credentials", api.MessageOf(err))
}
