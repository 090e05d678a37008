package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/messagely/internal/database"
	"github.com/thereayou/messagely/internal/models"
)

func newUserRouter(username string, users *fakeUserStore, messages *fakeMessageStore) *gin.Engine {
	h := NewUserHandler(users, messages)
	return newTestRouter(username, func(r *gin.Engine) {
		r.GET("/users", h.List)
		r.GET("/users/:username", h.Get)
		r.GET("/users/:username/from", h.MessagesFrom)
		r.GET("/users/:username/to", h.MessagesTo)
	})
}

func TestListUsers(t *testing.T) {
	users := &fakeUserStore{listResp: []models.User{testUser("alice"), testUser("bob")}}
	r := newUserRouter("alice", users, &fakeMessageStore{})

	w := doJSON(r, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Users []struct {
			Username  string `json:"username"`
			FirstName string `json:"first_name"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 2)
	require.Equal(t, "alice", resp.Users[0].Username)
	require.Equal(t, "bob", resp.Users[1].Username)

	// the hash must never appear in a response
	require.NotContains(t, w.Body.String(), "password")
	require.NotContains(t, w.Body.String(), "$2a$")
}

func TestGetUser(t *testing.T) {
	user := testUser("alice")
	users := &fakeUserStore{getResp: &user}
	r := newUserRouter("bob", users, &fakeMessageStore{})

	w := doJSON(r, http.MethodGet, "/users/alice", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct {
			Username  string `json:"username"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
			Phone     string `json:"phone"`
			JoinAt    string `json:"join_at"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "alice", resp.User.Username)
	require.NotEmpty(t, resp.User.JoinAt)
	require.NotContains(t, w.Body.String(), "$2a$")
}

func TestGetUser_NotFound(t *testing.T) {
	users := &fakeUserStore{getErr: database.ErrNotFound}
	r := newUserRouter("bob", users, &fakeMessageStore{})

	w := doJSON(r, http.MethodGet, "/users/ghost", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMessagesFrom_SelfOnly(t *testing.T) {
	sent := testMessage("alice", "bob")
	messages := &fakeMessageStore{fromResp: []models.Message{*sent}}

	w := doJSON(newUserRouter("alice", &fakeUserStore{}, messages), http.MethodGet, "/users/alice/from", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages []struct {
			Body   string `json:"body"`
			ToUser struct {
				Username string `json:"username"`
			} `json:"to_user"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	require.Equal(t, "bob", resp.Messages[0].ToUser.Username)
	// sent listing embeds only the recipient
	require.NotContains(t, w.Body.String(), "from_user")

	w = doJSON(newUserRouter("bob", &fakeUserStore{}, messages), http.MethodGet, "/users/alice/from", "")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestMessagesTo_SelfOnly(t *testing.T) {
	received := testMessage("alice", "bob")
	messages := &fakeMessageStore{toResp: []models.Message{*received}}

	w := doJSON(newUserRouter("bob", &fakeUserStore{}, messages), http.MethodGet, "/users/bob/to", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Messages []struct {
			FromUser struct {
				Username string `json:"username"`
			} `json:"from_user"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	require.Equal(t, "alice", resp.Messages[0].FromUser.Username)

	w = doJSON(newUserRouter("alice", &fakeUserStore{}, messages), http.MethodGet, "/users/bob/to", "")
	require.Equal(t, http.StatusForbidden, w.Code)
}
