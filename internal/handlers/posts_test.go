package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/votepress/backend/internal/models"
)

func TestPostsRequireAuth(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")
	post := createPost(t, tokenFor(t, user.ID), "hello", "world")

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = doJSON(t, http.MethodGet, "/posts/", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateAndGetPostRoundTrip(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")
	token := tokenFor(t, user.ID)

	created := createPost(t, token, "first post", "some content")
	require.Equal(t, "first post", created.Title)
	require.Equal(t, "some content", created.Content)
	require.True(t, created.Published)
	require.Equal(t, user.ID, created.OwnerID)
	require.False(t, created.CreatedAt.IsZero())

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("/posts/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out models.PostOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.Equal(t, created.ID, out.Post.ID)
	require.Equal(t, created.Title, out.Post.Title)
	require.Equal(t, created.Content, out.Post.Content)
	require.Equal(t, int64(0), out.Votes)
}

func TestCreatePostUnpublished(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")

	resp := doJSON(t, http.MethodPost, "/posts/", tokenFor(t, user.ID), gin.H{
		"title":     "draft",
		"content":   "not ready",
		"published": false,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &post))
	require.False(t, post.Published)
}

func TestCreatePostValidation(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")

	resp := doJSON(t, http.MethodPost, "/posts/", tokenFor(t, user.ID), gin.H{
		"content": "no title",
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestGetMissingPost(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")

	resp := doJSON(t, http.MethodGet, "/posts/88888", tokenFor(t, user.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListPostsSearchAndPagination(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")
	token := tokenFor(t, user.ID)

	createPost(t, token, "go concurrency patterns", "a")
	second := createPost(t, token, "go generics", "b")
	third := createPost(t, token, "go modules", "c")
	createPost(t, token, "python tips", "d")

	resp := doJSON(t, http.MethodGet, "/posts/?search=go&limit=2&skip=1", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var results []models.PostOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &results))
	require.Len(t, results, 2)
	require.Equal(t, second.ID, results[0].Post.ID)
	require.Equal(t, third.ID, results[1].Post.ID)
}

func TestListPostsDefaults(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")
	token := tokenFor(t, user.ID)

	for i := 0; i < 12; i++ {
		createPost(t, token, fmt.Sprintf("post %d", i), "content")
	}

	resp := doJSON(t, http.MethodGet, "/posts/", token, nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var results []models.PostOut
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &results))
	require.Len(t, results, 10)
}

func TestUpdatePost(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")
	token := tokenFor(t, user.ID)
	post := createPost(t, token, "before", "old content")

	resp := doJSON(t, http.MethodPut, fmt.Sprintf("/posts/%d", post.ID), token, gin.H{
		"title":     "after",
		"content":   "new content",
		"published": false,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var updated models.Post
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	require.Equal(t, "after", updated.Title)
	require.Equal(t, "new content", updated.Content)
	require.False(t, updated.Published)
}

func TestUpdatePostNotOwner(t *testing.T) {
	resetDB(t)
	alice := registerUser(t, "alice@example.com", "password123")
	bob := registerUser(t, "bob@example.com", "password123")
	post := createPost(t, tokenFor(t, alice.ID), "alice's post", "content")

	resp := doJSON(t, http.MethodPut, fmt.Sprintf("/posts/%d", post.ID), tokenFor(t, bob.ID), gin.H{
		"title":   "hijacked",
		"content": "nope",
	})
	require.Equal(t, http.StatusForbidden, resp.Code)

	// Bob can still read it.
	read := doJSON(t, http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), tokenFor(t, bob.ID), nil)
	require.Equal(t, http.StatusOK, read.Code)
}

func TestUpdateMissingPost(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")

	resp := doJSON(t, http.MethodPut, "/posts/88888", tokenFor(t, user.ID), gin.H{
		"title":   "x",
		"content": "y",
	})
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeletePost(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")
	token := tokenFor(t, user.ID)
	post := createPost(t, token, "doomed", "content")

	resp := doJSON(t, http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), token, nil)
	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Empty(t, resp.Body.String())

	gone := doJSON(t, http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), token, nil)
	require.Equal(t, http.StatusNotFound, gone.Code)
}

func TestDeletePostNotOwner(t *testing.T) {
	resetDB(t)
	alice := registerUser(t, "alice@example.com", "password123")
	bob := registerUser(t, "bob@example.com", "password123")
	post := createPost(t, tokenFor(t, alice.ID), "alice's post", "content")

	resp := doJSON(t, http.MethodDelete, fmt.Sprintf("/posts/%d", post.ID), tokenFor(t, bob.ID), nil)
	require.Equal(t, http.StatusForbidden, resp.Code)
}

func TestDeleteMissingPost(t *testing.T) {
	resetDB(t)
	user := registerUser(t, "alice@example.com", "password123")

	resp := doJSON(t, http.MethodDelete, "/posts/88888", tokenFor(t, user.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

// Deleting a user cascades through their posts and votes.
func TestDeleteUserCascades(t *testing.T) {
	resetDB(t)
	alice := registerUser(t, "alice@example.com", "password123")
	bob := registerUser(t, "bob@example.com", "password123")
	post := createPost(t, tokenFor(t, alice.ID), "alice's post", "content")

	vote := doJSON(t, http.MethodPost, "/vote/", tokenFor(t, bob.ID), gin.H{
		"post_id": post.ID,
		"dir":     1,
	})
	require.Equal(t, http.StatusCreated, vote.Code)

	require.NoError(t, testDB.Exec("DELETE FROM users WHERE id = ?", alice.ID).Error)

	resp := doJSON(t, http.MethodGet, fmt.Sprintf("/posts/%d", post.ID), tokenFor(t, bob.ID), nil)
	require.Equal(t, http.StatusNotFound, resp.Code)

	var votes int64
	require.NoError(t, testDB.Table("votes").Where("post_id = ?", post.ID).Count(&votes).Error)
	require.Equal(t, int64(0), votes)
}
