package artists_test

import (
	"fmt"
	"net/http"
	"testing"

	"gallery-app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signup(t *testing.T, r http.Handler, name, email, role string) (int64, string) {
	t.Helper()
	w := testutil.DoJSON(t, r, http.MethodPost, "/register", "", map[string]string{
		"full_name":  name,
		"email":      email,
		"password":   "secret1",
		"role":       role,
		"stage_name": name + " Studio",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var reg struct {
		ID int64 `json:"id"`
	}
	testutil.Decode(t, w, &reg)

	w = testutil.DoJSON(t, r, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	testutil.Decode(t, w, &resp)
	return reg.ID, resp.Token
}

func TestArtistProfileLifecycle(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	anaID, ana := signup(t, r, "Ana", "ana@example.com", "artist")

	// Registration created the profile with the stage name.
	w := testutil.DoJSON(t, r, http.MethodGet, "/me/artist", ana, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		ID        int64  `json:"id"`
		StageName string `json:"stage_name"`
		FullName  string `json:"full_name"`
		Verified  bool   `json:"verified"`
	}
	testutil.Decode(t, w, &profile)
	assert.Equal(t, anaID, profile.ID)
	assert.Equal(t, "Ana Studio", profile.StageName)
	assert.Equal(t, "Ana", profile.FullName)
	assert.False(t, profile.Verified)

	w = testutil.DoJSON(t, r, http.MethodPut, "/me/artist", ana, map[string]interface{}{
		"stage_name": "Ana Atelier",
		"bio":        "Painter",
		"country":    "ES",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/artists/%d", anaID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &profile)
	assert.Equal(t, "Ana Atelier", profile.StageName)
}

func TestUpdateArtistOwnership(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	anaID, _ := signup(t, r, "Ana", "ana@example.com", "artist")
	_, eve := signup(t, r, "Eve", "eve@example.com", "artist")
	_, admin := signup(t, r, "Root", "root@example.com", "admin")

	path := fmt.Sprintf("/artists/%d", anaID)
	body := map[string]interface{}{"stage_name": "Hijacked"}

	w := testutil.DoJSON(t, r, http.MethodPut, path, eve, body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.DoJSON(t, r, http.MethodPut, path, admin, map[string]interface{}{
		"stage_name": "Ana Studio",
		"verified":   true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		Verified bool `json:"verified"`
	}
	testutil.Decode(t, w, &profile)
	assert.True(t, profile.Verified)
}

func TestVerifiedFlagIgnoredForNonAdmin(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	anaID, ana := signup(t, r, "Ana", "ana@example.com", "artist")

	w := testutil.DoJSON(t, r, http.MethodPut, "/me/artist", ana, map[string]interface{}{
		"stage_name": "Ana Studio",
		"verified":   true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.DoJSON(t, r, http.MethodGet, fmt.Sprintf("/artists/%d", anaID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile struct {
		Verified bool `json:"verified"`
	}
	testutil.Decode(t, w, &profile)
	assert.False(t, profile.Verified)
}

func TestListArtists(t *testing.T) {
	testutil.SetupDB(t)
	r := testutil.Router()

	signup(t, r, "Ana", "ana@example.com", "artist")
	signup(t, r, "Eve", "eve@example.com", "artist")
	signup(t, r, "Bob", "bob@example.com", "visitor")

	w := testutil.DoJSON(t, r, http.MethodGet, "/artists", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []struct {
		FullName string `json:"full_name"`
	}
	testutil.Decode(t, w, &list)
	// Visitors have no profile row.
	assert.Len(t, list, 2)

	w = testutil.DoJSON(t, r, http.MethodGet, "/artists/999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
