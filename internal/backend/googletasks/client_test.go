package googletasks_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"taskpad/internal/backend/googletasks"
	"taskpad/internal/config"
	"taskpad/internal/service"
)

// fakeAPI serves the two Tasks API endpoints the importer calls.
type fakeAPI struct {
	lists []map[string]any
	// pages of tasks keyed by list id
	tasks map[string][][]map[string]any
	// status overrides every response when set
	status int

	requestedLists []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.status != 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": f.status, "message": http.StatusText(f.status)},
		})
		return
	}

	path := r.URL.Path
	switch {
	case strings.HasSuffix(path, "/users/@me/lists"):
		writeJSON(w, map[string]any{"items": f.lists})
	case strings.Contains(path, "/lists/") && strings.HasSuffix(path, "/tasks"):
		id := strings.TrimSuffix(path[strings.Index(path, "/lists/")+len("/lists/"):], "/tasks")
		f.requestedLists = append(f.requestedLists, id)
		pages, ok := f.tasks[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			writeJSON(w, map[string]any{"error": map[string]any{"code": 404, "message": "not found"}})
			return
		}
		page := 0
		if tok := r.URL.Query().Get("pageToken"); tok != "" {
			page = int(tok[0] - '0')
		}
		resp := map[string]any{"items": pages[page]}
		if page+1 < len(pages) {
			resp["nextPageToken"] = string(rune('0' + page + 1))
		}
		writeJSON(w, resp)
	default:
		http.NotFound(w, r)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func newClient(t *testing.T, api *fakeAPI) *googletasks.Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := googletasks.NewWithHTTPClient(context.Background(), srv.Client(), option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	return c
}

func TestImportTasks_DefaultList(t *testing.T) {
	api := &fakeAPI{tasks: map[string][][]map[string]any{
		"@default": {{
			{"id": "a", "title": "Write report", "due": "2025-06-01T00:00:00.000Z", "status": "needsAction"},
			{"id": "b", "title": "Clean desk", "due": "2025-05-20T00:00:00.000Z", "status": "completed"},
			{"id": "c", "title": "Someday", "status": "needsAction"},
		}},
	}}
	c := newClient(t, api)

	got, err := c.ImportTasks(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Write report", got[0].Title)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got[0].EndDate)
	assert.False(t, got[0].Completed)

	assert.True(t, got[1].Completed)
	assert.True(t, got[2].EndDate.IsZero(), "missing due date stays zero")
	assert.Equal(t, []string{"@default"}, api.requestedLists)
}

func TestImportTasks_FollowsPages(t *testing.T) {
	api := &fakeAPI{tasks: map[string][][]map[string]any{
		"@default": {
			{{"id": "a", "title": "one"}, {"id": "b", "title": "two"}},
			{{"id": "c", "title": "three"}},
		},
	}}
	c := newClient(t, api)

	got, err := c.ImportTasks(context.Background(), "")
	require.NoError(t, err)

	var titles []string
	for _, it := range got {
		titles = append(titles, it.Title)
	}
	assert.Equal(t, []string{"one", "two", "three"}, titles)
	assert.Len(t, api.requestedLists, 2)
}

func TestImportTasks_NamedList(t *testing.T) {
	api := &fakeAPI{
		lists: []map[string]any{
			{"id": "L1", "title": "Personal"},
			{"id": "L2", "title": " Work "},
		},
		tasks: map[string][][]map[string]any{
			"L2": {{{"id": "a", "title": "Ship it"}}},
		},
	}
	c := newClient(t, api)

	got, err := c.ImportTasks(context.Background(), "work")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ship it", got[0].Title)
	assert.Equal(t, []string{"L2"}, api.requestedLists)
}

func TestResolveList_Errors(t *testing.T) {
	api := &fakeAPI{lists: []map[string]any{
		{"id": "L1", "title": "Work"},
		{"id": "L2", "title": "work"},
	}}
	c := newClient(t, api)

	_, err := c.ResolveList(context.Background(), "Home")
	assert.ErrorIs(t, err, googletasks.ErrListNotFound)
	assert.EqualError(t, err, "list not found: Home")

	_, err = c.ResolveList(context.Background(), "WORK")
	assert.ErrorIs(t, err, googletasks.ErrAmbiguousList)
}

func TestImportTasks_MissingListID(t *testing.T) {
	c := newClient(t, &fakeAPI{})

	_, err := c.ImportTasks(context.Background(), "")
	assert.ErrorIs(t, err, googletasks.ErrListNotFound)
}

func TestImportTasks_Unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newClient(t, &fakeAPI{status: status})

		_, err := c.ImportTasks(context.Background(), "")
		assert.ErrorIs(t, err, service.ErrAuth, "status %d", status)
	}
}

func TestImportTasks_ServerError(t *testing.T) {
	c := newClient(t, &fakeAPI{status: http.StatusInternalServerError})

	_, err := c.ImportTasks(context.Background(), "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrAuth)
	assert.NotErrorIs(t, err, googletasks.ErrListNotFound)
}

func TestNew_MissingCredentials(t *testing.T) {
	dir := t.TempDir()

	_, err := googletasks.New(context.Background(), config.New(dir))
	assert.ErrorIs(t, err, service.ErrAuth)
	assert.Contains(t, err.Error(), config.OAuthClientFile)

	client := `{"installed":{"client_id":"x","client_secret":"y","redirect_uris":["http://localhost"]}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.OAuthClientFile), []byte(client), 0600))

	_, err = googletasks.New(context.Background(), config.New(dir))
	assert.ErrorIs(t, err, service.ErrAuth)
	assert.Contains(t, err.Error(), "not logged in")

	require.NoError(t, os.WriteFile(filepath.Join(dir, config.TokenFile), []byte("{"), 0600))

	_, err = googletasks.New(context.Background(), config.New(dir))
	assert.ErrorIs(t, err, service.ErrAuth)
	assert.Contains(t, err.Error(), config.TokenFile)
}
