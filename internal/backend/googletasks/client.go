// Package googletasks implements service.Importer using the Google Tasks API.
// It only reads: nothing in a session is written back.
package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"taskpad/internal/config"
	"taskpad/internal/logging"
	"taskpad/internal/service"
	"taskpad/internal/task"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks per page.
	PageSize = 100

	// APITimeout is the timeout for a whole import.
	APITimeout = 30 * time.Second

	// Scope is the OAuth scope requested at login.
	Scope = tasks.TasksReadonlyScope

	statusCompleted = "completed"
)

var (
	// ErrListNotFound indicates no list has the requested name.
	ErrListNotFound = errors.New("list not found")

	// ErrAmbiguousList indicates several lists share the requested name.
	ErrAmbiguousList = errors.New("ambiguous list name")
)

// Client implements service.Importer using Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// New creates a client from the stored OAuth client and token.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w: %s not found in %s", service.ErrAuth, config.OAuthClientFile, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, fmt.Errorf("%w: not logged in (run: taskpad login)", service.ErrAuth)
	}

	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", service.ErrAuth, config.OAuthClientFile, err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s: %v", service.ErrAuth, config.OAuthClientFile, err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", service.ErrAuth, config.TokenFile, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("%w: invalid %s: %v", service.ErrAuth, config.TokenFile, err)
	}

	// Token source auto-refreshes
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))
	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client.
// Extra options (such as option.WithEndpoint) point it at a test server.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ImportTasks implements service.Importer.
// Every task of the list is returned, completed and hidden ones included.
func (c *Client) ImportTasks(ctx context.Context, listName string) ([]task.Imported, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	listID := DefaultListID
	if strings.TrimSpace(listName) != "" {
		list, err := c.ResolveList(ctx, listName)
		if err != nil {
			return nil, err
		}
		listID = list.Id
	}

	var result []task.Imported
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, item := range resp.Items {
				result = append(result, toImported(item))
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}

	logging.FromContext(ctx).Debug("tasks fetched", "list", listID, "count", len(result))
	return result, nil
}

// ResolveList finds a list by name (case-insensitive, trimmed).
func (c *Client) ResolveList(ctx context.Context, name string) (*tasks.TaskList, error) {
	name = strings.TrimSpace(name)

	var matches []*tasks.TaskList
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			if strings.EqualFold(strings.TrimSpace(list.Title), name) {
				matches = append(matches, list)
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrListNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousList, name)
	}
}

// toImported maps an API task. A missing or unparsable due date is left
// zero so the store rejects the task.
func toImported(item *tasks.Task) task.Imported {
	var due time.Time
	if item.Due != "" {
		if t, err := time.Parse(time.RFC3339, item.Due); err == nil {
			due = t.UTC()
		}
	}
	return task.Imported{
		Draft:     task.Draft{Title: item.Title, EndDate: due},
		Completed: item.Status == statusCompleted,
	}
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: token expired or revoked (run: taskpad login)", service.ErrAuth)
		case http.StatusNotFound:
			return ErrListNotFound
		}
	}

	return err
}
