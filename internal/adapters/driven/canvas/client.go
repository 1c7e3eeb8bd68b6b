package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/mizzou-cs-core/assignment-window/internal/core/domain"
	"github.com/mizzou-cs-core/assignment-window/internal/core/ports/driven"
	"github.com/mizzou-cs-core/assignment-window/internal/logger"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Ensure Client implements the interface.
var _ driven.AssignmentSource = (*Client)(nil)

// Client is a minimal read-only Canvas REST client.
type Client struct {
	http        *http.Client
	baseURL     *url.URL
	rateLimiter *RateLimiter
	perPage     int
}

// assignmentJSON is the subset of the Canvas Assignment object we read.
type assignmentJSON struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	UnlockAt *time.Time `json:"unlock_at"`
	DueAt    *time.Time `json:"due_at"`
}

// errorJSON is the Canvas error envelope.
type errorJSON struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
	Message string `json:"message"`
}

// NewClient creates a Canvas client authenticating with a static API token.
func NewClient(ctx context.Context, baseURL, token string) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return NewClientWithHTTPClient(baseURL, tc)
}

// NewClientWithHTTPClient creates a Canvas client with a custom http.Client.
// The http.Client is responsible for authentication.
func NewClientWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	if baseURL == "" {
		baseURL = domain.DefaultCanvasBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse base url: %q is not absolute", baseURL)
	}

	return &Client{
		http:        httpClient,
		baseURL:     u,
		rateLimiter: NewRateLimiter(),
		perPage:     DefaultPerPage,
	}, nil
}

// ListAssignments returns every assignment of a course in Canvas order.
// All pages are fetched; a failure on any page fails the whole call.
func (c *Client) ListAssignments(ctx context.Context, courseID int64) ([]domain.RemoteAssignment, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCourse, courseID)
	}

	next := c.baseURL.ResolveReference(&url.URL{
		Path:     "courses/" + strconv.FormatInt(courseID, 10) + "/assignments",
		RawQuery: url.Values{"per_page": {strconv.Itoa(c.perPage)}}.Encode(),
	})

	var all []domain.RemoteAssignment
	seen := make(map[string]bool)

	for next != nil {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if seen[next.String()] {
			return nil, fmt.Errorf("%w: %s", ErrPaginationLoop, next)
		}
		seen[next.String()] = true

		page, resp, err := c.getAssignmentsPage(ctx, next)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		logger.Debug("Fetched %d assignments from %s", len(page), next.Path)

		next, err = NextPage(next, resp.Header.Get("Link"))
		if err != nil {
			return nil, fmt.Errorf("parse link header: %w", err)
		}
	}

	return all, nil
}

// getAssignmentsPage fetches and decodes one page.
func (c *Client) getAssignmentsPage(
	ctx context.Context, pageURL *url.URL,
) ([]domain.RemoteAssignment, *http.Response, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("list assignments: %w", err)
	}
	defer resp.Body.Close()

	if err := c.rateLimiter.CheckRateLimit(resp); err != nil {
		return nil, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, c.apiError(resp)
	}

	var raw []assignmentJSON
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode assignments: %w", err)
	}

	page := make([]domain.RemoteAssignment, 0, len(raw))
	for _, a := range raw {
		page = append(page, domain.RemoteAssignment{
			ID:     a.ID,
			Name:   a.Name,
			OpenAt: utc(a.UnlockAt),
			DueAt:  utc(a.DueAt),
		})
	}
	return page, resp, nil
}

// apiError converts a non-200 response into an APIError.
func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024)) //nolint:errcheck // best effort

	message := http.StatusText(resp.StatusCode)
	var envelope errorJSON
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case len(envelope.Errors) > 0 && envelope.Errors[0].Message != "":
			message = envelope.Errors[0].Message
		case envelope.Message != "":
			message = envelope.Message
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
		URL:        redact(resp.Request),
	}
}

// redact returns the request URL without its query string.
func redact(req *http.Request) string {
	if req == nil || req.URL == nil {
		return ""
	}
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
