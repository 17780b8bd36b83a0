// Package contrib turns a GitHub contribution calendar into a 7x52 grid:
// one column per week, one row per weekday, alive on days with activity.
package contrib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"time"

	"contrib-life/pkg/core"
)

const (
	Weeks = 52
	Days  = 7 * Weeks
)

// DefaultBaseURL serves /users/<name>/contributions.
const DefaultBaseURL = "https://github.com"

// ErrNoCells is returned when a page contains no dated calendar cells.
var ErrNoCells = errors.New("contrib: no calendar cells found")

// Day is one calendar cell.
type Day struct {
	Date  time.Time
	Count int
}

var cellPattern = regexp.MustCompile(
	`(?i)<(?:rect|td)\b[^>]*\bdata-date="(\d{4}-\d{2}-\d{2})"[^>]*\bdata-(?:count|level)="(\d+)"[^>]*>`,
)

// Parse extracts every dated cell from a calendar page, sorted by date.
// Cells with unparseable dates are skipped.
func Parse(r io.Reader) ([]Day, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("contrib: read: %w", err)
	}
	var days []Day
	for _, m := range cellPattern.FindAllSubmatch(body, -1) {
		date, err := time.Parse(time.DateOnly, string(m[1]))
		if err != nil {
			continue
		}
		count, err := strconv.Atoi(string(m[2]))
		if err != nil {
			count = 0
		}
		days = append(days, Day{Date: date, Count: count})
	}
	if len(days) == 0 {
		return nil, ErrNoCells
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

// BuildGrid lays out the most recent 364 days. Day i of the window lands in
// column i/7 and row i%7; missing leading days count as inactive.
func BuildGrid(days []Day) core.Grid {
	b := core.NewBuilder(7, Weeks)
	if len(days) == 0 {
		return b.Build()
	}
	last := days[len(days)-1].Date
	cutoff := last.AddDate(0, 0, -(Days - 1))
	var window []Day
	for _, d := range days {
		if !d.Date.Before(cutoff) {
			window = append(window, d)
		}
	}
	if len(window) > Days {
		window = window[len(window)-Days:]
	}
	pad := Days - len(window)
	for i, d := range window {
		idx := pad + i
		if d.Count > 0 {
			b.Set(idx/7, idx%7, core.Alive)
		}
	}
	return b.Build()
}

// Client fetches contribution calendars over HTTP.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// NewClient returns a Client for github.com with a request timeout.
func NewClient() *Client {
	return &Client{HTTP: &http.Client{Timeout: 30 * time.Second}, BaseURL: DefaultBaseURL}
}

// Fetch downloads and parses the calendar of user.
func (c *Client) Fetch(ctx context.Context, user string) ([]Day, error) {
	u := c.BaseURL + "/users/" + url.PathEscape(user) + "/contributions"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contrib: get %s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("contrib: get %s: status %d", u, resp.StatusCode)
	}
	return Parse(resp.Body)
}

// FetchGrid downloads the calendar of user and lays it out as a grid.
func (c *Client) FetchGrid(ctx context.Context, user string) (core.Grid, error) {
	days, err := c.Fetch(ctx, user)
	if err != nil {
		return core.Grid{}, err
	}
	return BuildGrid(days), nil
}
