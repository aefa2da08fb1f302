// Package campus talks to the campus data broker and the faculty feeds: the
// people catalog, canteens and their daily menus, the timetable catalog, the
// intranet news feed and personal iCal timetables.
package campus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/studentai/campus_bot/internal/model"
	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// Canteen is one canteen from the broker's canteen list.
type Canteen struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Meal is a single dish on a canteen line.
type Meal struct {
	Name  string  `json:"meal"`
	Price float64 `json:"price1"`
}

// MenuLine is one serving line of a canteen with its meals of the day.
type MenuLine struct {
	Name  string `json:"name"`
	Meals []Meal `json:"meals"`
}

// CanteenMenu is the menu of one canteen for one day. Lines is empty when
// the canteen serves nothing that day.
type CanteenMenu struct {
	Name  string     `json:"name"`
	Lines []MenuLine `json:"lines"`
}

// Semester is one timetable entry of the broker's semester catalog.
type Semester struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	SemesterNumber   int     `json:"semesterNumber"`
	ICalFileHTTPLink string  `json:"iCalFileHttpLink"`
	Course           *Course `json:"course"`
}

type Course struct {
	Name    string   `json:"name"`
	Faculty *Faculty `json:"faculty"`
}

type Faculty struct {
	ID string `json:"id"`
}

// Persons fetches the complete people catalog.
func (c *Client) Persons(ctx context.Context) ([]model.Person, error) {
	var persons []model.Person
	if err := c.getJSON(ctx, "/persons/", &persons); err != nil {
		return nil, fmt.Errorf("fetch persons: %w", err)
	}

	c.logger.Info("Fetched people catalog", zap.Int("count", len(persons)))
	return persons, nil
}

// Canteens fetches the list of known canteens.
func (c *Client) Canteens(ctx context.Context) ([]Canteen, error) {
	var canteens []Canteen
	if err := c.getJSON(ctx, "/canteen", &canteens); err != nil {
		return nil, fmt.Errorf("fetch canteens: %w", err)
	}
	return canteens, nil
}

// MenuOfTheDay fetches a canteen's menu for the given day. Lines without
// meals are dropped; when the broker has no menu at all the canteen name is
// resolved from the canteen list so the caller can still address it.
func (c *Client) MenuOfTheDay(ctx context.Context, canteenID int64, date time.Time) (*CanteenMenu, error) {
	path := fmt.Sprintf("/canteen/%d/date/%s", canteenID, date.Format("2006-01-02"))

	var menus []CanteenMenu
	if err := c.getJSON(ctx, path, &menus); err != nil {
		return nil, fmt.Errorf("fetch canteen menu: %w", err)
	}

	if len(menus) == 0 || len(menus[0].Lines) == 0 {
		canteens, err := c.Canteens(ctx)
		if err != nil {
			return nil, err
		}
		for _, canteen := range canteens {
			if canteen.ID == canteenID {
				return &CanteenMenu{Name: canteen.Name}, nil
			}
		}
		return nil, fmt.Errorf("canteen %d not found", canteenID)
	}

	menu := menus[0]
	lines := make([]MenuLine, 0, len(menu.Lines))
	for _, line := range menu.Lines {
		if len(line.Meals) > 0 {
			lines = append(lines, line)
		}
	}
	menu.Lines = lines

	return &menu, nil
}

// Semesters fetches the timetable catalog.
func (c *Client) Semesters(ctx context.Context) ([]Semester, error) {
	var semesters []Semester
	if err := c.getJSON(ctx, "/semesters/", &semesters); err != nil {
		return nil, fmt.Errorf("fetch semesters: %w", err)
	}
	return semesters, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}
