// Package holidays fetches the official holidays of a Jalali year and caches
// them on disk so repeated calendar prints stay offline.
package holidays

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/Davoodeh/jcal/internal/date"
)

// baseURL serves a year of holiday data as JSON.
var baseURL = "https://pnldev.com/api/calender"

// cacheDir locates the user cache root; swapped in tests.
var cacheDir = os.UserCacheDir

// Calendar maps "year-month-day" Jalali keys to holiday descriptions.
type Calendar map[string]string

// Key builds the lookup key for a Jalali date.
func Key(year, month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, month, day)
}

// Lookup returns the holiday description for a date of either calendar.
func (c Calendar) Lookup(d date.Date) (string, bool) {
	y, m, dd := d.Convert(date.Jalali).YMD()
	s, ok := c[Key(y, m, dd)]
	return s, ok
}

// The endpoint nests days under their month, both keyed by number.
type apiResponse struct {
	Status bool                         `json:"status"`
	Result map[string]map[string]apiDay `json:"result"`
}

type apiDay struct {
	Solar   apiDate  `json:"solar"`
	Holiday bool     `json:"holiday"`
	Event   []string `json:"event"`
}

type apiDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Fetch returns the holidays of a Jalali year, preferring the on-disk cache
// and filling it after a successful download.
func Fetch(year int) (Calendar, error) {
	if cal, err := readCache(year); err == nil {
		return cal, nil
	}

	cal, err := download(year)
	if err != nil {
		return nil, err
	}
	// a failed cache write only costs the next run a refetch
	_ = writeCache(year, cal)
	return cal, nil
}

func download(year int) (Calendar, error) {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Fetching holidays..."),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
	)
	defer func() {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}()

	client := &http.Client{Timeout: 30 * time.Second}
	url := fmt.Sprintf("%s?year=%d&holiday=true", baseURL, year)
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching holidays: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching holidays: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading holiday response: %w", err)
	}
	return parse(body)
}

// parse extracts the holiday days of an API response into a Calendar.
func parse(body []byte) (Calendar, error) {
	var r apiResponse
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("decoding holiday response: %w", err)
	}
	if !r.Status {
		return nil, fmt.Errorf("holiday service reported failure")
	}
	cal := make(Calendar)
	for _, days := range r.Result {
		for _, d := range days {
			if !d.Holiday {
				continue
			}
			event := "Holiday"
			if len(d.Event) > 0 {
				event = strings.Join(d.Event, "; ")
			}
			cal[Key(d.Solar.Year, d.Solar.Month, d.Solar.Day)] = event
		}
	}
	return cal, nil
}

func cachePath(year int) (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "jcal", fmt.Sprintf("holidays_%d.json", year)), nil
}

func readCache(year int) (Calendar, error) {
	p, err := cachePath(year)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	var cal Calendar
	if err := json.Unmarshal(data, &cal); err != nil {
		return nil, err
	}
	return cal, nil
}

func writeCache(year int, cal Calendar) error {
	p, err := cachePath(year)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(cal)
	if err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o644)
}
