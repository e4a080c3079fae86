// Package holidays implements the external holiday-import collaborator: a
// best-effort scrape of a public holiday listing, with a fixed fallback of
// well-known recurring national holidays when extraction comes up empty.
package holidays

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"adeia/internal/catalog"
)

// ImportError wraps any fetch or parse failure for one year. Nothing is
// applied on failure; the caller decides whether to retry.
type ImportError struct {
	Year int
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("holiday import for %d failed: %v", e.Year, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves holidays for a calendar year from an external listing.
// The listing has no contractual structure; extraction is heuristic and the
// fallback list carries the guarantees instead.
type Fetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// datePattern matches "d/m" or "d-m" day-month pairs in the listing markup.
var datePattern = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)

// namePattern matches a run of Greek text next to a date.
var namePattern = regexp.MustCompile(`[\p{Greek}][\p{Greek} ]+`)

// FetchYear downloads the listing for a year and extracts date/name records.
// Extracted holidays are year-specific (IsFixed false); when nothing can be
// extracted the fixed fallback list is substituted.
func (f *Fetcher) FetchYear(ctx context.Context, year int) ([]catalog.Holiday, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%d", f.BaseURL, year), nil)
	if err != nil {
		return nil, &ImportError{Year: year, Err: err}
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, &ImportError{Year: year, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ImportError{Year: year, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &ImportError{Year: year, Err: err}
	}

	extracted := extract(string(body), year)
	if len(extracted) == 0 {
		slog.Warn("no holidays extracted, substituting fallback list", "year", year)
		return Fallback(year), nil
	}
	return extracted, nil
}

func extract(body string, year int) []catalog.Holiday {
	var out []catalog.Holiday
	seen := make(map[string]bool)

	for i, line := range strings.Split(body, "\n") {
		dateMatch := datePattern.FindStringSubmatch(line)
		nameMatch := namePattern.FindString(line)
		name := strings.TrimSpace(nameMatch)
		if dateMatch == nil || len(name) <= 2 {
			continue
		}
		date := fmt.Sprintf("%d-%s-%s", year, pad(dateMatch[2]), pad(dateMatch[1]))
		if seen[date] {
			continue
		}
		seen[date] = true
		out = append(out, catalog.Holiday{
			ID:          fmt.Sprintf("api_%d_%d", year, i),
			Date:        date,
			Name:        name,
			Description: fmt.Sprintf("Imported for %d", year),
			IsFixed:     false,
		})
	}
	return out
}

func pad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// Fallback returns the fixed list of well-known recurring national holidays
// for a year, each marked as recurring.
func Fallback(year int) []catalog.Holiday {
	fixed := []struct {
		monthDay string
		name     string
	}{
		{"01-01", "Πρωτοχρονιά"},
		{"01-06", "Θεοφάνεια"},
		{"03-25", "Εθνική Εορτή"},
		{"05-01", "Εργατική Πρωτομαγιά"},
		{"08-15", "Κοίμηση Θεοτόκου"},
		{"10-28", "Εθνική Εορτή"},
		{"12-25", "Χριστούγεννα"},
		{"12-26", "Σύναξη Θεοτόκου"},
	}

	out := make([]catalog.Holiday, 0, len(fixed))
	for i, h := range fixed {
		out = append(out, catalog.Holiday{
			ID:          fmt.Sprintf("fallback_%d_%d", year, i),
			Date:        fmt.Sprintf("%d-%s", year, h.monthDay),
			Name:        h.name,
			Description: fmt.Sprintf("Fallback data for %d", year),
			IsFixed:     true,
		})
	}
	return out
}
