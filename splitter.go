package vubresto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Selectors matching the structural shape of the menu page: restaurant
// containers holding content sections, of which the first carries the
// title and the rest are day blocks.
const (
	selRestaurant = "div.pg-tab"
	selContent    = "div.rd-content-holder"
	selTitle      = "h2"
	selDate       = "p"
	selMeals      = "ul li"
)

// ErrNoRestaurants signals a page from which no restaurant section could be
// resolved. The whole run aborts: there is nothing to fall back to.
var ErrNoRestaurants = errors.New("page contains no resolvable restaurant sections")

// DayBlock is one calendar day's markup fragment inside a restaurant's
// weekly section. Blocks are ordered by document position, not by date.
type DayBlock struct {
	sel *goquery.Selection
}

// FetchDocument retrieves the menu page and parses it into a DOM tree. Any
// transport or parse failure is fatal for the run; there is no
// partial-document fallback.
func FetchDocument(url string, timeout time.Duration) (*goquery.Document, error) {
	client := &http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "vubresto/1.0 (weekly menu parser)")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, nil
}

// SplitRestaurants partitions the page into one weekly day-block sequence
// per resolvable (campus, language) pair. Containers whose title cannot be
// resolved are skipped with a warning and the run continues without them.
func SplitRestaurants(doc *goquery.Document) (map[RestaurantKey][]DayBlock, error) {
	weeks := make(map[RestaurantKey][]DayBlock)

	doc.Find(selRestaurant).Each(func(_ int, div *goquery.Selection) {
		sections := div.Find(selContent)
		if sections.Length() == 0 {
			return
		}

		title := sections.First().Find(selTitle).First().Text()
		key := CheckTitle(title)
		if !key.Resolved() {
			slog.Warn("failed to resolve restaurant title", "title", NormalizeText(title))
			return
		}

		days := make([]DayBlock, 0, sections.Length()-1)
		sections.Slice(1, sections.Length()).Each(func(_ int, day *goquery.Selection) {
			days = append(days, DayBlock{sel: day})
		})
		weeks[key] = days
	})

	if len(weeks) == 0 {
		return nil, ErrNoRestaurants
	}
	return weeks, nil
}
