package vubresto

import (
	"log/slog"

	"github.com/PuerkitoBio/goquery"
)

// dateFormat is how entry dates appear in the output files.
const dateFormat = "2006-01-02"

// ParseRestaurant walks one restaurant's day blocks in document order and
// returns one MenuEntry per day. Days whose heading does not parse as a
// date get one inferred from the previous day; days for which not even
// that is possible are dropped. A menu line that fails to parse is
// recorded as a nil item in place, so the day keeps its remaining items at
// stable positions.
func ParseRestaurant(key RestaurantKey, week []DayBlock, colors *ColorTable) []MenuEntry {
	entries := make([]MenuEntry, 0, len(week))
	cursor := NewDateCursor()

	for _, day := range week {
		dateText := day.sel.Find(selDate).First().Text()
		date, ok := CheckDate(dateText)
		if ok {
			cursor.Set(date)
		} else {
			slog.Warn("failed to parse date",
				"restaurant", key.String(), "line", NormalizeText(dateText))
			date, ok = cursor.Next()
			if !ok {
				slog.Error("could not derive date from previous days",
					"restaurant", key.String(), "line", NormalizeText(dateText))
				continue
			}
		}

		menus := make([]*MenuItem, 0)
		day.sel.Find(selMeals).Each(func(_ int, li *goquery.Selection) {
			item, err := ParseMenuLine(li.Text(), colors)
			if err != nil {
				slog.Warn("failed to parse menu line",
					"restaurant", key.String(),
					"date", date.Format(dateFormat),
					"line", NormalizeText(li.Text()),
					"err", err)
			}
			menus = append(menus, item)
		})

		entries = append(entries, MenuEntry{
			Date:  date.Format(dateFormat),
			Menus: menus,
		})
	}

	return entries
}
