package vubresto

import (
	"errors"
	"log/slog"
	"strings"
)

// ErrNoSeparator marks a menu line missing the "name: dish" colon.
var ErrNoSeparator = errors.New("menu line has no name/dish separator")

// Boilerplate suffixes stripped from menu names so that the same category
// gets the same name on both campuses.
var nameSuffixes = []string{" of the week", " van de week"}

// NormalizeText replaces non-breaking spaces with regular ones and trims
// the result, so text lifted out of markup is safe to serialize.
func NormalizeText(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "\u00a0", " "))
}

// ParseMenuLine parses a single "Menu name: Dish name" line into a
// MenuItem. The dish keeps any further colons. Menu names missing from the
// color table get the fallback color and a logged warning; that is expected
// for novel categories and never an error.
func ParseMenuLine(line string, colors *ColorTable) (*MenuItem, error) {
	name, dish, found := strings.Cut(line, ":")
	if !found {
		return nil, ErrNoSeparator
	}

	name = NormalizeText(name)
	dish = NormalizeText(dish)
	for _, suffix := range nameSuffixes {
		name = strings.ReplaceAll(name, suffix, "")
	}

	color, known := colors.Lookup(name)
	if !known {
		slog.Warn("no color found for menu", "name", name)
	}

	return &MenuItem{Name: name, Dish: dish, Color: color}, nil
}
