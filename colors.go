package vubresto

import "strings"

// DefaultColor is the fallback for menu names missing from the color table.
// Unknown names are expected whenever the kitchen invents a new category.
const DefaultColor = "#f0eb93" // very light yellow

// ColorTable maps normalized, lower-cased menu-category names to display
// colors. It is built once at startup and never mutated afterwards.
type ColorTable struct {
	colors   map[string]string
	fallback string
}

// DefaultColors returns the table covering the menu categories currently
// served on both campuses, in both languages.
func DefaultColors() *ColorTable {
	return &ColorTable{
		fallback: DefaultColor,
		colors: map[string]string{
			"soep":               "#fdb85b", // yellow
			"soup":               "#fdb85b", // yellow
			"menu 1":             "#68b6f3", // blue
			"dag menu":           "#68b6f3", // blue
			"dagmenu":            "#68b6f3", // blue
			"health":             "#ff9861", // orange
			"vis":                "#ff9861", // orange
			"fish":               "#ff9861", // orange
			"menu 2":             "#cc93d5", // purple
			"meals of the world": "#cc93d5", // purple
			"fairtrade":          "#cc93d5", // purple
			"fairtrade menu":     "#cc93d5", // purple
			"veggie":             "#87b164", // green
			"veggiedag":          "#87b164", // green
			"pasta":              "#de694a", // red
			"pasta bar":          "#de694a", // red
			"wok":                "#6c4c42", // brown
		},
	}
}

// Lookup resolves the display color for a menu name, case-insensitively.
// The second return value is false when the name is unknown and the
// fallback color was used instead.
func (t *ColorTable) Lookup(name string) (string, bool) {
	color, ok := t.colors[strings.ToLower(name)]
	if !ok {
		return t.fallback, false
	}
	return color, true
}
