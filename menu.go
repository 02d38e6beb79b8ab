package vubresto

// Campus identifies one of the physical restaurant locations.
type Campus string

const (
	CampusEtterbeek Campus = "etterbeek"
	CampusJette     Campus = "jette"
)

// Campuses lists every known campus. Order matters: when a title mentions
// more than one campus, the first match in this list wins.
var Campuses = []Campus{CampusEtterbeek, CampusJette}

// Language identifies the language a weekly menu is written in.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageDutch   Language = "nl"
	LanguageUnknown Language = "unknown"
)

// RestaurantKey identifies one weekly menu feed: a campus in a language.
// The zero value means the key could not be resolved from a title.
type RestaurantKey struct {
	Campus   Campus
	Language Language
}

// String renders the key in its canonical "<campus>.<language>" form, which
// is also the base name of the output file.
func (k RestaurantKey) String() string {
	return string(k.Campus) + "." + string(k.Language)
}

// Resolved reports whether the key was successfully recovered from a title.
func (k RestaurantKey) Resolved() bool {
	return k.Campus != ""
}

// MenuItem is a single line of a day's menu.
type MenuItem struct {
	Name  string `json:"name"`
	Dish  string `json:"dish"`
	Color string `json:"color"`
}

// MenuEntry is one calendar day of a restaurant's week. Menus preserves
// document order; an element is nil when its line could not be parsed, and
// serializes as JSON null so consumers keep stable positions.
type MenuEntry struct {
	Date  string      `json:"date"`
	Menus []*MenuItem `json:"menus"`
}
