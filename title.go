package vubresto

import "strings"

// CheckTitle resolves a restaurant section title into a RestaurantKey. A
// title must mention "menu" and at least one known campus, otherwise the
// zero key is returned and the section should be skipped. When a title
// mentions several campuses, the first campus in the Campuses enumeration
// wins. Language comes from the "week menu" (English) or "weekmenu" (Dutch)
// marker; titles carrying neither resolve to the unknown sentinel.
func CheckTitle(line string) RestaurantKey {
	line = strings.ToLower(line)
	if !strings.Contains(line, "menu") {
		return RestaurantKey{}
	}

	key := RestaurantKey{Language: LanguageUnknown}
	for _, campus := range Campuses {
		if strings.Contains(line, string(campus)) {
			key.Campus = campus
			break
		}
	}
	if key.Campus == "" {
		return RestaurantKey{}
	}

	// The markers are textually distinct: "weekmenu" is never a substring
	// of "week menu", so at most one of these matches.
	if strings.Contains(line, "week menu") {
		key.Language = LanguageEnglish
	}
	if strings.Contains(line, "weekmenu") {
		key.Language = LanguageDutch
	}

	return key
}
