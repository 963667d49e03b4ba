package tray

// Language pairs a short code with its human-readable display name.
type Language struct {
	Code  string
	Label string
}

// DefaultLanguage is checked at startup unless config overrides it.
const DefaultLanguage = "fr"

// Catalog returns the supported dictation languages in menu order.
// The catalog is static configuration; codes double as menu item ids.
func Catalog() []Language {
	return []Language{
		{"fr", "Français"},
		{"en", "English"},
		{"es", "Español"},
		{"de", "Deutsch"},
		{"it", "Italiano"},
		{"pt", "Português"},
		{"nl", "Nederlands"},
		{"pl", "Polski"},
		{"ru", "Русский"},
		{"zh", "中文"},
		{"ja", "日本語"},
		{"ko", "한국어"},
		{"ar", "العربية"},
	}
}

func inCatalog(code string) bool {
	for _, lang := range Catalog() {
		if lang.Code == code {
			return true
		}
	}
	return false
}
