package translate

import (
	"fmt"
	"strings"
)

// Language pairs a display name with its ISO 639-1 code. The display
// name is what the translation prompt uses.
type Language struct {
	Name string
	Code string
}

// Supported is the fixed set of translation targets.
var Supported = []Language{
	{Name: "Turkish", Code: "tr"},
	{Name: "English", Code: "en"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Spanish", Code: "es"},
	{Name: "Italian", Code: "it"},
}

// ByCode looks up a supported language by its ISO code.
func ByCode(code string) (Language, bool) {
	for _, l := range Supported {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Parse resolves a language code or display name, case-insensitively.
func Parse(s string) (Language, error) {
	s = strings.TrimSpace(s)
	for _, l := range Supported {
		if strings.EqualFold(s, l.Code) || strings.EqualFold(s, l.Name) {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("unsupported language %q", s)
}
