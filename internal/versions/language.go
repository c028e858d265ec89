package versions

import (
	"errors"
	"fmt"
	"strings"
)

// Language is the tag attached to every version.
type Language string

const (
	Python     Language = "python"
	JavaScript Language = "javascript"
	Java       Language = "java"
	Cpp        Language = "cpp"
)

// ErrUnknownLanguage is returned by ParseLanguage for tags outside the set.
var ErrUnknownLanguage = errors.New("unknown language")

var languageLabels = map[Language]string{
	Python:     "Python",
	JavaScript: "JavaScript",
	Java:       "Java",
	Cpp:        "C++",
}

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{Python, JavaScript, Java, Cpp}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := languageLabels[l]
	return ok
}

// Label returns the human readable name, or the raw tag if l is unknown.
func (l Language) Label() string {
	if label, ok := languageLabels[l]; ok {
		return label
	}
	return string(l)
}

func (l Language) String() string {
	return string(l)
}

// ParseLanguage maps user input to a Language. Both tags ("cpp") and labels
// ("C++") are accepted, case-insensitively.
func ParseLanguage(input string) (Language, error) {
	want := strings.ToLower(strings.TrimSpace(input))
	for _, lang := range Languages() {
		if want == string(lang) || want == strings.ToLower(lang.Label()) {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownLanguage, input, languageList())
}

func languageList() string {
	tags := make([]string, 0, len(languageLabels))
	for _, lang := range Languages() {
		tags = append(tags, string(lang))
	}
	return strings.Join(tags, ", ")
}
