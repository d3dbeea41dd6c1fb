package locale

import "golang.org/x/text/language"

// Negotiate selects the best supported locale for an Accept-Language header,
// using the standard matcher from golang.org/x/text. The first supported code
// acts as the default when the header is empty, malformed, or matches
// nothing. It returns the zero Code only when supported is empty or contains
// no parseable codes.
//
// Example:
//
//	code := locale.Negotiate(r.Header.Get("Accept-Language"), []locale.Code{"en", "fr", "de"})
func Negotiate(header string, supported []Code) Code {
	tags := make([]language.Tag, 0, len(supported))
	indices := make([]int, 0, len(supported))
	for i, code := range supported {
		tag, err := language.Parse(string(code))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		indices = append(indices, i)
	}
	if len(tags) == 0 {
		return ""
	}

	matcher := language.NewMatcher(tags)
	_, index := language.MatchStrings(matcher, header)
	return supported[indices[index]]
}
