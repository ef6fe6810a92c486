package club

import "strings"

// UnknownName is the canonical name given to a blank club reference.
const UnknownName = "Unknown"

// Alias maps one scraped spelling to its canonical club name.
type Alias struct {
	Variant  string
	Standard string
}

// Listing is a club discovered on a competition table and the page that
// lists its transfers.
type Listing struct {
	Name        string
	ID          int64
	TransferURL string
}

// placeholderIDs are upstream pseudo-clubs: 75 Unknown, 515 Without Club,
// 123 Retired. 0 stands for a missing id.
var placeholderIDs = map[int64]struct{}{0: {}, 75: {}, 515: {}, 123: {}}

var placeholderNames = map[string]struct{}{
	"Unknown":          {},
	"Retired":          {},
	"Without Club":     {},
	"Disqualification": {},
	"Career break":     {},
	"Ban":              {},
	"Rest":             {},
	"TBD":              {},
	"nan":              {},
	"None":             {},
}

// IsPlaceholderID reports whether id names a pseudo-club rather than a club.
func IsPlaceholderID(id int64) bool {
	_, ok := placeholderIDs[id]
	return ok
}

// IsPlaceholderName reports whether name is a status such as "Retired"
// rather than a club.
func IsPlaceholderName(name string) bool {
	_, ok := placeholderNames[strings.TrimSpace(name)]
	return ok
}

// IsResolvable reports whether a club reference can be looked up upstream:
// it needs a real id and a name that is not a placeholder.
func IsResolvable(id *int64, name string) bool {
	if id == nil || IsPlaceholderID(*id) {
		return false
	}
	return !IsPlaceholderName(name)
}
