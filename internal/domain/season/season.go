package season

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidLabel = errors.New("invalid season label")

var labelPattern = regexp.MustCompile(`^(\d{2})/(\d{2})$`)

// Label is a football season in "YY/YY" form, e.g. "23/24".
type Label string

// Parse validates a "YY/YY" label whose second year follows the first.
func Parse(raw string) (Label, error) {
	s := strings.TrimSpace(raw)
	m := labelPattern.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, raw)
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	if (first+1)%100 != second {
		return "", fmt.Errorf("%w: %q does not span consecutive years", ErrInvalidLabel, raw)
	}
	return Label(s), nil
}

// FromStartYear builds the label of the season starting in year.
func FromStartYear(year int) Label {
	return Label(fmt.Sprintf("%02d/%02d", year%100, (year+1)%100))
}

func (l Label) String() string { return string(l) }

// StartYear is 2000 plus the first two digits. It returns 0 for a malformed label.
func (l Label) StartYear() int {
	return StartYearOf(string(l))
}

// StartYearOf also accepts the four-digit form ("2019/2020") found on
// player history pages. It returns 0 when no year can be read.
func StartYearOf(raw string) int {
	head, _, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return 0
	}
	switch len(head) {
	case 2:
		return 2000 + n
	case 4:
		return n
	default:
		return 0
	}
}

// Range returns the labels from first to last start year, inclusive.
func Range(firstYear, lastYear int) []Label {
	if lastYear < firstYear {
		return nil
	}
	out := make([]Label, 0, lastYear-firstYear+1)
	for y := firstYear; y <= lastYear; y++ {
		out = append(out, FromStartYear(y))
	}
	return out
}

// Set is a membership filter over labels.
type Set map[Label]struct{}

func NewSet(labels ...Label) Set {
	s := make(Set, len(labels))
	for _, l := range labels {
		s[l] = struct{}{}
	}
	return s
}

// Contains reports membership. An empty set contains every label.
func (s Set) Contains(l Label) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[l]
	return ok
}
