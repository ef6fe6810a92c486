package transfer

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

// AgeAtTransfer is the season start year minus the birth year. Birth dates
// come as "D/M/Y" or "Y-M-D"; anything else yields ok == false.
func AgeAtTransfer(dateOfBirth *string, s season.Label) (age int, ok bool) {
	if dateOfBirth == nil {
		return 0, false
	}
	dob := strings.TrimSpace(*dateOfBirth)

	var yearText string
	switch {
	case strings.Contains(dob, "/"):
		parts := strings.Split(dob, "/")
		yearText = parts[len(parts)-1]
	case strings.Contains(dob, "-"):
		yearText, _, _ = strings.Cut(dob, "-")
	default:
		return 0, false
	}

	birthYear, err := strconv.Atoi(strings.TrimSpace(yearText))
	if err != nil {
		return 0, false
	}
	start := s.StartYear()
	if start == 0 {
		return 0, false
	}
	return start - birthYear, true
}

type Migration string

const (
	MigrationDomestic      Migration = "Domestic Move"
	MigrationExport        Migration = "Export (Out)"
	MigrationRepatriation  Migration = "Repatriation (Return)"
	MigrationForeignImport Migration = "Foreign Import"
	MigrationExternal      Migration = "External"
)

// MigrationClassifier labels a move relative to one home country.
type MigrationClassifier struct {
	HomeCountry string
}

func NewMigrationClassifier(homeCountry string) MigrationClassifier {
	return MigrationClassifier{HomeCountry: strings.TrimSpace(homeCountry)}
}

func (c MigrationClassifier) Classify(originCountry, destinationCountry string, citizenship *string) Migration {
	originHome := strings.TrimSpace(originCountry) == c.HomeCountry
	destHome := strings.TrimSpace(destinationCountry) == c.HomeCountry

	switch {
	case originHome && destHome:
		return MigrationDomestic
	case originHome:
		return MigrationExport
	case destHome:
		if citizenship != nil && c.HomeCountry != "" && strings.Contains(*citizenship, c.HomeCountry) {
			return MigrationRepatriation
		}
		return MigrationForeignImport
	default:
		return MigrationExternal
	}
}

func (c MigrationClassifier) ClassifyRecord(r Record) Migration {
	return c.Classify(r.Origin.Country, r.Destination.Country, r.Citizenship)
}

// UIType collapses the transfer type into Loan, Fee or Free for display.
func UIType(r Record) string {
	switch {
	case strings.Contains(strings.ToLower(string(r.Type)), "loan"):
		return "Loan"
	case r.FeeEstM > 0:
		return "Fee"
	default:
		return "Free"
	}
}
