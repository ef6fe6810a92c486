package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
)

// NameSuggestion pairs two canonical names that look like one club. It is
// a prompt for alias curation; nothing is merged automatically.
type NameSuggestion struct {
	A          string  `json:"a"`
	B          string  `json:"b"`
	Similarity float64 `json:"similarity"`
}

type ClubAudit struct {
	Names       []string         `json:"names"`
	Suggestions []NameSuggestion `json:"suggestions"`
}

// squadSuffix matches reserve and youth team suffixes such as "II" or "U19".
var squadSuffix = regexp.MustCompile(`\s+(II|III|B|U\d{2}|Youth|YL)$`)

type AuditService struct {
	transfers transfer.Repository
	threshold float64
}

func NewAuditService(transfers transfer.Repository, threshold float64) *AuditService {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.92
	}
	return &AuditService{transfers: transfers, threshold: threshold}
}

// Audit lists the sorted unique club names of both roles and the pairs whose
// Jaro-Winkler similarity reaches the threshold. Senior and reserve or
// youth sides of one club are never suggested.
func (s *AuditService) Audit(ctx context.Context) (ClubAudit, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuditService.Audit")
	defer span.End()

	records, err := s.transfers.ListRecords(ctx)
	if err != nil {
		return ClubAudit{}, fmt.Errorf("list records: %w", err)
	}

	unique := make(map[string]struct{})
	for _, r := range records {
		for _, name := range []string{r.Origin.Club, r.Destination.Club} {
			if name = strings.TrimSpace(name); name != "" {
				unique[name] = struct{}{}
			}
		}
	}
	audit := ClubAudit{Names: make([]string, 0, len(unique))}
	for name := range unique {
		audit.Names = append(audit.Names, name)
	}
	sort.Strings(audit.Names)

	for i := 0; i < len(audit.Names); i++ {
		a := audit.Names[i]
		if club.IsPlaceholderName(a) {
			continue
		}
		for j := i + 1; j < len(audit.Names); j++ {
			b := audit.Names[j]
			if club.IsPlaceholderName(b) || sameFamily(a, b) {
				continue
			}
			if sim := matchr.JaroWinkler(strings.ToLower(a), strings.ToLower(b), false); sim >= s.threshold {
				audit.Suggestions = append(audit.Suggestions, NameSuggestion{A: a, B: b, Similarity: sim})
			}
		}
	}
	sort.SliceStable(audit.Suggestions, func(i, j int) bool {
		return audit.Suggestions[i].Similarity > audit.Suggestions[j].Similarity
	})
	return audit, nil
}

func sameFamily(a, b string) bool {
	baseA := squadSuffix.ReplaceAllString(a, "")
	baseB := squadSuffix.ReplaceAllString(b, "")
	return baseA == baseB && a != b
}
