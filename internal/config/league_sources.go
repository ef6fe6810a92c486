package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/leaguehistory"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/validation"
)

type leagueSourcesFile struct {
	Leagues []leaguehistory.Source `yaml:"leagues" validate:"required,min=1,dive"`
}

// DefaultLeagueSources are the two Romanian tiers for seasons 19/20 to 25/26.
func DefaultLeagueSources() []leaguehistory.Source {
	seasons := season.Range(2019, 2025)
	return []leaguehistory.Source{
		{League: "Superliga", Code: "RO1", Slug: "superliga", Seasons: seasons},
		{League: "Liga 2", Code: "RO2", Slug: "liga-2", Seasons: append([]season.Label(nil), seasons...)},
	}
}

// LoadLeagueSources reads the competitions to harvest from a YAML file. An
// empty path yields DefaultLeagueSources.
func LoadLeagueSources(path string) ([]leaguehistory.Source, error) {
	if path == "" {
		return DefaultLeagueSources(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read LEAGUE_SOURCES_FILE: %w", err)
	}
	var file leagueSourcesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse LEAGUE_SOURCES_FILE: %w", err)
	}
	if err := validation.New().Struct(file); err != nil {
		return nil, fmt.Errorf("validate LEAGUE_SOURCES_FILE: %w", err)
	}
	return file.Leagues, nil
}

// SeasonsOf returns the sorted union of the sources' seasons. These are the
// seasons a transfer row must fall in to be kept.
func SeasonsOf(sources []leaguehistory.Source) []season.Label {
	set := make(season.Set)
	for _, src := range sources {
		for _, s := range src.Seasons {
			set[s] = struct{}{}
		}
	}
	out := make([]season.Label, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartYear() < out[j].StartYear() })
	return out
}
