package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/club"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
)

// AliasService loads and curates the club alias table.
type AliasService struct {
	repo   club.AliasRepository
	logger *logging.Logger
}

func NewAliasService(repo club.AliasRepository, logger *logging.Logger) *AliasService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AliasService{repo: repo, logger: logger}
}

// Table loads and validates the stored aliases.
func (s *AliasService) Table(ctx context.Context) (*club.AliasTable, error) {
	aliases, err := s.repo.ListAliases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list aliases: %w", err)
	}
	if len(aliases) == 0 {
		s.logger.WarnContext(ctx, "alias table is empty; club names pass through unchanged")
	}
	table, err := club.NewAliasTable(aliases)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return table, nil
}

func (s *AliasService) Normalizer(ctx context.Context) (*club.Normalizer, error) {
	table, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}
	return club.NewNormalizer(table), nil
}

// Export validates aliases and stores them as the alias table.
func (s *AliasService) Export(ctx context.Context, aliases []club.Alias) (int, error) {
	table, err := club.NewAliasTable(aliases)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.repo.ReplaceAliases(ctx, table.Aliases()); err != nil {
		return 0, fmt.Errorf("replace aliases: %w", err)
	}
	s.logger.InfoContext(ctx, "alias table written", "aliases", table.Len())
	return table.Len(), nil
}
