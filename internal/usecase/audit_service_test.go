package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
)

func TestAuditServiceListsNamesAndSuggestions(t *testing.T) {
	t.Parallel()

	repo := memory.NewTransferRepository([]transfer.Record{
		record(1, "21/22", sideOf("FC Botosani", 14, "Superliga", "Romania"), sideOf("FC Botoșani", 14, "Superliga", "Romania")),
		record(2, "21/22", sideOf("FCSB", 301, "Superliga", "Romania"), sideOf("FCSB II", 302, "Liga 3", "Romania")),
		record(3, "21/22", sideOf("Retired", 123, "Retired", ""), sideOf("Petrolul Ploiesti", 6, "Superliga", "Romania")),
	})

	audit, err := NewAuditService(repo, 0).Audit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"FC Botosani", "FC Botoșani", "FCSB", "FCSB II", "Petrolul Ploiesti", "Retired"}, audit.Names)
	require.Len(t, audit.Suggestions, 1)
	assert.Equal(t, "FC Botosani", audit.Suggestions[0].A)
	assert.Equal(t, "FC Botoșani", audit.Suggestions[0].B)
	assert.GreaterOrEqual(t, audit.Suggestions[0].Similarity, 0.92)
}

func TestSameFamily(t *testing.T) {
	t.Parallel()

	assert.True(t, sameFamily("FCSB", "FCSB II"))
	assert.True(t, sameFamily("Sepsi OSK U19", "Sepsi OSK"))
	assert.False(t, sameFamily("FCSB", "FCSB"))
	assert.False(t, sameFamily("Rapid", "Dinamo"))
}
