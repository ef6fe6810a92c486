package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

type listTransfersQuery struct {
	Seasons    []string `validate:"dive,season"`
	Types      []string `validate:"dive,oneof=Loan Fee Free"`
	Migrations []string `validate:"dive,required"`
	MinAge     int      `validate:"gte=0,lte=60"`
	MaxAge     int      `validate:"omitempty,gtefield=MinAge,lte=60"`
	MinFee     float64  `validate:"gte=0"`
}

type flowsQuery struct {
	View    string   `validate:"required,oneof=imports exports internal"`
	Min     int      `validate:"gte=1"`
	Seasons []string `validate:"dive,season"`
}

type networkQuery struct {
	Scope string `validate:"required,oneof=superliga superliga-liga2 domestic all"`
	Min   int    `validate:"gte=1"`
	Club  string `validate:"max=120"`
}

// migrationAliases lets callers use short names for the migration labels.
var migrationAliases = map[string]transfer.Migration{
	"domestic":     transfer.MigrationDomestic,
	"export":       transfer.MigrationExport,
	"repatriation": transfer.MigrationRepatriation,
	"import":       transfer.MigrationForeignImport,
	"external":     transfer.MigrationExternal,
}

func parseMigrations(values []string) ([]transfer.Migration, error) {
	out := make([]transfer.Migration, 0, len(values))
	for _, v := range values {
		if m, ok := migrationAliases[strings.ToLower(v)]; ok {
			out = append(out, m)
			continue
		}
		switch m := transfer.Migration(v); m {
		case transfer.MigrationDomestic, transfer.MigrationExport, transfer.MigrationRepatriation,
			transfer.MigrationForeignImport, transfer.MigrationExternal:
			out = append(out, m)
		default:
			return nil, fmt.Errorf("%w: unknown migration %q", usecase.ErrInvalidInput, v)
		}
	}
	return out, nil
}

func toSeasons(values []string) []season.Label {
	out := make([]season.Label, 0, len(values))
	for _, v := range values {
		out = append(out, season.Label(v))
	}
	return out
}

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTransfers")
	defer span.End()

	filter, err := h.transferFilter(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.analyticsService.Dataset(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list transfers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transferDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, transferToDTO(row))
	}
	writeSuccess(ctx, w, http.StatusOK, listDTO[transferDTO]{Items: items, Total: len(items)})
}

func (h *Handler) transferFilter(ctx context.Context, r *http.Request) (usecase.DatasetFilter, error) {
	q := listTransfersQuery{
		Seasons:    queryList(r, "season"),
		Types:      queryList(r, "type"),
		Migrations: queryList(r, "migration"),
	}
	var err error
	if q.MinAge, err = queryInt(r, "min_age", 0); err != nil {
		return usecase.DatasetFilter{}, err
	}
	if q.MaxAge, err = queryInt(r, "max_age", 0); err != nil {
		return usecase.DatasetFilter{}, err
	}
	if q.MinFee, err = queryFloat(r, "min_fee"); err != nil {
		return usecase.DatasetFilter{}, err
	}
	includeUnresolved, err := queryBool(r, "include_unresolved")
	if err != nil {
		return usecase.DatasetFilter{}, err
	}
	if err := h.validateRequest(ctx, q); err != nil {
		return usecase.DatasetFilter{}, err
	}
	migrations, err := parseMigrations(q.Migrations)
	if err != nil {
		return usecase.DatasetFilter{}, err
	}

	return usecase.DatasetFilter{
		Seasons:           toSeasons(q.Seasons),
		UITypes:           q.Types,
		Migrations:        migrations,
		MinAge:            q.MinAge,
		MaxAge:            q.MaxAge,
		MinFee:            q.MinFee,
		IncludeUnresolved: includeUnresolved,
	}, nil
}

func (h *Handler) ListFlows(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFlows")
	defer span.End()

	q := flowsQuery{
		View:    strings.ToLower(strings.TrimSpace(r.URL.Query().Get("view"))),
		Seasons: queryList(r, "season"),
	}
	if q.View == "" {
		q.View = string(usecase.FlowImports)
	}
	var err error
	if q.Min, err = queryInt(r, "min", 1); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	flows, err := h.analyticsService.Flows(ctx, usecase.FlowView(q.View), q.Min, toSeasons(q.Seasons))
	if err != nil {
		h.logger.ErrorContext(ctx, "list flows failed", "view", q.View, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, listDTO[usecase.Flow]{Items: flows, Total: len(flows)})
}

func (h *Handler) ListNetworkEdges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNetworkEdges")
	defer span.End()

	q := networkQuery{
		Scope: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("scope"))),
		Club:  strings.TrimSpace(r.URL.Query().Get("club")),
	}
	if q.Scope == "" {
		q.Scope = string(usecase.ScopeTopLeague)
	}
	var err error
	if q.Min, err = queryInt(r, "min", 1); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, q); err != nil {
		writeError(ctx, w, err)
		return
	}

	edges, err := h.analyticsService.Network(ctx, usecase.NetworkScope(q.Scope), q.Min, q.Club)
	if err != nil {
		h.logger.ErrorContext(ctx, "list network edges failed", "scope", q.Scope, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, listDTO[usecase.Edge]{Items: edges, Total: len(edges)})
}

func (h *Handler) GetCoverage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCoverage")
	defer span.End()

	coverage, err := h.analyticsService.Coverage(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get coverage failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, coverage)
}
