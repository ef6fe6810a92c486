package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/transfer"
	"github.com/riskibarqy/ro-transfer-hub/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/id"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/logging"
	"github.com/riskibarqy/ro-transfer-hub/internal/platform/validation"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

func clubSide(name string, id int64, league, country string) transfer.Side {
	return transfer.Side{Club: name, ClubID: &id, League: league, Country: country}
}

func testRecords() []transfer.Record {
	pid := func(v int64) *int64 { return &v }
	dob := "02/03/1999"
	return []transfer.Record{
		{
			PlayerID:    pid(10),
			PlayerName:  "Adrian Pop",
			Season:      "22/23",
			Origin:      clubSide("Ferencvaros", 279, "NB I.", "Hungary"),
			Destination: clubSide("FCSB", 301, "Superliga", "Romania"),
			FeeRaw:      "€1.50m",
			FeeEstM:     1.5,
			Type:        transfer.TypePermanent,
			DateOfBirth: &dob,
		},
		{
			PlayerID:    pid(11),
			PlayerName:  "Ion Dumitru",
			Season:      "22/23",
			Origin:      clubSide("FC Rapid 1923", 1, "Superliga", "Romania"),
			Destination: clubSide("FCSB", 301, "Superliga", "Romania"),
			FeeRaw:      "loan transfer",
			Type:        transfer.TypeLoan,
		},
		{
			PlayerID:    pid(12),
			PlayerName:  "Mihai Stan",
			Season:      "23/24",
			Origin:      clubSide("FCSB", 301, "Superliga", "Romania"),
			Destination: clubSide("Unknown Club", 900, "TBD", ""),
			Type:        transfer.TypeFree,
		},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	transfers := memory.NewTransferRepository(testRecords())
	analytics := usecase.NewAnalyticsService(transfers, usecase.AnalyticsConfig{
		HomeCountry:  "Romania",
		TopLeague:    "Superliga",
		SecondLeague: "Liga 2",
	})
	reviews := usecase.NewReviewService(transfers, memory.NewReviewStore(nil), validation.New(), id.NewRunIDGenerator(), logging.NewNop())
	audit := usecase.NewAuditService(transfers, 0.92)

	handler := NewHandler(analytics, reviews, audit, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), true, []string{"*"})
}

type envelope[T any] struct {
	APIVersion string `json:"apiVersion"`
	Data       T      `json:"data"`
	Error      *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func doGet[T any](t *testing.T, router http.Handler, target string) (int, envelope[T]) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body
}

func TestListTransfersHidesUnresolvedRows(t *testing.T) {
	t.Parallel()

	code, body := doGet[listDTO[transferDTO]](t, newTestRouter(t), "/v1/transfers")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, 2, body.Data.Total)

	first := body.Data.Items[0]
	assert.Equal(t, "Adrian Pop", first.Player)
	assert.Equal(t, "Fee", first.UIType)
	assert.Equal(t, string(transfer.MigrationForeignImport), first.Migration)
	assert.Equal(t, "Hungary: NB I.", first.Origin.Label)
	require.NotNil(t, first.Age)
	assert.Equal(t, 23, *first.Age)
}

func TestListTransfersFilters(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	_, body := doGet[listDTO[transferDTO]](t, router, "/v1/transfers?migration=domestic")
	require.Equal(t, 1, body.Data.Total)
	assert.Equal(t, "Ion Dumitru", body.Data.Items[0].Player)

	_, body = doGet[listDTO[transferDTO]](t, router, "/v1/transfers?type=Fee&min_fee=2")
	assert.Equal(t, 0, body.Data.Total)

	_, body = doGet[listDTO[transferDTO]](t, router, "/v1/transfers?include_unresolved=true&season=22/23,23/24")
	assert.Equal(t, 3, body.Data.Total)
}

func TestListTransfersRejectsBadInput(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	for _, target := range []string{
		"/v1/transfers?season=2022",
		"/v1/transfers?type=Swap",
		"/v1/transfers?migration=sideways",
		"/v1/transfers?min_age=abc",
		"/v1/transfers?min_age=25&max_age=20",
		"/v1/transfers?include_unresolved=maybe",
	} {
		code, body := doGet[any](t, router, target)
		assert.Equal(t, http.StatusBadRequest, code, target)
		require.NotNil(t, body.Error, target)
		assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status, target)
	}
}

func TestListFlowsDefaultsToImports(t *testing.T) {
	t.Parallel()

	code, body := doGet[listDTO[usecase.Flow]](t, newTestRouter(t), "/v1/flows")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, usecase.Flow{Origin: "Hungary: NB I.", Destination: "Romania: Superliga", Count: 1}, body.Data.Items[0])

	code, _ = doGet[any](t, newTestRouter(t), "/v1/flows?view=sideways")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListNetworkEdges(t *testing.T) {
	t.Parallel()

	code, body := doGet[listDTO[usecase.Edge]](t, newTestRouter(t), "/v1/network?scope=domestic&club=FCSB")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "FC Rapid 1923", body.Data.Items[0].Origin)

	code, _ = doGet[any](t, newTestRouter(t), "/v1/network?min=0")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCurationRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	code, coverage := doGet[usecase.Coverage](t, router, "/v1/coverage")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, coverage.Data.Records)
	assert.Equal(t, 2, coverage.Data.Visible)

	code, conflicts := doGet[listDTO[usecase.LeagueConflict]](t, router, "/v1/review/consistency")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, conflicts.Data.Total)

	code, audit := doGet[usecase.ClubAudit](t, router, "/v1/clubs/audit")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, audit.Data.Names, "FCSB")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/review", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSwaggerRoutes(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/transfers")
}

func TestSwaggerUI_RendersSpecURL(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "openapi.yaml")
	assert.Contains(t, rec.Body.String(), "Romanian Transfer Hub API")
}
