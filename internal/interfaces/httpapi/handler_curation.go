package httpapi

import (
	"net/http"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/review"
	"github.com/riskibarqy/ro-transfer-hub/internal/usecase"
)

// ListReviewItems returns the unresolved club seasons without writing the
// report file. Exporting stays a CLI concern.
func (h *Handler) ListReviewItems(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListReviewItems")
	defer span.End()

	items, err := h.reviewService.Report(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list review items failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, listDTO[review.Item]{Items: items, Total: len(items)})
}

func (h *Handler) ListLeagueConflicts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueConflicts")
	defer span.End()

	conflicts, err := h.reviewService.Consistency(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list league conflicts failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, listDTO[usecase.LeagueConflict]{Items: conflicts, Total: len(conflicts)})
}

func (h *Handler) GetClubAudit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubAudit")
	defer span.End()

	audit, err := h.auditService.Audit(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "club audit failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, audit)
}
