package validation

import (
	"testing"

	"github.com/riskibarqy/ro-transfer-hub/internal/domain/season"
)

type seasonHolder struct {
	Season season.Label `validate:"season"`
}

func TestSeasonTag(t *testing.T) {
	v := New()
	if err := v.Struct(seasonHolder{Season: "21/22"}); err != nil {
		t.Fatalf("valid season rejected: %v", err)
	}
	for _, bad := range []season.Label{"", "2021/2022", "21/23"} {
		if err := v.Struct(seasonHolder{Season: bad}); err == nil {
			t.Fatalf("season %q accepted", bad)
		}
	}
}
