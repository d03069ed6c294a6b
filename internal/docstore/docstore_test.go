package docstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/merkulovlad/orderpipe/internal/model"
)

func TestResolveStrategy(t *testing.T) {
	cases := []struct {
		name string
		e    model.Event
		want scopeStrategy
	}{
		{"both present", model.Event{TradingPartnerName: "ACME", BusinessUnitName: "WEST"}, strategyPartnerAndUnit},
		{"partner only", model.Event{TradingPartnerName: "ACME"}, strategyPartner},
		{"unit only", model.Event{BusinessUnitName: "WEST"}, strategyUnit},
		{"neither", model.Event{}, strategyTopN},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, resolveStrategy(tc.e))
		})
	}
}
