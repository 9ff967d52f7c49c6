package recommendation

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/aegis/pkg/domain/model"
)

func TestAdd_Dedup(t *testing.T) {
	tests := []struct {
		name   string
		recs   []model.Recommendation
		titles []string
	}{
		{
			name: "same description with different title is rejected",
			recs: []model.Recommendation{
				{Title: "Cross-train staff", Description: "Reduce single points of failure."},
				{Title: "Document processes", Description: "Reduce single points of failure."},
			},
			titles: []string{"Cross-train staff"},
		},
		{
			name: "same title with different description is rejected",
			recs: []model.Recommendation{
				{Title: "Cross-train staff", Description: "Pair engineers on the payment gateway."},
				{Title: "Cross-train staff", Description: "Rotate the on-call schedule."},
			},
			titles: []string{"Cross-train staff"},
		},
		{
			name: "first entry wins over later partial matches",
			recs: []model.Recommendation{
				{Title: "A", Description: "same"},
				{Title: "B", Description: "same"},
				{Title: "A", Description: "other"},
			},
			titles: []string{"A"},
		},
		{
			name: "distinct entries are kept in order",
			recs: []model.Recommendation{
				{Title: "A", Description: "first"},
				{Title: "B", Description: "second"},
			},
			titles: []string{"A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bucket []model.Recommendation
			for _, rec := range tt.recs {
				add(&bucket, rec)
			}

			gt.Array(t, bucket).Length(len(tt.titles))
			if len(bucket) != len(tt.titles) {
				return
			}
			for i, title := range tt.titles {
				gt.Value(t, bucket[i].Title).Equal(title)
			}
			gt.Value(t, bucket[0].Description).Equal(tt.recs[0].Description)
		})
	}

	t.Run("nil bucket is ignored", func(t *testing.T) {
		add(nil, model.Recommendation{Title: "A", Description: "x"})
	})
}
