package fetch

import (
	"encoding/json"
	"fmt"

	"github.com/leaguedesk/airbase-client/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var rowsSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "airbase_rows_skipped_total",
	Help: "Total upstream rows skipped for missing field subsets, by kind",
}, []string{"kind"})

// page is the decoded result of one HTTP round trip: the rows of a single
// kind plus the optional continuation cursor. An empty Offset marks the
// terminal page.
type page struct {
	Records []model.Record
	Offset  string
}

// rawPage mirrors the backend response shape.
type rawPage struct {
	Records []rawRow `json:"records"`
	Offset  string   `json:"offset"`
}

// rawRow is one backend row. Fields is nil when the row carries no field
// subset at all.
type rawRow struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// parsePage decodes one response body for the given kind. A body with no
// row container (for example `{}`) is a valid empty terminal page. Rows
// without a field subset are skipped; a row whose fields fail to decode
// aborts the parse.
func parsePage(kind model.Kind, codec model.Codec, body []byte) (page, error) {
	var raw rawPage
	if err := json.Unmarshal(body, &raw); err != nil {
		return page{}, fmt.Errorf("parse page body: %w", err)
	}

	p := page{
		Records: make([]model.Record, 0, len(raw.Records)),
		Offset:  raw.Offset,
	}

	for _, row := range raw.Records {
		if row.Fields == nil {
			rowsSkippedTotal.WithLabelValues(kind.String()).Inc()
			continue
		}
		rec, err := codec.Decode(row.Fields)
		if err != nil {
			return page{}, err
		}
		p.Records = append(p.Records, rec)
	}

	return p, nil
}
