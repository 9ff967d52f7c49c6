package report

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/aegis/pkg/domain/model"
)

// JSON writes a single report as an object and several as an array
func JSON(w io.Writer, reports ...*model.Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	var v any = reports
	if len(reports) == 1 {
		v = reports[0]
	}
	if err := encoder.Encode(v); err != nil {
		return goerr.Wrap(err, "failed to encode report")
	}
	return nil
}
