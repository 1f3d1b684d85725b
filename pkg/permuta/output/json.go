// Package output serializes generated result sets for export.
package output

import (
	"encoding/json"

	"github.com/ukaji3/permuta-go/pkg/permuta/models"
)

// ToJSON serializes records as a JSON array of objects. Each object's
// keys appear in the record's first-set order. An empty result set
// serializes as [].
func ToJSON(records []*models.Record, pretty bool) ([]byte, error) {
	if records == nil {
		records = []*models.Record{}
	}
	if pretty {
		return json.MarshalIndent(records, "", "    ")
	}
	return json.Marshal(records)
}
