// Package output serializes batch results for the CLI surface.
package output

import (
	"encoding/json"

	"github.com/mhakala/internsheet/pkg/internsheet/models"
)

// ToJSON serializes a BatchResult to JSON.
func ToJSON(res *models.BatchResult, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(res, "", "  ")
	}
	return json.Marshal(res)
}
