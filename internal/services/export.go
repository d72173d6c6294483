package services

import (
	"aimodel-generator-backend/internal/models"
	"encoding/json"
	"regexp"
)

var whitespace = regexp.MustCompile(`\s+`)

// ExportFileName names the download for a model, e.g. "My Model" becomes
// "My_Model_model.json".
func ExportFileName(name string) string {
	return whitespace.ReplaceAllString(name, "_") + "_model.json"
}

// ExportRecord serializes the full record as indented JSON.
func ExportRecord(record models.ModelRecord) ([]byte, error) {
	return json.MarshalIndent(record, "", "  ")
}
