package models

import (
	"fmt"
	"strings"
	"time"
)

type ModelType string

const (
	ModelTypeLanguage      ModelType = "language"
	ModelTypeVision        ModelType = "vision"
	ModelTypeAudio         ModelType = "audio"
	ModelTypeMultimodal    ModelType = "multimodal"
	ModelTypeReinforcement ModelType = "reinforcement"
)

type ModelSize string

const (
	ModelSizeSmall  ModelSize = "small"
	ModelSizeMedium ModelSize = "medium"
	ModelSizeLarge  ModelSize = "large"
	ModelSizeXL     ModelSize = "xl"
)

type ModelStatus string

const (
	ModelStatusReady   ModelStatus = "Ready for Training"
	ModelStatusTrained ModelStatus = "Trained"
)

// ModelRequest holds the options collected from the generator form.
// Type and Size values outside the known sets are kept as given.
type ModelRequest struct {
	Name         string    `json:"name"`
	Type         ModelType `json:"type"`
	Size         ModelSize `json:"size"`
	TrainingData string    `json:"training_data"`
	UseCase      string    `json:"use_case"`
}

// ModelRecord is a fabricated model. Everything except Status, Trained and
// Tools is fixed when the record is generated.
type ModelRecord struct {
	ModelRequest

	ID                string      `json:"id"`
	CreatedAt         time.Time   `json:"created_at"`
	Parameters        int64       `json:"parameters"`
	ParametersDisplay string      `json:"parameters_display"`
	Architecture      string      `json:"architecture"`
	TrainingTime      int         `json:"training_time"` // hours
	Accuracy          float64     `json:"accuracy"`      // percent
	Cost              int64       `json:"cost"`
	Hardware          string      `json:"hardware"`
	Status            ModelStatus `json:"status"`
	Trained           bool        `json:"trained"`
	Tools             []string    `json:"tools"`
}

// Clone returns a copy that shares no slices with r.
func (r ModelRecord) Clone() ModelRecord {
	tools := make([]string, len(r.Tools))
	copy(tools, r.Tools)
	r.Tools = tools
	return r
}

// MarkTrained moves the record into its trained state. It reports false,
// leaving the record untouched, if the record was already trained.
func (r *ModelRecord) MarkTrained(tools []string) bool {
	if r.Trained {
		return false
	}
	r.Trained = true
	r.Status = ModelStatusTrained
	r.Tools = append([]string{}, tools...)
	return true
}

var modelIcons = map[ModelType]string{
	ModelTypeLanguage:      "💬",
	ModelTypeVision:        "👁️",
	ModelTypeAudio:         "🎵",
	ModelTypeMultimodal:    "🔗",
	ModelTypeReinforcement: "🎯",
}

// Icon returns the card icon for the record's type.
func (r ModelRecord) Icon() string {
	if icon, ok := modelIcons[r.Type]; ok {
		return icon
	}
	return "🤖"
}

// Description is the one-paragraph blurb shown on the model card.
func (r ModelRecord) Description() string {
	return fmt.Sprintf("A %s %s model designed for %s. Built with %s architecture and trained on %s data.",
		r.Size, r.Type, strings.ToLower(r.UseCase), r.Architecture, r.TrainingData)
}
