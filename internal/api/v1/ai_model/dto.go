package ai_model

import (
	"aimodel-generator-backend/internal/models"
	"fmt"

	"github.com/dustin/go-humanize"
)

type CreateModelRequest struct {
	Name         string           `json:"name" binding:"required"`
	Type         models.ModelType `json:"type" binding:"required"`
	Size         models.ModelSize `json:"size" binding:"required"`
	TrainingData string           `json:"training_data" binding:"required"`
	UseCase      string           `json:"use_case" binding:"required"`
}

func (r CreateModelRequest) toModelRequest() models.ModelRequest {
	return models.ModelRequest{
		Name:         r.Name,
		Type:         r.Type,
		Size:         r.Size,
		TrainingData: r.TrainingData,
		UseCase:      r.UseCase,
	}
}

// ModelCard is a record plus the strings the UI shows on its card.
type ModelCard struct {
	models.ModelRecord

	Icon                string `json:"icon"`
	Description         string `json:"description"`
	AccuracyDisplay     string `json:"accuracy_display"`
	TrainingTimeDisplay string `json:"training_time_display"`
	CostDisplay         string `json:"cost_display"`
}

func NewModelCard(record models.ModelRecord) ModelCard {
	return ModelCard{
		ModelRecord:         record,
		Icon:                record.Icon(),
		Description:         record.Description(),
		AccuracyDisplay:     fmt.Sprintf("%.1f%%", record.Accuracy),
		TrainingTimeDisplay: fmt.Sprintf("%dh", record.TrainingTime),
		CostDisplay:         "$" + humanize.Comma(record.Cost),
	}
}

type ModelListResponse struct {
	Models []ModelCard `json:"models"`
	Total  int         `json:"total"`
}
