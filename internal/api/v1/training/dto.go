package training

import "aimodel-generator-backend/internal/models"

type SetToolsRequest struct {
	Tools []string `json:"tools"`
}

type ToolCatalogResponse struct {
	Tools []models.Tool `json:"tools"`
}
