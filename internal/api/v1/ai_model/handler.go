package ai_model

import (
	"aimodel-generator-backend/internal/middleware"
	"aimodel-generator-backend/internal/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetModels godoc
// @Summary List generated models
// @Description Retrieve the models generated in the caller's session, oldest first
// @Tags models
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} utils.Response{data=ModelListResponse}
// @Router /models [get]
func GetModels(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	records := session.Models()
	cards := make([]ModelCard, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewModelCard(r))
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ModelListResponse{
		Models: cards,
		Total:  len(cards),
	}))
}

// CreateModel godoc
// @Summary Generate a model
// @Description Fabricate model metadata from the form options. Unknown types and sizes fall back to language and medium.
// @Tags models
// @Accept json
// @Produce json
// @Param request body CreateModelRequest true "Model options"
// @Success 201 {object} utils.Response{data=ModelCard}
// @Failure 400 {object} utils.Response
// @Router /models [post]
func CreateModel(c *gin.Context) {
	var req CreateModelRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	record, err := session.Generate(c.Request.Context(), req.toModelRequest())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusCreated, "Model generated successfully", NewModelCard(record))
}

// GetModel godoc
// @Summary Get a model card
// @Tags models
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {object} utils.Response{data=ModelCard}
// @Failure 404 {object} utils.Response
// @Router /models/{id} [get]
func GetModel(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	record, err := session.Model(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", NewModelCard(record)))
}

// DeleteModel godoc
// @Summary Delete a model
// @Description A training run for the model keeps going and finishes without updating anything.
// @Tags models
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /models/{id} [delete]
func DeleteModel(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	if err := session.DeleteModel(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Model deleted successfully", nil))
}

// ExportModel godoc
// @Summary Download a model as JSON
// @Tags models
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.Response
// @Router /models/{id}/export [get]
func ExportModel(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	filename, data, err := session.Export(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ShareModel godoc
// @Summary Build a share link
// @Description Returns the public model URL and a QR code image URL. Nothing is published.
// @Tags models
// @Produce json
// @Param id path string true "Model ID"
// @Success 200 {object} utils.Response{data=services.ShareLink}
// @Failure 404 {object} utils.Response
// @Router /models/{id}/share [get]
func ShareModel(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	link, err := session.Share(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", link))
}
