package training

import (
	"aimodel-generator-backend/internal/middleware"
	"aimodel-generator-backend/internal/models"
	"aimodel-generator-backend/internal/services"
	"aimodel-generator-backend/internal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetTools godoc
// @Summary List selectable tools
// @Description Tools in the order they are offered; completed models list their tools in this order.
// @Tags training
// @Produce json
// @Success 200 {object} utils.Response{data=ToolCatalogResponse}
// @Router /tools [get]
func GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", ToolCatalogResponse{Tools: models.ToolCatalog}))
}

// StartTraining godoc
// @Summary Start simulated training
// @Description Starts the scripted run for a model, replacing any run already in progress.
// @Tags training
// @Produce json
// @Param id path string true "Model ID"
// @Success 202 {object} utils.Response{data=models.TrainingProgress}
// @Failure 404 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /models/{id}/training [post]
func StartTraining(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	progress, err := session.StartTraining(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Respond(c, http.StatusAccepted, "Training started", progress)
}

// GetTraining godoc
// @Summary Current training progress
// @Tags training
// @Produce json
// @Success 200 {object} utils.Response{data=models.TrainingProgress}
// @Router /training [get]
func GetTraining(c *gin.Context) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", session.Training()))
}

// PauseTraining godoc
// @Summary Pause the active run
// @Tags training
// @Produce json
// @Success 200 {object} utils.Response{data=models.TrainingProgress}
// @Failure 409 {object} utils.Response
// @Router /training/pause [post]
func PauseTraining(c *gin.Context) {
	control(c, (*services.Session).PauseTraining)
}

// ResumeTraining godoc
// @Summary Resume a paused run
// @Tags training
// @Produce json
// @Success 200 {object} utils.Response{data=models.TrainingProgress}
// @Failure 409 {object} utils.Response
// @Router /training/resume [post]
func ResumeTraining(c *gin.Context) {
	control(c, (*services.Session).ResumeTraining)
}

// TogglePause godoc
// @Summary Pause or resume the active run
// @Tags training
// @Produce json
// @Success 200 {object} utils.Response{data=models.TrainingProgress}
// @Failure 409 {object} utils.Response
// @Router /training/toggle [post]
func TogglePause(c *gin.Context) {
	control(c, (*services.Session).TogglePause)
}

func control(c *gin.Context, action func(*services.Session) (models.TrainingProgress, error)) {
	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	progress, err := action(session)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Success", progress))
}

// SetTools godoc
// @Summary Choose the tools attached on completion
// @Tags training
// @Accept json
// @Produce json
// @Param request body SetToolsRequest true "Checked tool keys"
// @Success 200 {object} utils.Response{data=models.TrainingProgress}
// @Failure 400 {object} utils.Response
// @Failure 409 {object} utils.Response
// @Router /training/tools [put]
func SetTools(c *gin.Context) {
	var req SetToolsRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	session, ok := middleware.CurrentSession(c)
	if !ok {
		return
	}

	progress, err := session.SetTrainingTools(req.Tools)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Tools updated", progress))
}
