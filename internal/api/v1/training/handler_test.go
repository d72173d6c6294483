package training_test

import (
	"aimodel-generator-backend/internal/api/v1/training"
	"aimodel-generator-backend/internal/middleware"
	"aimodel-generator-backend/internal/models"
	"aimodel-generator-backend/internal/scheduler"
	"aimodel-generator-backend/internal/services"
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickInterval = 1500 * time.Millisecond

type progressResponse struct {
	Status  int                     `json:"status"`
	Message string                  `json:"message"`
	Data    models.TrainingProgress `json:"data"`
}

func setupTestSession(t *testing.T) (*services.Session, *scheduler.Manual) {
	t.Helper()
	clock := scheduler.NewManual(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	session := services.NewSession("training-test", services.SessionOptions{
		Scheduler:       clock,
		Generator:       services.NewGenerator(rand.New(rand.NewSource(3)), clock.Now),
		TickInterval:    tickInterval,
		CompletionDelay: time.Second,
	})
	t.Cleanup(session.Close)
	return session, clock
}

func addModel(t *testing.T, session *services.Session, clock *scheduler.Manual, modelType models.ModelType) models.ModelRecord {
	t.Helper()
	var created models.ModelRecord
	require.NoError(t, session.Submit(models.ModelRequest{
		Name:         "Trainee",
		Type:         modelType,
		Size:         models.ModelSizeSmall,
		TrainingData: "logs",
		UseCase:      "Testing",
	}, func(r models.ModelRecord) { created = r }))
	clock.Advance(0)
	require.NotEmpty(t, created.ID)
	return created
}

func call(session *services.Session, handler gin.HandlerFunc, method, path string, params gin.Params, body interface{}) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	c.Request, _ = http.NewRequest(method, path, bytes.NewBuffer(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set(middleware.ContextKeySession, session)

	handler(c)
	return w
}

func decodeProgress(t *testing.T, w *httptest.ResponseRecorder) models.TrainingProgress {
	t.Helper()
	var resp progressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestGetTools(t *testing.T) {
	session, _ := setupTestSession(t)
	w := call(session, training.GetTools, "GET", "/tools", nil, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data training.ToolCatalogResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Tools, len(models.ToolCatalog))
	assert.Equal(t, "nlp", resp.Data.Tools[0].Key)
	assert.Equal(t, "GAN", resp.Data.Tools[len(resp.Data.Tools)-1].Label)
}

func TestTrainingLifecycle(t *testing.T) {
	session, clock := setupTestSession(t)
	record := addModel(t, session, clock, models.ModelTypeLanguage)
	params := gin.Params{{Key: "id", Value: record.ID}}

	w := call(session, training.StartTraining, "POST", "/models/"+record.ID+"/training", params, nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	progress := decodeProgress(t, w)
	assert.Equal(t, models.TrainingStateRunning, progress.State)
	assert.Equal(t, models.TrainingStartStatus, progress.Status)
	assert.Equal(t, []string{"nlp", "transformer"}, progress.Tools)

	clock.Advance(2 * tickInterval)
	progress = decodeProgress(t, call(session, training.GetTraining, "GET", "/training", nil, nil))
	assert.Equal(t, 12, progress.Percent)

	w = call(session, training.SetTools, "PUT", "/training/tools", nil, training.SetToolsRequest{Tools: []string{"gan", "cv"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"cv", "gan"}, decodeProgress(t, w).Tools)

	w = call(session, training.PauseTraining, "POST", "/training/pause", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	progress = decodeProgress(t, w)
	assert.Equal(t, models.TrainingStatePaused, progress.State)
	assert.Contains(t, progress.Status, models.PausedSuffix)

	clock.Advance(10 * tickInterval)
	assert.Equal(t, 12, session.Training().Percent)

	w = call(session, training.TogglePause, "POST", "/training/toggle", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.TrainingStateRunning, decodeProgress(t, w).State)

	clock.Advance(time.Duration(len(models.TrainingSteps)) * tickInterval)
	clock.Advance(time.Second)

	progress = decodeProgress(t, call(session, training.GetTraining, "GET", "/training", nil, nil))
	assert.Equal(t, models.TrainingStateCompleted, progress.State)
	assert.Equal(t, 100, progress.Percent)

	trained, err := session.Model(record.ID)
	require.NoError(t, err)
	assert.True(t, trained.Trained)
	assert.Equal(t, models.ModelStatusTrained, trained.Status)
	assert.Equal(t, []string{"Computer Vision", "GAN"}, trained.Tools)
}

func TestStartTrainingErrors(t *testing.T) {
	session, clock := setupTestSession(t)

	w := call(session, training.StartTraining, "POST", "/models/ai_missing/training", gin.Params{{Key: "id", Value: "ai_missing"}}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	record := addModel(t, session, clock, models.ModelTypeAudio)
	params := gin.Params{{Key: "id", Value: record.ID}}
	require.Equal(t, http.StatusAccepted, call(session, training.StartTraining, "POST", "/", params, nil).Code)
	clock.Advance(time.Duration(len(models.TrainingSteps))*tickInterval + time.Second)

	w = call(session, training.StartTraining, "POST", "/", params, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already trained")
}

func TestControlWithoutActiveRun(t *testing.T) {
	session, _ := setupTestSession(t)

	tests := []struct {
		name    string
		handler gin.HandlerFunc
		method  string
		body    interface{}
	}{
		{"Pause", training.PauseTraining, "POST", nil},
		{"Resume", training.ResumeTraining, "POST", nil},
		{"Toggle", training.TogglePause, "POST", nil},
		{"Set tools", training.SetTools, "PUT", training.SetToolsRequest{Tools: []string{"nlp"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(session, tt.handler, tt.method, "/training", nil, tt.body)
			assert.Equal(t, http.StatusConflict, w.Code)
			assert.Contains(t, w.Body.String(), "No active training run")
		})
	}
}

func TestGetTrainingIdle(t *testing.T) {
	session, _ := setupTestSession(t)
	progress := decodeProgress(t, call(session, training.GetTraining, "GET", "/training", nil, nil))

	assert.Equal(t, models.TrainingStateIdle, progress.State)
	assert.Equal(t, len(models.TrainingSteps), progress.Steps)
	assert.Empty(t, progress.Tools)
}

func TestSetToolsRejectsUnknownKey(t *testing.T) {
	session, clock := setupTestSession(t)
	record := addModel(t, session, clock, models.ModelTypeVision)
	call(session, training.StartTraining, "POST", "/", gin.Params{{Key: "id", Value: record.ID}}, nil)

	w := call(session, training.SetTools, "PUT", "/training/tools", nil, training.SetToolsRequest{Tools: []string{"cv", "quantum"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"cv", "gan"}, session.Training().Tools)
}
