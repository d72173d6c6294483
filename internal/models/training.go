package models

// TrainingState defines the state of the simulated training run
type TrainingState string

const (
	TrainingStateIdle      TrainingState = "idle"
	TrainingStateRunning   TrainingState = "running"
	TrainingStatePaused    TrainingState = "paused"
	TrainingStateCompleted TrainingState = "completed"
)

// TrainingStep is one scripted entry of the progress sequence.
type TrainingStep struct {
	Percent int    `json:"percent"`
	Status  string `json:"status"`
}

// TrainingSteps is the fixed progress script, one entry per tick.
var TrainingSteps = []TrainingStep{
	{Percent: 5, Status: "Initializing training environment..."},
	{Percent: 12, Status: "Loading training dataset..."},
	{Percent: 20, Status: "Preprocessing data..."},
	{Percent: 28, Status: "Building model architecture..."},
	{Percent: 36, Status: "Initializing model weights..."},
	{Percent: 45, Status: "Training epoch 1/5..."},
	{Percent: 55, Status: "Training epoch 2/5..."},
	{Percent: 65, Status: "Training epoch 3/5..."},
	{Percent: 75, Status: "Training epoch 4/5..."},
	{Percent: 85, Status: "Training epoch 5/5..."},
	{Percent: 95, Status: "Validating model performance..."},
	{Percent: 100, Status: "Training complete!"},
}

const (
	TrainingStartStatus = "Starting training..."
	PausedSuffix        = " (Paused)"
)

// TrainingProgress is a snapshot of the simulated run.
type TrainingProgress struct {
	ModelID string        `json:"model_id,omitempty"`
	State   TrainingState `json:"state"`
	Step    int           `json:"step"`
	Steps   int           `json:"steps"`
	Percent int           `json:"percent"`
	Status  string        `json:"status"`
	Tools   []string      `json:"tools"`
}
