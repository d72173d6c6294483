package services

import (
	"aimodel-generator-backend/internal/models"
	"strings"
)

// TrainingRun is the scripted training simulation for one record. It holds
// no timers; the owner calls Tick on every interval and Complete once the
// completion delay has elapsed.
type TrainingRun struct {
	modelID string
	steps   []models.TrainingStep
	state   models.TrainingState
	step    int // steps consumed so far
	status  string
	tools   map[string]bool
}

// NewTrainingRun starts a run at 0% with the tools preselected for the
// record's type.
func NewTrainingRun(record models.ModelRecord, steps []models.TrainingStep) *TrainingRun {
	r := &TrainingRun{
		modelID: record.ID,
		steps:   steps,
		state:   models.TrainingStateRunning,
		status:  models.TrainingStartStatus,
		tools:   make(map[string]bool),
	}
	for _, key := range models.DefaultToolKeys(record.Type) {
		r.tools[key] = true
	}
	return r
}

func (r *TrainingRun) ModelID() string {
	return r.modelID
}

func (r *TrainingRun) State() models.TrainingState {
	return r.state
}

// Finished reports whether the last scripted step has been reached.
func (r *TrainingRun) Finished() bool {
	return r.step >= len(r.steps)
}

// Tick consumes the next step. It is a no-op while paused, after the final
// step, and once completed; the return value reports whether a step was
// consumed.
func (r *TrainingRun) Tick() bool {
	if r.state != models.TrainingStateRunning || r.Finished() {
		return false
	}
	r.status = r.steps[r.step].Status
	r.step++
	return true
}

// Pause suspends step progress. It reports false if the run is not running.
func (r *TrainingRun) Pause() bool {
	if r.state != models.TrainingStateRunning {
		return false
	}
	r.state = models.TrainingStatePaused
	r.status += models.PausedSuffix
	return true
}

// Resume continues a paused run. It reports false if the run is not paused.
func (r *TrainingRun) Resume() bool {
	if r.state != models.TrainingStatePaused {
		return false
	}
	r.state = models.TrainingStateRunning
	r.status = strings.TrimSuffix(r.status, models.PausedSuffix)
	return true
}

// TogglePause pauses a running run or resumes a paused one.
func (r *TrainingRun) TogglePause() bool {
	if r.state == models.TrainingStatePaused {
		return r.Resume()
	}
	return r.Pause()
}

// SetTools replaces the checked tools. Unknown keys are ignored.
func (r *TrainingRun) SetTools(keys []string) {
	r.tools = make(map[string]bool, len(keys))
	for _, key := range keys {
		if _, ok := models.LookupTool(key); ok {
			r.tools[key] = true
		}
	}
}

// ToolKeys returns the checked tool keys in catalog order.
func (r *TrainingRun) ToolKeys() []string {
	keys := []string{}
	for _, tool := range models.ToolCatalog {
		if r.tools[tool.Key] {
			keys = append(keys, tool.Key)
		}
	}
	return keys
}

// ToolLabels returns the checked tool labels in catalog order.
func (r *TrainingRun) ToolLabels() []string {
	labels := []string{}
	for _, tool := range models.ToolCatalog {
		if r.tools[tool.Key] {
			labels = append(labels, tool.Label)
		}
	}
	return labels
}

// Complete moves the run into its terminal state and returns the tool
// labels to attach to the record. Later calls return nil.
func (r *TrainingRun) Complete() []string {
	if r.state == models.TrainingStateCompleted {
		return nil
	}
	r.state = models.TrainingStateCompleted
	r.status = strings.TrimSuffix(r.status, models.PausedSuffix)
	return r.ToolLabels()
}

// Progress snapshots the run.
func (r *TrainingRun) Progress() models.TrainingProgress {
	percent := 0
	if r.step > 0 {
		percent = r.steps[r.step-1].Percent
	}
	return models.TrainingProgress{
		ModelID: r.modelID,
		State:   r.state,
		Step:    r.step,
		Steps:   len(r.steps),
		Percent: percent,
		Status:  r.status,
		Tools:   r.ToolKeys(),
	}
}
