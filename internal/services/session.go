package services

import (
	"aimodel-generator-backend/internal/models"
	"aimodel-generator-backend/internal/scheduler"
	"aimodel-generator-backend/pkg/logger"
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrRecordNotFound   = errors.New("model not found")
	ErrAlreadyTrained   = errors.New("model is already trained")
	ErrNoActiveTraining = errors.New("no active training run")
	ErrUnknownTool      = errors.New("unknown tool")
	ErrSessionClosed    = errors.New("session is closed")
)

// Presenter displays records and training progress. Calls are made without
// the session lock held.
type Presenter interface {
	PresentRecord(record models.ModelRecord)
	PresentProgress(progress models.TrainingProgress)
}

type logPresenter struct {
	log *zap.Logger
}

func (p logPresenter) PresentRecord(record models.ModelRecord) {
	p.log.Info("Model updated",
		zap.String("model_id", record.ID),
		zap.String("status", string(record.Status)),
		zap.Bool("trained", record.Trained),
		zap.Strings("tools", record.Tools),
	)
}

func (p logPresenter) PresentProgress(progress models.TrainingProgress) {
	p.log.Debug("Training progress",
		zap.String("model_id", progress.ModelID),
		zap.String("state", string(progress.State)),
		zap.Int("percent", progress.Percent),
		zap.String("status", progress.Status),
	)
}

// SessionOptions configures a Session. Zero durations make the matching
// step fire on the next scheduler turn.
type SessionOptions struct {
	Scheduler       scheduler.Scheduler
	Generator       *Generator
	Presenter       Presenter
	Logger          *zap.Logger
	Share           ShareConfig
	Steps           []models.TrainingStep
	GenerationDelay time.Duration
	TickInterval    time.Duration
	CompletionDelay time.Duration
}

// Session owns the records generated by one user and at most one training
// run. All timer callbacks are serialized by the session lock.
type Session struct {
	id   string
	opts SessionOptions
	log  *zap.Logger

	mu          sync.Mutex
	records     []*models.ModelRecord
	generations map[*pendingGeneration]struct{}
	run         *TrainingRun
	ticker      scheduler.Timer
	completion  scheduler.Timer
	closed      bool
	done        chan struct{}
}

type pendingGeneration struct {
	timer scheduler.Timer
}

// NewSession creates an empty session.
func NewSession(id string, opts SessionOptions) *Session {
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.NewReal()
	}
	if opts.Generator == nil {
		opts.Generator = NewSeededGenerator(0)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Log
	}
	log := opts.Logger.With(zap.String("session_id", id))
	if opts.Presenter == nil {
		opts.Presenter = logPresenter{log: log}
	}
	if len(opts.Steps) == 0 {
		opts.Steps = models.TrainingSteps
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = 1500 * time.Millisecond
	}
	return &Session{
		id:          id,
		opts:        opts,
		log:         log,
		generations: make(map[*pendingGeneration]struct{}),
		done:        make(chan struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Submit schedules generation of a record after the generation delay and
// calls onReady, if set, once the record has been stored.
func (s *Session) Submit(req models.ModelRequest, onReady func(models.ModelRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	gen := &pendingGeneration{}
	s.generations[gen] = struct{}{}
	gen.timer = s.opts.Scheduler.AfterFunc(s.opts.GenerationDelay, func() {
		s.finishGeneration(gen, req, onReady)
	})
	return nil
}

func (s *Session) finishGeneration(gen *pendingGeneration, req models.ModelRequest, onReady func(models.ModelRecord)) {
	s.mu.Lock()
	if _, ok := s.generations[gen]; !ok || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.generations, gen)

	record := s.opts.Generator.Generate(req)
	for s.indexOf(record.ID) >= 0 {
		record.ID = s.opts.Generator.NewID()
	}
	s.records = append(s.records, &record)
	created := record.Clone()
	s.mu.Unlock()

	s.log.Info("Model generated",
		zap.String("model_id", created.ID),
		zap.String("type", string(created.Type)),
		zap.String("size", string(created.Size)),
	)
	s.opts.Presenter.PresentRecord(created)
	if onReady != nil {
		onReady(created)
	}
}

// Generate submits a request and waits for the deferred record.
func (s *Session) Generate(ctx context.Context, req models.ModelRequest) (models.ModelRecord, error) {
	ready := make(chan models.ModelRecord, 1)
	if err := s.Submit(req, func(record models.ModelRecord) { ready <- record }); err != nil {
		return models.ModelRecord{}, err
	}

	select {
	case record := <-ready:
		return record, nil
	case <-s.done:
		return models.ModelRecord{}, ErrSessionClosed
	case <-ctx.Done():
		return models.ModelRecord{}, ctx.Err()
	}
}

// Models returns the records in creation order.
func (s *Session) Models() []models.ModelRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]models.ModelRecord, 0, len(s.records))
	for _, r := range s.records {
		list = append(list, r.Clone())
	}
	return list
}

// Model returns one record.
func (s *Session) Model(id string) (models.ModelRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.ModelRecord{}, ErrRecordNotFound
	}
	return s.records[i].Clone(), nil
}

// DeleteModel removes a record. A run training it keeps going and completes
// without touching any record.
func (s *Session) DeleteModel(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrRecordNotFound
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	s.log.Info("Model deleted", zap.String("model_id", id))
	return nil
}

// StartTraining begins a run for the record, replacing any active run.
func (s *Session) StartTraining(id string) (models.TrainingProgress, error) {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return models.TrainingProgress{}, ErrSessionClosed
	}
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return models.TrainingProgress{}, ErrRecordNotFound
	}
	if s.records[i].Trained {
		s.mu.Unlock()
		return models.TrainingProgress{}, ErrAlreadyTrained
	}

	if s.run != nil && s.run.State() != models.TrainingStateCompleted {
		s.log.Info("Replacing active training run", zap.String("model_id", s.run.ModelID()))
	}
	s.stopTrainingTimers()

	run := NewTrainingRun(*s.records[i], s.opts.Steps)
	s.run = run
	s.ticker = s.opts.Scheduler.Every(s.opts.TickInterval, func() { s.tick(run) })
	progress := run.Progress()
	s.mu.Unlock()

	s.log.Info("Training started", zap.String("model_id", id))
	s.opts.Presenter.PresentProgress(progress)
	return progress, nil
}

func (s *Session) tick(run *TrainingRun) {
	s.mu.Lock()
	if s.closed || s.run != run || !run.Tick() {
		s.mu.Unlock()
		return
	}
	if run.Finished() && s.completion == nil {
		s.completion = s.opts.Scheduler.AfterFunc(s.opts.CompletionDelay, func() { s.complete(run) })
	}
	progress := run.Progress()
	s.mu.Unlock()

	s.opts.Presenter.PresentProgress(progress)
}

func (s *Session) complete(run *TrainingRun) {
	s.mu.Lock()
	if s.closed || s.run != run || run.State() == models.TrainingStateCompleted {
		s.mu.Unlock()
		return
	}

	tools := run.Complete()
	s.stopTrainingTimers()

	var updated *models.ModelRecord
	if i := s.indexOf(run.ModelID()); i < 0 {
		s.log.Warn("Training finished for a model that no longer exists", zap.String("model_id", run.ModelID()))
	} else if s.records[i].MarkTrained(tools) {
		record := s.records[i].Clone()
		updated = &record
	}
	progress := run.Progress()
	s.mu.Unlock()

	s.opts.Presenter.PresentProgress(progress)
	if updated != nil {
		s.log.Info("Training completed", zap.String("model_id", updated.ID), zap.Strings("tools", updated.Tools))
		s.opts.Presenter.PresentRecord(*updated)
	}
}

// PauseTraining suspends the active run. Pausing a paused run is a no-op.
func (s *Session) PauseTraining() (models.TrainingProgress, error) {
	return s.controlRun((*TrainingRun).Pause)
}

// ResumeTraining continues a paused run. Resuming a running run is a no-op.
func (s *Session) ResumeTraining() (models.TrainingProgress, error) {
	return s.controlRun((*TrainingRun).Resume)
}

// TogglePause pauses or resumes the active run.
func (s *Session) TogglePause() (models.TrainingProgress, error) {
	return s.controlRun((*TrainingRun).TogglePause)
}

func (s *Session) controlRun(action func(*TrainingRun) bool) (models.TrainingProgress, error) {
	s.mu.Lock()
	run := s.run
	if run == nil || run.State() == models.TrainingStateCompleted {
		s.mu.Unlock()
		return models.TrainingProgress{}, ErrNoActiveTraining
	}
	changed := action(run)
	progress := run.Progress()
	s.mu.Unlock()

	if changed {
		s.opts.Presenter.PresentProgress(progress)
	}
	return progress, nil
}

// SetTrainingTools replaces the tools that will be attached on completion.
func (s *Session) SetTrainingTools(keys []string) (models.TrainingProgress, error) {
	for _, key := range keys {
		if _, ok := models.LookupTool(key); !ok {
			return models.TrainingProgress{}, ErrUnknownTool
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil || s.run.State() == models.TrainingStateCompleted {
		return models.TrainingProgress{}, ErrNoActiveTraining
	}
	s.run.SetTools(keys)
	return s.run.Progress(), nil
}

// Training reports the current or last run.
func (s *Session) Training() models.TrainingProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil {
		return models.TrainingProgress{
			State: models.TrainingStateIdle,
			Steps: len(s.opts.Steps),
			Tools: []string{},
		}
	}
	return s.run.Progress()
}

// Export returns the download file name and JSON body for a record.
func (s *Session) Export(id string) (string, []byte, error) {
	record, err := s.Model(id)
	if err != nil {
		return "", nil, err
	}
	data, err := ExportRecord(record)
	if err != nil {
		return "", nil, err
	}
	return ExportFileName(record.Name), data, nil
}

// Share builds the share link for a record.
func (s *Session) Share(id string) (ShareLink, error) {
	if _, err := s.Model(id); err != nil {
		return ShareLink{}, err
	}
	return s.opts.Share.Link(id), nil
}

// Close stops every pending timer. Later submissions fail.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for gen := range s.generations {
		gen.timer.Stop()
	}
	s.generations = map[*pendingGeneration]struct{}{}
	s.stopTrainingTimers()
	close(s.done)
}

// stopTrainingTimers cancels the tick and completion timers. Callers hold s.mu.
func (s *Session) stopTrainingTimers() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	if s.completion != nil {
		s.completion.Stop()
		s.completion = nil
	}
}

// indexOf finds a record by id. Callers hold s.mu.
func (s *Session) indexOf(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
