package services

import (
	"aimodel-generator-backend/internal/models"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	idPrefix   = "ai_"
	idLength   = 9
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	minAccuracy      = 60.0
	maxAccuracy      = 98.0
	accuracyVariance = 4.0
)

type paramRange struct {
	min, max int64
}

var parameterRanges = map[models.ModelSize]paramRange{
	models.ModelSizeSmall:  {1_000_000, 100_000_000},
	models.ModelSizeMedium: {100_000_000, 1_000_000_000},
	models.ModelSizeLarge:  {1_000_000_000, 10_000_000_000},
	models.ModelSizeXL:     {10_000_000_000, 100_000_000_000},
}

var architectures = map[models.ModelType][]string{
	models.ModelTypeLanguage:      {"Transformer", "GPT-style", "BERT-style", "T5-style"},
	models.ModelTypeVision:        {"CNN", "Vision Transformer", "ResNet", "EfficientNet"},
	models.ModelTypeAudio:         {"Wavenet", "Transformer", "CNN-LSTM", "CRNN"},
	models.ModelTypeMultimodal:    {"CLIP-style", "DALL-E style", "Flamingo", "GATO"},
	models.ModelTypeReinforcement: {"DQN", "PPO", "A3C", "SAC"},
}

var baseTrainingHours = map[models.ModelSize]float64{
	models.ModelSizeSmall:  2,
	models.ModelSizeMedium: 8,
	models.ModelSizeLarge:  24,
	models.ModelSizeXL:     72,
}

var baseAccuracy = map[models.ModelSize]float64{
	models.ModelSizeSmall:  75,
	models.ModelSizeMedium: 82,
	models.ModelSizeLarge:  88,
	models.ModelSizeXL:     92,
}

var baseCost = map[models.ModelSize]float64{
	models.ModelSizeSmall:  500,
	models.ModelSizeMedium: 2000,
	models.ModelSizeLarge:  8000,
	models.ModelSizeXL:     25000,
}

var hardwareRequirements = map[models.ModelSize]string{
	models.ModelSizeSmall:  "GPU: 8GB VRAM, RAM: 16GB",
	models.ModelSizeMedium: "GPU: 16GB VRAM, RAM: 32GB",
	models.ModelSizeLarge:  "GPU: 24GB VRAM, RAM: 64GB",
	models.ModelSizeXL:     "GPU: 40GB+ VRAM, RAM: 128GB+",
}

// Generator fabricates model records from a request. It is safe for
// concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewGenerator returns a Generator drawing from rnd and stamping records
// with now. A nil now uses the wall clock.
func NewGenerator(rnd *rand.Rand, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rnd: rnd, now: now}
}

// NewSeededGenerator returns a wall-clock Generator seeded with seed, or
// with the current time when seed is zero.
func NewSeededGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewGenerator(rand.New(rand.NewSource(seed)), nil)
}

// Generate builds a new untrained record. Unknown sizes and types fall back
// to the medium and language tables.
func (g *Generator) Generate(req models.ModelRequest) models.ModelRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	params := g.parameters(req.Size)
	return models.ModelRecord{
		ModelRequest:      req,
		ID:                g.newID(),
		CreatedAt:         g.now().UTC(),
		Parameters:        params,
		ParametersDisplay: humanize.Comma(params),
		Architecture:      g.architecture(req.Type),
		TrainingTime:      TrainingHours(req.Size, req.Type),
		Accuracy:          g.accuracy(req.Size),
		Cost:              EstimatedCost(req.Size, req.Type),
		Hardware:          HardwareRequirements(req.Size),
		Status:            models.ModelStatusReady,
		Trained:           false,
		Tools:             []string{},
	}
}

// NewID draws a fresh record id.
func (g *Generator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.newID()
}

func (g *Generator) newID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[g.rnd.Intn(len(idAlphabet))]
	}
	return idPrefix + string(b)
}

func (g *Generator) parameters(size models.ModelSize) int64 {
	lo, hi := ParameterRange(size)
	return lo + g.rnd.Int63n(hi-lo)
}

func (g *Generator) architecture(t models.ModelType) string {
	archs := Architectures(t)
	return archs[g.rnd.Intn(len(archs))]
}

func (g *Generator) accuracy(size models.ModelSize) float64 {
	variance := g.rnd.Float64()*2*accuracyVariance - accuracyVariance
	return math.Max(minAccuracy, math.Min(maxAccuracy, lookupSize(baseAccuracy, size)+variance))
}

// ParameterRange returns the half-open [min, max) parameter count range.
func ParameterRange(size models.ModelSize) (lo, hi int64) {
	r, ok := parameterRanges[size]
	if !ok {
		r = parameterRanges[models.ModelSizeMedium]
	}
	return r.min, r.max
}

// Architectures lists the candidate architecture labels for a type.
func Architectures(t models.ModelType) []string {
	if archs, ok := architectures[t]; ok {
		return archs
	}
	return architectures[models.ModelTypeLanguage]
}

// TrainingHours is the size base time scaled by the type factor, rounded.
func TrainingHours(size models.ModelSize, t models.ModelType) int {
	multiplier := 1.0
	switch t {
	case models.ModelTypeVision:
		multiplier = 1.5
	case models.ModelTypeMultimodal:
		multiplier = 2.0
	}
	return int(math.Round(lookupSize(baseTrainingHours, size) * multiplier))
}

// EstimatedCost is the size base cost scaled by the type factor, rounded.
func EstimatedCost(size models.ModelSize, t models.ModelType) int64 {
	multiplier := 1.0
	switch t {
	case models.ModelTypeMultimodal:
		multiplier = 1.8
	case models.ModelTypeVision:
		multiplier = 1.3
	}
	return int64(math.Round(lookupSize(baseCost, size) * multiplier))
}

// HardwareRequirements describes the hardware needed for a size.
func HardwareRequirements(size models.ModelSize) string {
	return lookupSize(hardwareRequirements, size)
}

func lookupSize[V any](table map[models.ModelSize]V, size models.ModelSize) V {
	if v, ok := table[size]; ok {
		return v
	}
	return table[models.ModelSizeMedium]
}
