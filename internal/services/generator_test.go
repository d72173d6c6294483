package services

import (
	"aimodel-generator-backend/internal/models"
	"math/rand"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(newTestRand(seed), func() time.Time { return fixedNow })
}

func TestGenerateDerivedFields(t *testing.T) {
	tests := []struct {
		size         models.ModelSize
		modelType    models.ModelType
		minParams    int64
		maxParams    int64
		trainingTime int
		cost         int64
		hardware     string
	}{
		{models.ModelSizeSmall, models.ModelTypeLanguage, 1_000_000, 100_000_000, 2, 500, "GPU: 8GB VRAM, RAM: 16GB"},
		{models.ModelSizeMedium, models.ModelTypeVision, 100_000_000, 1_000_000_000, 12, 2600, "GPU: 16GB VRAM, RAM: 32GB"},
		{models.ModelSizeLarge, models.ModelTypeVision, 1_000_000_000, 10_000_000_000, 36, 10400, "GPU: 24GB VRAM, RAM: 64GB"},
		{models.ModelSizeLarge, models.ModelTypeMultimodal, 1_000_000_000, 10_000_000_000, 48, 14400, "GPU: 24GB VRAM, RAM: 64GB"},
		{models.ModelSizeXL, models.ModelTypeAudio, 10_000_000_000, 100_000_000_000, 72, 25000, "GPU: 40GB+ VRAM, RAM: 128GB+"},
		{models.ModelSizeXL, models.ModelTypeMultimodal, 10_000_000_000, 100_000_000_000, 144, 45000, "GPU: 40GB+ VRAM, RAM: 128GB+"},
		{models.ModelSizeSmall, models.ModelTypeReinforcement, 1_000_000, 100_000_000, 2, 500, "GPU: 8GB VRAM, RAM: 16GB"},
	}

	g := newTestGenerator(1)
	for _, tt := range tests {
		t.Run(string(tt.size)+"/"+string(tt.modelType), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				record := g.Generate(models.ModelRequest{Name: "Test", Type: tt.modelType, Size: tt.size})

				assert.GreaterOrEqual(t, record.Parameters, tt.minParams)
				assert.Less(t, record.Parameters, tt.maxParams)
				assert.Equal(t, humanize.Comma(record.Parameters), record.ParametersDisplay)
				assert.Contains(t, Architectures(tt.modelType), record.Architecture)
				assert.Equal(t, tt.trainingTime, record.TrainingTime)
				assert.Equal(t, tt.cost, record.Cost)
				assert.Equal(t, tt.hardware, record.Hardware)
			}
		})
	}
}

func TestGenerateVisionLargeExample(t *testing.T) {
	record := newTestGenerator(3).Generate(models.ModelRequest{
		Name: "Eagle Eye",
		Type: models.ModelTypeVision,
		Size: models.ModelSizeLarge,
	})

	assert.Equal(t, 36, record.TrainingTime)
	assert.Equal(t, int64(10400), record.Cost)
	assert.Equal(t, "GPU: 24GB VRAM, RAM: 64GB", record.Hardware)
}

func TestGenerateInitialState(t *testing.T) {
	req := models.ModelRequest{
		Name:         "Chatty",
		Type:         models.ModelTypeLanguage,
		Size:         models.ModelSizeMedium,
		TrainingData: "web text",
		UseCase:      "Customer Support",
	}
	record := newTestGenerator(5).Generate(req)

	assert.Equal(t, req, record.ModelRequest)
	assert.Equal(t, models.ModelStatusReady, record.Status)
	assert.False(t, record.Trained)
	assert.NotNil(t, record.Tools)
	assert.Empty(t, record.Tools)
	assert.Equal(t, fixedNow, record.CreatedAt)
	assert.Regexp(t, `^ai_[0-9a-z]{9}$`, record.ID)
}

func TestGenerateUnknownValuesFallBack(t *testing.T) {
	g := newTestGenerator(11)
	for i := 0; i < 500; i++ {
		record := g.Generate(models.ModelRequest{Name: "Odd", Type: "quantum", Size: "galactic"})

		assert.GreaterOrEqual(t, record.Parameters, int64(100_000_000))
		assert.Less(t, record.Parameters, int64(1_000_000_000))
		assert.Contains(t, Architectures(models.ModelTypeLanguage), record.Architecture)
		assert.Equal(t, 8, record.TrainingTime)
		assert.Equal(t, int64(2000), record.Cost)
		assert.Equal(t, "GPU: 16GB VRAM, RAM: 32GB", record.Hardware)
		assert.GreaterOrEqual(t, record.Accuracy, 78.0)
		assert.LessOrEqual(t, record.Accuracy, 86.0)
	}
	// The request is stored as given.
	record := g.Generate(models.ModelRequest{Type: "quantum", Size: "galactic"})
	assert.Equal(t, models.ModelType("quantum"), record.Type)
	assert.Equal(t, models.ModelSize("galactic"), record.Size)
}

func TestGenerateAccuracyBounds(t *testing.T) {
	g := newTestGenerator(99)
	sizes := []models.ModelSize{models.ModelSizeSmall, models.ModelSizeMedium, models.ModelSizeLarge, models.ModelSizeXL, "unknown"}
	for i := 0; i < 10000; i++ {
		size := sizes[i%len(sizes)]
		record := g.Generate(models.ModelRequest{Type: models.ModelTypeAudio, Size: size})
		if record.Accuracy < 60 || record.Accuracy > 98 {
			t.Fatalf("accuracy %v out of range for size %s", record.Accuracy, size)
		}
	}
}

func TestGenerateXLAccuracyRange(t *testing.T) {
	g := newTestGenerator(2)
	for i := 0; i < 2000; i++ {
		record := g.Generate(models.ModelRequest{Size: models.ModelSizeXL})
		assert.GreaterOrEqual(t, record.Accuracy, 88.0)
		assert.LessOrEqual(t, record.Accuracy, 96.0)
	}
}

func TestGenerateDistinctIDs(t *testing.T) {
	g := newTestGenerator(time.Now().UnixNano())
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := g.Generate(models.ModelRequest{Name: "n"}).ID
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	req := models.ModelRequest{Name: "Seeded", Type: models.ModelTypeMultimodal, Size: models.ModelSizeLarge}
	a := newTestGenerator(42).Generate(req)
	b := newTestGenerator(42).Generate(req)
	assert.Equal(t, a, b)

	// Draw order: parameters, id, architecture, accuracy.
	rnd := rand.New(rand.NewSource(42))
	params := int64(1_000_000_000) + rnd.Int63n(9_000_000_000)
	id := make([]byte, 9)
	for i := range id {
		id[i] = idAlphabet[rnd.Intn(len(idAlphabet))]
	}
	arch := Architectures(models.ModelTypeMultimodal)[rnd.Intn(4)]
	accuracy := 88 + rnd.Float64()*8 - 4

	assert.Equal(t, params, a.Parameters)
	assert.Equal(t, "ai_"+string(id), a.ID)
	assert.Equal(t, arch, a.Architecture)
	assert.InDelta(t, accuracy, a.Accuracy, 1e-9)
}

func TestLookupFallbacks(t *testing.T) {
	lo, hi := ParameterRange("nope")
	assert.Equal(t, int64(100_000_000), lo)
	assert.Equal(t, int64(1_000_000_000), hi)
	assert.Equal(t, 8, TrainingHours("nope", "nope"))
	assert.Equal(t, int64(2000), EstimatedCost("nope", "nope"))
	assert.Equal(t, "GPU: 16GB VRAM, RAM: 32GB", HardwareRequirements(""))
	assert.Equal(t, []string{"Transformer", "GPT-style", "BERT-style", "T5-style"}, Architectures(""))
}
