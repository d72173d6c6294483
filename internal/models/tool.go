package models

// Tool is a capability tag attached to a model when training completes.
type Tool struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ToolCatalog lists the selectable tools in the order they are offered.
// Selected tools are always reported in this order.
var ToolCatalog = []Tool{
	{Key: "nlp", Label: "NLP"},
	{Key: "cv", Label: "Computer Vision"},
	{Key: "speech", Label: "Speech Recognition"},
	{Key: "rl", Label: "Reinforcement Learning"},
	{Key: "transformer", Label: "Transformer"},
	{Key: "gan", Label: "GAN"},
}

var defaultTools = map[ModelType][]string{
	ModelTypeLanguage:      {"nlp", "transformer"},
	ModelTypeVision:        {"cv", "gan"},
	ModelTypeAudio:         {"speech"},
	ModelTypeReinforcement: {"rl"},
	ModelTypeMultimodal:    {"nlp", "cv", "speech"},
}

// DefaultToolKeys returns the tools preselected for a model type. Unknown
// types get no preselection.
func DefaultToolKeys(t ModelType) []string {
	return append([]string{}, defaultTools[t]...)
}

// LookupTool finds a catalog entry by key.
func LookupTool(key string) (Tool, bool) {
	for _, tool := range ToolCatalog {
		if tool.Key == key {
			return tool, true
		}
	}
	return Tool{}, false
}
