package pipeline

import (
	"strings"
)

type Model string

const (
	ModelGemini Model = "gemini"
	ModelOpenAI Model = "openai"
	ModelGrok   Model = "grok"
)

var modelNames = map[Model]string{
	ModelGemini: "Gemini",
	ModelOpenAI: "OpenAI",
	ModelGrok:   "Grok",
}

// ParseModel normalizes a user supplied model id. The result may lie outside
// the supported set.
func ParseModel(val string) Model {
	return Model(strings.ToLower(strings.TrimSpace(val)))
}

// Name returns the display name of a supported model.
func (m Model) Name() (string, bool) {
	name, ok := modelNames[m]
	return name, ok
}

// Models lists the supported summarization backends.
func Models() []Model {
	return []Model{ModelGemini, ModelOpenAI, ModelGrok}
}
