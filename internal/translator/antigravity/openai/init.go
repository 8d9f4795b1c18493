package openai

import (
	"github.com/routerlab/geminibridge/internal/constant"
	"github.com/routerlab/geminibridge/internal/translator/translator"
)

func init() {
	translator.Register(
		translator.FromString(constant.OpenAI),
		translator.FromString(constant.Antigravity),
		ConvertOpenAIRequestToAntigravity,
	)
}
