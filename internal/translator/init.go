// Package translator wires the built-in translation pairs into the default
// registry. Import it for side effects.
package translator

import (
	_ "github.com/routerlab/geminibridge/internal/translator/antigravity/openai"
)
