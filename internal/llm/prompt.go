package llm

import (
	"fmt"
	"strings"
)

const systemMessage = "You are a senior software engineer writing documentation for a codebase."

// buildPrompt selects the initial or refinement prompt. A blank existing
// document means a fresh generation.
func buildPrompt(digest, existing string) string {
	if strings.TrimSpace(existing) == "" {
		return documentationPrompt(digest)
	}
	return refinementPrompt(digest, existing)
}

func documentationPrompt(digest string) string {
	return fmt.Sprintf(`Create comprehensive documentation for the codebase summarized below.

Please cover:
1. What the project does, in one or two paragraphs.
2. The main components and how they relate to each other.
3. The role of each listed file and its key functions.

Return the documentation in Markdown format.

Here is the codebase summary:
%s
`, digest)
}

func refinementPrompt(digest, existing string) string {
	return fmt.Sprintf(`Improve the existing documentation below using the fresh codebase analysis.

Please:
1. Keep the structure and any hand-written sections of the existing document.
2. Correct anything the new analysis contradicts.
3. Add missing technical details from the new analysis.

Return the improved documentation in Markdown format.

Fresh codebase summary:
%s

Existing documentation:
%s
`, digest, existing)
}
