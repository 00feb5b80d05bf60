// codewiki generates markdown documentation for a codebase by summarizing
// its structure and asking a local LLM to write it up.
package main

import "github.com/phobologic/codewiki/internal/cli"

func main() {
	cli.Execute()
}
