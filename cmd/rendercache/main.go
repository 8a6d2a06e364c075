// Command rendercache inspects and serves render specifications.
package main

import (
	"os"

	"github.com/goliatone/go-rendercache/internal/prompt"
)

func main() {
	root := newRootCmd(os.Stdout, prompt.NewSurveyDriver())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
