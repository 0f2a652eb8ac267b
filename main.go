// Package main is the entry point for the vidrock application.
package main

import (
	"github.com/samber/lo"
	"github.com/vidrock-cli/vidrock/cmd"
	"github.com/vidrock-cli/vidrock/config"
	"github.com/vidrock-cli/vidrock/internal/cache"
	"github.com/vidrock-cli/vidrock/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage()

	cmd.Execute()
}
