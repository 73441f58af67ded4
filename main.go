// Package main is the entry point for the vidcat application.
package main

import (
	"github.com/samber/lo"
	"github.com/vidcat/vidcat/cmd"
	"github.com/vidcat/vidcat/config"
	"github.com/vidcat/vidcat/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
