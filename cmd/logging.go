package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-teaching-renderer/pkg/log"
)

var logger = log.New("teaching-renderer")

func setupLogging(ctx *cli.Context) {
	verbosity := 0
	if ctx.GlobalBool("v") {
		verbosity = 1
	}
	if ctx.GlobalBool("vv") {
		verbosity = 2
	}
	log.SetLevel(log.LevelForVerbosity(verbosity))
}
