package cmd

import (
	"github.com/df07/go-raytracing-kernel/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("kernel")

func setupLogging(ctx *cli.Context) {
	switch {
	case ctx.GlobalBool("vv"):
		log.SetLevel(log.Debug)
	case ctx.GlobalBool("v"):
		log.SetLevel(log.Info)
	default:
		log.SetLevel(log.Notice)
	}
}
