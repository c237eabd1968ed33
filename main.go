// Package main is the entry point of shua.
package main

import (
	"github.com/samber/lo"
	"github.com/shua-cli/shua/cmd"
	"github.com/shua-cli/shua/config"
	"github.com/shua-cli/shua/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
