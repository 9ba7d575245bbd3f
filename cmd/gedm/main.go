// Public domain.

// Gedm is a command line interface to the NE2001 galactic free-electron
// density model.
package main

import (
	"github.com/js-arias/command"

	"github.com/shreetamapradhan/pygedm/cmd/gedm/density"
	"github.com/shreetamapradhan/pygedm/cmd/gedm/dist2dm"
	"github.com/shreetamapradhan/pygedm/cmd/gedm/dm2dist"
	"github.com/shreetamapradhan/pygedm/cmd/gedm/mapcmd"
	"github.com/shreetamapradhan/pygedm/cmd/gedm/profile"
)

var app = &command.Command{
	Usage: "gedm <command> [<argument>...]",
	Short: "convert pulsar DMs, distances and scattering quantities",
}

func init() {
	app.Add(dm2dist.Command)
	app.Add(dist2dm.Command)
	app.Add(density.Command)
	app.Add(mapcmd.Command)
	app.Add(profile.Command)
}

func main() {
	app.Main()
}
