package main

import (
	"github.com/alecthomas/kong"

	"github.com/lepinkainen/fsutils/cmd"
	"github.com/lepinkainen/fsutils/types"
)

var Version = "dev"

type CLI struct {
	Dupes    cmd.DupesCmd    `cmd:"" help:"Find duplicate files by content hash"`
	Archive  cmd.ArchiveCmd  `cmd:"" help:"Create a timestamped zip backup of the vault directory"`
	Compress cmd.CompressCmd `cmd:"" help:"Compress an image to a desired JPEG quality"`
	Similar  cmd.SimilarCmd  `cmd:"" help:"Find perceptually similar images"`
	Monitor  cmd.MonitorCmd  `cmd:"" help:"Print system resource reports at an interval"`
	Top      cmd.TopCmd      `cmd:"" help:"Live terminal dashboard of system resources"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fsutils"),
		kong.Description("Small file-system and reporting utilities"),
	)
	err := ctx.Run(&types.AppContext{Version: Version})
	ctx.FatalIfErrorf(err)
}
