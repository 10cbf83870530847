package main

import "github.com/giantswarm/mcp-linode/cmd"

// version is set by the build system using ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
