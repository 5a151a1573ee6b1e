// energyexe is a terminal dashboard for monitoring a wind farm portfolio
package main

import (
	"os"

	"github.com/energyexe/dashboard/cmd/energyexe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
