package main

import (
	log "github.com/charmbracelet/log"

	"github.com/cloudposse/treegen/cmd"
	errUtils "github.com/cloudposse/treegen/errors"
)

func main() {
	// Diagnostics go to stderr without timestamps; generation output is
	// plain stdout.
	log.SetReportTimestamp(false)

	if err := cmd.Execute(); err != nil {
		errUtils.CheckErrorAndExit(err)
	}
}
