package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	// VersionMajor is the major number in sportclass's version
	VersionMajor = 0
	// VersionMinor is the minor number in sportclass's version
	VersionMinor = 1
	// VersionPatch is the patch number in sportclass's version
	VersionPatch = 0
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of sportclass",
		Long:  `All software has versions. This is sportclass's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sportclass v%d.%d.%d\n", VersionMajor, VersionMinor, VersionPatch)
		},
	}
}
