package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/tiny/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tiny v%s\n", info.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		fmt.Fprintf(out, "  Lexer:      %s\n", version.ComponentVersion("lexer"))
		fmt.Fprintf(out, "  Parser:     %s\n", version.ComponentVersion("parser"))
		fmt.Fprintf(out, "  Token file: %s\n", version.ComponentVersion("tokenfile"))
		fmt.Fprintf(out, "  History:    %s\n", version.ComponentVersion("history"))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
