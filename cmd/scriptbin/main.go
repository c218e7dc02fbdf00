// Command scriptbin stores script metadata and role lists under short
// shareable ids, deduplicated by content hash.
package main

import (
	"fmt"
	"os"

	"github.com/scriptbin/scriptbin/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
