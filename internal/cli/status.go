package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scriptbin/scriptbin/internal/store"
)

// statusResult is the JSON payload of the status command.
type statusResult struct {
	Categories map[string]categoryStatus `json:"categories"`
	Links      int                       `json:"links"`
}

type categoryStatus struct {
	Records  int  `json:"records"`
	IDLength uint `json:"id_length"`
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "status",
		Short:         "Show record counts and current id lengths",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(rootOpts, cmd)
		},
	}
	return cmd
}

func runStatus(opts *RootOptions, cmd *cobra.Command) error {
	svc, st, err := openService(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	cats, links, err := svc.Counts(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read status", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		out := statusResult{Categories: make(map[string]categoryStatus), Links: links}
		for cat, cs := range cats {
			out.Categories[string(cat)] = categoryStatus{Records: cs.Records, IDLength: cs.IDLength}
		}
		return f.Success(out)
	}

	var b strings.Builder
	for _, cat := range store.Categories {
		cs := cats[cat]
		fmt.Fprintf(&b, "%s: %d records, id length %d\n", cat, cs.Records, cs.IDLength)
	}
	fmt.Fprintf(&b, "scripts: %d links", links)
	return f.Success(b.String())
}
