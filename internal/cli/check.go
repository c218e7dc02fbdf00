package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// checkResult is the JSON payload of the check command.
type checkResult struct {
	MetadataID string `json:"metadata_id"`
	RolesID    string `json:"roles_id"`
	Linked     bool   `json:"linked"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <metadata-id> <roles-id>",
		Short: "Check whether a pair of ids is a registered script",
		Long: `Check whether the pair (metadata-id, roles-id) is registered.

Exits 0 if the pair is registered, 1 if not.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd, args[0], args[1])
		},
	}
	return cmd
}

func runCheck(opts *RootOptions, cmd *cobra.Command, metadataID, rolesID string) error {
	svc, st, err := openService(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	linked, err := svc.IsLinked(cmd.Context(), metadataID, rolesID)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to check link", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		if err := f.Success(checkResult{MetadataID: metadataID, RolesID: rolesID, Linked: linked}); err != nil {
			return err
		}
	} else if linked {
		fmt.Fprintf(cmd.OutOrStdout(), "%s/%s is registered\n", metadataID, rolesID)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s/%s is not registered\n", metadataID, rolesID)
	}

	if !linked {
		return &ExitError{Code: ExitNotFound, Message: "pair not registered"}
	}
	return nil
}
