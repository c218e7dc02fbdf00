package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scriptbin/scriptbin/internal/scripts"
)

// fetchResult is the JSON payload of a successful fetch command.
type fetchResult struct {
	MetadataID string          `json:"metadata_id"`
	RolesID    string          `json:"roles_id"`
	Metadata   json.RawMessage `json:"metadata"`
	Roles      json.RawMessage `json:"roles"`
}

// NewFetchCommand creates the fetch command.
func NewFetchCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <metadata-id> <roles-id>",
		Short: "Fetch a registered script's payloads",
		Long: `Fetch both payloads of a registered script.

Only registered pairs are served: combining two ids that were never stored
together is a not-found, even when both ids exist.

Example:
  scriptbin fetch --db ./scriptbin.db g 4`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(rootOpts, cmd, args[0], args[1])
		},
	}
	return cmd
}

func runFetch(opts *RootOptions, cmd *cobra.Command, metadataID, rolesID string) error {
	svc, st, err := openService(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	metadata, roles, err := svc.FetchLinkedPair(cmd.Context(), metadataID, rolesID)
	if scripts.IsNotFound(err) {
		return WrapExitError(ExitNotFound, fmt.Sprintf("script %s/%s not found", metadataID, rolesID), err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to fetch script", err)
	}

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return f.Success(fetchResult{
			MetadataID: metadataID,
			RolesID:    rolesID,
			Metadata:   json.RawMessage(metadata),
			Roles:      json.RawMessage(roles),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(metadata))
	fmt.Fprintln(cmd.OutOrStdout(), string(roles))
	return nil
}
