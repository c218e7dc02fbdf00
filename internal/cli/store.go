package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scriptbin/scriptbin/internal/store"
)

// storeResult is the JSON payload of a successful store command.
type storeResult struct {
	MetadataID string `json:"metadata_id"`
	RolesID    string `json:"roles_id"`
	Share      string `json:"share"`
}

// NewStoreCommand creates the store command.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store <metadata.json> <roles.json>",
		Short: "Store a script and print its share token",
		Long: `Store a script's metadata and roles payloads and register them as a pair.

Both payloads are deduplicated by content hash, so re-storing an identical
file yields the same id. The printed share token is metadataID/rolesID.

Example:
  scriptbin store --db ./scriptbin.db trouble-brewing.json roles.json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStore(rootOpts, cmd, args[0], args[1])
		},
	}
	return cmd
}

func runStore(opts *RootOptions, cmd *cobra.Command, metadataPath, rolesPath string) error {
	log := opLogger(opts)

	metadata, err := os.ReadFile(metadataPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read metadata payload", err)
	}
	roles, err := os.ReadFile(rolesPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read roles payload", err)
	}

	svc, st, err := openService(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmd.Context()

	metadataID, err := svc.StorePayload(ctx, store.CategoryMetadata, metadata)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to store metadata", err)
	}
	log.Debug("stored metadata", "id", metadataID, "bytes", len(metadata))

	rolesID, err := svc.StorePayload(ctx, store.CategoryRoles, roles)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to store roles", err)
	}
	log.Debug("stored roles", "id", rolesID, "bytes", len(roles))

	if err := svc.RegisterLink(ctx, metadataID, rolesID); err != nil {
		return WrapExitError(ExitCommandError, "failed to register script", err)
	}
	log.Debug("registered script", "metadata_id", metadataID, "roles_id", rolesID)

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	share := fmt.Sprintf("%s/%s", metadataID, rolesID)
	if opts.Format == "json" {
		return f.Success(storeResult{MetadataID: metadataID, RolesID: rolesID, Share: share})
	}
	return f.Success(share)
}
