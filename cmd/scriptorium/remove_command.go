package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"scriptorium/internal/registry"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a manuscript from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			return ctx.withStore(func(store *registry.Store) error {
				if err := store.Remove(cmd.Context(), id); err != nil {
					if errors.Is(err, registry.ErrNotFound) {
						return fmt.Errorf("manuscript id %d: not found", id)
					}
					return err
				}
				ctx.ensureLogger().Info("manuscript removed", "id", id)
				fmt.Fprintf(cmd.OutOrStdout(), "Removed manuscript id %d\n", id)
				return nil
			})
		},
	}
}
