package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sumeetsaini/well/pkg/api"
	"github.com/sumeetsaini/well/pkg/core"
	"github.com/sumeetsaini/well/pkg/reconcile"
)

var editCmd = &cobra.Command{
	Use:       "edit [type]",
	Short:     "Open the stored entry in your editor and push changes",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"task", "note", "bookmark"},
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fatal("well edit", err)
		}
		t, err := core.ParseRecordType(args[0])
		if err != nil {
			fatal("well edit", err)
		}
		editRecord(t)
	},
}

// editRecord runs the fetch-edit-push cycle for one record type.
func editRecord(t core.RecordType) {
	out := newEngine().Run(context.Background(),
		func(ctx context.Context) (api.Response, error) {
			return client.FetchRecord(ctx, t)
		},
		client.ReplaceRecord,
		reconcile.RecordKind(t),
	)
	report(out)
}

func init() {
	rootCmd.AddCommand(editCmd)
}
