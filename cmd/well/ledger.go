package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumeetsaini/well/pkg/reconcile"
)

var ledgerEdit bool

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Show the spending ledger, or edit it with --edit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fatal("well ledger", err)
		}
		if ledgerEdit {
			editLedger()
			return
		}
		showLedger()
	},
}

func showLedger() {
	resp, err := client.FetchLedger(context.Background())
	if err != nil {
		fail(fmt.Sprintf("Fetch failed: %v", err))
		return
	}
	if !resp.OK() {
		fail("Fetch failed")
		printResponse(resp)
		return
	}
	fmt.Println(resp.Body)
}

func editLedger() {
	out := newEngine().Run(context.Background(),
		client.FetchLedger, client.ReplaceLedger, reconcile.LedgerKind())
	report(out)
}

func init() {
	ledgerCmd.Flags().BoolVar(&ledgerEdit, "edit", false, "Open the ledger in your editor")
	rootCmd.AddCommand(ledgerCmd)
}
