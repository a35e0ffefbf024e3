package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumeetsaini/well/pkg/reconcile"
)

var taxonomyEdit bool

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Show the category tree, or edit it with --edit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fatal("well taxonomy", err)
		}
		if taxonomyEdit {
			editTaxonomy()
			return
		}
		showTaxonomy()
	},
}

func showTaxonomy() {
	tree, resp, err := client.ListTaxonomy(context.Background())
	if err != nil {
		fail(fmt.Sprintf("Fetch failed: %v", err))
		return
	}
	if !resp.OK() {
		fail("Fetch failed")
		printResponse(resp)
		return
	}

	out, err := tree.YAML()
	if err != nil {
		fail(fmt.Sprintf("Malformed taxonomy: %v", err))
		return
	}
	fmt.Print(out)
}

func editTaxonomy() {
	out := newEngine().Run(context.Background(),
		client.FetchTaxonomy, client.ReplaceTaxonomy, reconcile.TreeKind())
	report(out)
}

func init() {
	taxonomyCmd.Flags().BoolVar(&taxonomyEdit, "edit", false, "Open the category tree in your editor")
	rootCmd.AddCommand(taxonomyCmd)
}
