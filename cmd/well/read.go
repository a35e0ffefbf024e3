package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sumeetsaini/well/pkg/core"
)

var readCmd = &cobra.Command{
	Use:       "read [type]",
	Short:     "Print the stored entry of the given type",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"task", "note", "bookmark"},
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fatal("well read", err)
		}
		t, err := core.ParseRecordType(args[0])
		if err != nil {
			fatal("well read", err)
		}

		resp, err := client.FetchRecord(context.Background(), t)
		if err != nil {
			fatal("well read", err)
		}
		if !resp.OK() {
			fail("Fetch failed")
			printResponse(resp)
			return
		}
		fmt.Println(resp.Body)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
}
