package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sumeetsaini/well/pkg/core"
)

var writeCmd = &cobra.Command{
	Use:       "write [type]",
	Short:     "Compose a new entry in your editor and push it",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"task", "note", "bookmark"},
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fatal("well write", err)
		}
		t, err := core.ParseRecordType(args[0])
		if err != nil {
			fatal("well write", err)
		}
		writeRecord(t)
	},
}

// writeRecord opens an empty scratch buffer and creates a new record
// from whatever the user typed. An empty buffer cancels.
func writeRecord(t core.RecordType) {
	content, err := newSurface().Edit("", ".md")
	if err != nil {
		fail(fmt.Sprintf("Edit failed: %v", err))
		return
	}

	content = strings.TrimSpace(content)
	if content == "" {
		fmt.Println(mutedStyle.Render("No content entered. Cancelled."))
		return
	}

	resp, err := client.CreateRecord(context.Background(), t, content)
	if err != nil {
		fail(fmt.Sprintf("Push failed: %v", err))
		return
	}
	printResponse(resp)
}

func init() {
	rootCmd.AddCommand(writeCmd)
}
