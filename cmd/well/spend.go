package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/sumeetsaini/well/pkg/core"
	"github.com/sumeetsaini/well/pkg/taxonomy"
)

var spendCmd = &cobra.Command{
	Use:   "spend",
	Short: "Record a spending entry",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := setup(); err != nil {
			fatal("well spend", err)
		}
		addEntry()
	},
}

// addEntry walks the user through one ledger entry: category resolution
// against the remote tree, then the remaining fields.
func addEntry() {
	ctx := context.Background()

	tree, resp, err := client.ListTaxonomy(ctx)
	if err != nil {
		fail(fmt.Sprintf("Fetch failed: %v", err))
		return
	}
	if !resp.OK() {
		fail("Fetch failed")
		printResponse(resp)
		return
	}

	resolver := taxonomy.NewResolver(client, stdin, os.Stdout, taxonomy.WithLogger(slog.Default()))
	category, subcategory, err := resolver.Resolve(ctx, tree)
	if err != nil {
		fail(fmt.Sprintf("Category selection failed: %v", err))
		return
	}

	entry, err := promptEntry(category, subcategory)
	if err != nil {
		fail(fmt.Sprintf("Entry aborted: %v", err))
		return
	}

	created, err := client.CreateEntry(ctx, *entry)
	if err != nil {
		fail(fmt.Sprintf("Push failed: %v", err))
		return
	}
	printResponse(created)
}

func promptEntry(category, subcategory string) (*core.Entry, error) {
	today := time.Now().Format("2006-01-02")
	date, err := readLine(fmt.Sprintf("Date [%s]: ", today))
	if err != nil {
		return nil, err
	}
	if date == "" {
		date = today
	}

	name, err := readLine("Name: ")
	if err != nil {
		return nil, err
	}

	var amount decimal.Decimal
	for {
		raw, err := readLine("Amount: ")
		if err != nil {
			return nil, err
		}
		amount, err = core.ParseAmount(raw)
		if err == nil {
			break
		}
		fmt.Printf("Invalid amount: %v\n", err)
	}

	var method core.PaymentMethod
	for {
		raw, err := readLine("Payment method (credit/debit): ")
		if err != nil {
			return nil, err
		}
		method, err = core.ParsePaymentMethod(raw)
		if err == nil {
			break
		}
		fmt.Printf("Invalid payment method: %v\n", err)
	}

	notes, err := readLine("Notes (optional): ")
	if err != nil {
		return nil, err
	}

	entry := core.Entry{
		Date:          date,
		Name:          name,
		Amount:        amount,
		Category:      category,
		Subcategory:   subcategory,
		PaymentMethod: method,
		Notes:         notes,
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return &entry, nil
}

func init() {
	rootCmd.AddCommand(spendCmd)
}
