package main

import (
	_ "embed"
	"fmt"

	"github.com/sumeetsaini/well/pkg/core"
)

//go:embed banner.txt
var banner string

// runMenu drives the interactive shell: a main loop plus a record-type
// submenu for write and read.
func runMenu() {
	if err := setup(); err != nil {
		fatal("well", err)
	}

	fmt.Print(accentStyle.Render(banner))
	fmt.Println(mutedStyle.Render(cfg.BaseURL))

	for {
		fmt.Println()
		fmt.Println(titleStyle.Render("What would you like to do?"))
		fmt.Println("  1. Write entry")
		fmt.Println("  2. Read entry")
		fmt.Println("  3. Edit ledger")
		fmt.Println("  4. Edit taxonomy")
		fmt.Println("  5. Add spending entry")
		fmt.Println("  6. Exit")

		choice, err := readLine("Choose: ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			recordSubmenu("Write", writeRecord)
		case "2":
			recordSubmenu("Read", editRecord)
		case "3":
			editLedger()
		case "4":
			editTaxonomy()
		case "5":
			addEntry()
		case "6":
			return
		default:
			fmt.Println("Invalid choice. Press 1-6.")
		}
	}
}

func recordSubmenu(title string, action func(core.RecordType)) {
	for {
		fmt.Println()
		fmt.Println(titleStyle.Render(title + " what?"))
		for i, t := range core.RecordTypes {
			fmt.Printf("  %d. %s\n", i+1, t)
		}
		fmt.Printf("  %d. Back\n", len(core.RecordTypes)+1)

		choice, err := readLine("Choose: ")
		if err != nil {
			return
		}

		switch choice {
		case "1", "2", "3":
			idx := int(choice[0] - '1')
			if idx < len(core.RecordTypes) {
				action(core.RecordTypes[idx])
				return
			}
		case "4":
			return
		}
		fmt.Printf("Invalid choice. Press 1-%d.\n", len(core.RecordTypes)+1)
	}
}
