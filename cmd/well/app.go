package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sumeetsaini/well/internal/config"
	"github.com/sumeetsaini/well/pkg/api"
	"github.com/sumeetsaini/well/pkg/editor"
	"github.com/sumeetsaini/well/pkg/reconcile"
)

var (
	cfg    *config.Config
	client *api.Client

	// Shared so menu prompts and the taxonomy resolver never fight over
	// buffered stdin bytes.
	stdin = bufio.NewReader(os.Stdin)
)

// setup loads configuration and builds the API client. Commands call it
// lazily so that `well version` and `--help` work without an API key.
func setup() error {
	if client != nil {
		return nil
	}

	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = c

	client = api.New(c.BaseURL, c.APIKey,
		api.WithTimeout(c.Timeout),
		api.WithLogger(slog.Default()),
	)
	return nil
}

func newSurface() *editor.Surface {
	return editor.New(cfg.Editor, editor.WithLogger(slog.Default()))
}

func newEngine() *reconcile.Engine {
	return reconcile.New(newSurface(), confirmPush, reconcile.WithLogger(slog.Default()))
}

// confirmPush asks before replacing remote state. Anything but an
// explicit yes is a no.
func confirmPush(kind string) bool {
	answer, err := readLine(fmt.Sprintf("Push %s changes? [y/N]: ", kind))
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func printResponse(resp api.Response) {
	fmt.Printf("\nStatus: %d\n", resp.Status)
	fmt.Printf("Response: %s\n", resp.Body)
}

// report translates a reconciliation outcome into user-facing output.
func report(out reconcile.Outcome) {
	switch out.Result {
	case reconcile.Pushed:
		ok("Changes pushed")
		printResponse(api.Response{Status: out.Status, Body: out.Body})
	case reconcile.NoChange:
		fmt.Println(mutedStyle.Render("No changes, nothing to push."))
	case reconcile.Discarded:
		fmt.Println(mutedStyle.Render("Changes discarded."))
	case reconcile.FetchFailed:
		if out.Err != nil {
			fail(fmt.Sprintf("Fetch failed: %v", out.Err))
		} else {
			fail("Fetch failed")
			printResponse(api.Response{Status: out.Status, Body: out.Body})
		}
	case reconcile.EditFailed:
		fail(fmt.Sprintf("Edit failed: %v", out.Err))
	case reconcile.PushFailed:
		fail(fmt.Sprintf("Push failed: %v", out.Err))
	}
}
