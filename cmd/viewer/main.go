package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"chat-notify/internal"
	"chat-notify/repositories"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// Read-only viewer of the profile store: who is registered, how many
// delivery tokens each profile carries, which accounts are privileged.
func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening if another process (the notifier) holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Full Name", "Privileged", "Tokens"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	profiles := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("user:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				var profile repositories.Profile
				if err := json.Unmarshal(v, &profile); err != nil {
					// Log and keep scanning instead of stopping the whole listing.
					fmt.Printf("Error decoding key %s: %v\n", string(item.Key()), err)
					return nil
				}

				privileged := "-"
				if profile.Privileged {
					privileged = color.Yellow.Sprint("yes")
				}

				table.Append([]string{
					profile.ID,
					profile.FullName,
					privileged,
					summarizeTokens(profile.Tokens),
				})
				profiles++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}

	color.Green.Printf("Profiles: %d\n\n", profiles)
	table.Render()
}

// summarizeTokens shortens each token to its first 12 characters for readability.
func summarizeTokens(tokens []string) string {
	shortened := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) > 12 {
			token = token[:12] + "…"
		}
		shortened = append(shortened, token)
	}
	if len(shortened) == 0 {
		return "-"
	}
	return strings.Join(shortened, " ")
}
