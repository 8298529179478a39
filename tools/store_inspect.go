package main

import (
	"chat-session/internal"
	"chat-session/repositories"
	"flag"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// Lists the credentials held by a chat client store, values masked.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to the credential store")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	credentials, err := repositories.ListCredentials(db)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Origin", "Credential", "Stored at"})
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

	for _, c := range credentials {
		storedAt := "-"
		if !c.StoredAt.IsZero() {
			storedAt = c.StoredAt.Local().Format(time.DateTime)
		}
		table.Append([]string{repositories.CredentialKey(c.Origin), c.Origin, internal.Mask(c.Value), storedAt})
	}
	table.Render()
}
