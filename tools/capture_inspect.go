package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"room-sync/contract"
	"room-sync/domain"
	"room-sync/infrastructure/storage"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	root := flag.String("root", "./captures", "Capture root directory")
	playbackID := flag.String("capture", "", "Capture id ({session}_{start}) to dump; lists captures when empty")
	sqlitePath := flag.String("sqlite", "", "SQLite metadata database to read connection events from")
	badgerPath := flag.String("badger", "", "Badger metadata directory to read connection events from")
	session := flag.Int64("session", 0, "Restrict connection events to one session")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	captures := storage.NewCaptureRepository(*root, logger)

	if *playbackID != "" {
		if err := dumpCapture(captures, *playbackID); err != nil {
			log.Fatal("Error while reading capture: ", err)
		}
	} else if err := listCaptures(captures); err != nil {
		log.Fatal("Error while listing captures: ", err)
	}

	metadata, closeFn, err := openMetadata(*sqlitePath, *badgerPath, logger)
	if err != nil {
		log.Fatal("Error while opening metadata: ", err)
	}
	if metadata == nil {
		return
	}
	defer closeFn()
	if err := listEvents(metadata, domain.SessionID(*session)); err != nil {
		log.Fatal("Error while listing connection events: ", err)
	}
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
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
	return table
}

func listCaptures(captures contract.ICaptureRepository) error {
	list, err := captures.List()
	if err != nil {
		return err
	}
	table := newTable("Capture", "Session", "Start", "Records")
	for _, c := range list {
		records, err := captures.Load(c.SessionID, c.Start)
		count := strconv.Itoa(len(records))
		if err != nil {
			count = "unreadable"
		}
		table.Append([]string{c.CaptureID, strconv.FormatInt(int64(c.SessionID), 10), formatMillis(c.Start), count})
	}
	table.Render()
	fmt.Printf("\n%d capture(s)\n", len(list))
	return nil
}

func dumpCapture(captures contract.ICaptureRepository, playbackID string) error {
	sid, start, err := domain.ParsePlaybackID(playbackID)
	if err != nil {
		return err
	}
	records, err := captures.Load(sid, start)
	if err != nil {
		return err
	}
	table := newTable("Seq", "Client", "Type", "Message")
	for _, r := range records {
		table.Append([]string{
			strconv.FormatInt(r.Seq, 10),
			strconv.FormatInt(int64(r.ClientID), 10),
			r.Type,
			string(r.Message),
		})
	}
	table.Render()

	byType := lo.CountValuesBy(records, func(r domain.RecordedMessage) string { return r.Type })
	types := lo.Keys(byType)
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("%s: %d\n", t, byType[t])
	}
	return nil
}

func listEvents(metadata contract.IMetadataStore, session domain.SessionID) error {
	events, err := metadata.ListConnectionEvents(context.Background(), session)
	if err != nil {
		return err
	}
	table := newTable("Timestamp", "Session", "Client", "Event")
	table.AppendBulk(lo.Map(events, func(e domain.ConnectionEvent, _ int) []string {
		return []string{
			formatMillis(e.Timestamp),
			strconv.FormatInt(int64(e.SessionID), 10),
			strconv.FormatInt(int64(e.ClientID), 10),
			e.Event,
		}
	}))
	table.Render()
	return nil
}

func openMetadata(sqlitePath, badgerPath string, logger *slog.Logger) (contract.IMetadataStore, func(), error) {
	switch {
	case sqlitePath != "":
		store, err := storage.NewSQLiteMetadataStore(sqlitePath, 1, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case badgerPath != "":
		db, err := badger.Open(badger.DefaultOptions(badgerPath).WithReadOnly(true).WithLogger(nil))
		if err != nil {
			return nil, nil, err
		}
		return storage.NewBadgerMetadataStore(db, logger), func() { _ = db.Close() }, nil
	}
	return nil, nil, nil
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(time.RFC3339Nano)
}
