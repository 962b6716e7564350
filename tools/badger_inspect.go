package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	"zenchat/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

// InspectConfig is read from INSPECT_* variables.
type InspectConfig struct {
	DB      string `envconfig:"DB" default:"data/badger"`
	Prefix  string `envconfig:"PREFIX" default:""`
	Colours bool   `envconfig:"COLOURS" default:"true"`
	// Index keys carry no document
	ShowIndexes bool `envconfig:"SHOW_INDEXES" default:"false"`
}

type row struct {
	Key     string
	Kind    string
	Summary string
	Expires string
}

var kinds = []struct {
	prefix string
	kind   string
}{
	{"user:id:", "USER"},
	{"user:email:", "EMAIL_IDX"},
	{"conv:id:", "CONVERSATION"},
	{"conv:pair:", "PAIR_IDX"},
	{"conv:user:", "USER_CONV_IDX"},
	{"msg:id:", "MESSAGE"},
	{"msg:conv:", "CONV_MSG_IDX"},
	{"status:", "STATUS"},
}

func kindOf(key string) string {
	for _, k := range kinds {
		if strings.HasPrefix(key, k.prefix) {
			return k.kind
		}
	}
	return "UNKNOWN"
}

func isIndex(kind string) bool {
	return strings.HasSuffix(kind, "_IDX")
}

// describe renders a one line summary of a stored document.
func describe(kind string, value []byte) string {
	switch kind {
	case "USER":
		var u domain.User
		if err := json.Unmarshal(value, &u); err != nil {
			return "invalid: " + err.Error()
		}
		presence := "offline"
		if u.IsOnline {
			presence = "online"
		}
		return fmt.Sprintf("%s <%s> %s verified=%t", u.UserName, u.Email, presence, u.IsVerified)
	case "CONVERSATION":
		var c domain.Conversation
		if err := json.Unmarshal(value, &c); err != nil {
			return "invalid: " + err.Error()
		}
		if len(c.Participants) != 2 {
			return fmt.Sprintf("invalid: %d participants", len(c.Participants))
		}
		return fmt.Sprintf("%s <-> %s unread=%d", c.Participants[0], c.Participants[1], c.UnreadCount)
	case "MESSAGE":
		var m domain.Message
		if err := json.Unmarshal(value, &m); err != nil {
			return "invalid: " + err.Error()
		}
		content := m.Content
		if m.ContentType.IsMedia() {
			content = m.MediaURL
		}
		return fmt.Sprintf("%s -> %s [%s/%s] %s", m.SenderID, m.ReceiverID, m.ContentType, m.Status, truncate(content, 40))
	case "STATUS":
		var s domain.Status
		if err := json.Unmarshal(value, &s); err != nil {
			return "invalid: " + err.Error()
		}
		return fmt.Sprintf("%s [%s] viewers=%d %s", s.UserID, s.ContentType, len(s.Viewers), truncate(s.Content, 40))
	default:
		return string(value)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func colourKind(kind string) string {
	switch kind {
	case "USER":
		return color.Cyan.Sprint(kind)
	case "MESSAGE":
		return color.Green.Sprint(kind)
	case "CONVERSATION":
		return color.Magenta.Sprint(kind)
	case "STATUS":
		return color.Yellow.Sprint(kind)
	case "UNKNOWN":
		return color.Red.Sprint(kind)
	default:
		return color.Blue.Sprint(kind)
	}
}

func main() {
	var cfg InspectConfig
	if err := envconfig.Process("INSPECT", &cfg); err != nil {
		log.Fatal("Error while reading config: ", err)
	}
	color.Enable = cfg.Colours

	db, err := openDB(cfg.DB)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	rows, err := scan(db, cfg)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Summary", "Expires"})
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
	for _, r := range rows {
		table.Append([]string{r.Key, colourKind(r.Kind), r.Summary, r.Expires})
	}
	table.Render()
	color.Info.Printf("%d keys under prefix %q\n", len(rows), cfg.Prefix)
}

func scan(db *badger.DB, cfg InspectConfig) ([]row, error) {
	var rows []row
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(cfg.Prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			kind := kindOf(key)
			if isIndex(kind) && !cfg.ShowIndexes {
				continue
			}
			value, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("reading %s: %w", key, err)
			}
			expires := "-"
			if at := item.ExpiresAt(); at > 0 {
				expires = time.Unix(int64(at), 0).Format(time.DateTime)
			}
			rows = append(rows, row{Key: key, Kind: kind, Summary: describe(kind, value), Expires: expires})
		}
		return nil
	})
	return rows, err
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		color.Warn.Println("Value log needs a truncate, reopening in write mode first")
		repairOpts := badger.DefaultOptions(path).
			WithLogger(nil).WithBypassLockGuard(true)
		if db, err = badger.Open(repairOpts); err != nil {
			return nil, fmt.Errorf("repair failed: %w", err)
		}
		_ = db.Close()
		return badger.Open(opts)
	}
	return db, err
}
