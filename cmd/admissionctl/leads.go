package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/database"
	"github.com/Anirudh646/dfghjkddfghj/model"
	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/spf13/cobra"
)

var (
	leadsLimit  int
	leadsOffset int
	leadsFormat string
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "Read captured leads",
}

var leadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		store, closeStore, err := openLeadStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()

		leads, total, err := store.List(ctx, leadsLimit, leadsOffset)
		if err != nil {
			return err
		}

		format := leadsFormat
		if jsonOutput {
			format = "json"
		}
		return writeLeads(cmd.OutOrStdout(), format, leads, total)
	},
}

func init() {
	leadsListCmd.Flags().IntVar(&leadsLimit, "limit", 50, "maximum leads to print")
	leadsListCmd.Flags().IntVar(&leadsOffset, "offset", 0, "leads to skip")
	leadsListCmd.Flags().StringVar(&leadsFormat, "format", "table", "table, csv or json")
	leadsCmd.AddCommand(leadsListCmd)
}

// openLeadStore follows LEAD_STORE like the server does
func openLeadStore(ctx context.Context) (lead.Store, func(), error) {
	if env.LEAD_STORE == "mongo" {
		client, db, err := database.ConnectMongo(ctx, env.MONGO_URI, env.MONGO_DB)
		if err != nil {
			return nil, nil, err
		}
		return lead.NewMongoStore(db), func() { _ = client.Disconnect(context.Background()) }, nil
	}

	db, closeDB, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	return lead.NewGormStore(db), closeDB, nil
}

func writeLeads(w io.Writer, format string, leads []model.Lead, total int64) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{"leads": leads, "total": total})
	case "csv":
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"id", "name", "phone", "source", "session_id", "created_at"})
		for _, l := range leads {
			_ = cw.Write([]string{l.ID, l.Name, l.Phone, l.Source, l.SessionID, l.CreatedAt.Format(time.RFC3339)})
		}
		cw.Flush()
		return cw.Error()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CREATED\tNAME\tPHONE\tSOURCE")
		for _, l := range leads {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.CreatedAt.Format("2006-01-02 15:04"), l.Name, l.Phone, l.Source)
		}
		fmt.Fprintln(tw, "\t\t\t"+strconv.Itoa(len(leads))+" of "+strconv.FormatInt(total, 10))
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q (must be table, csv or json)", format)
	}
}
