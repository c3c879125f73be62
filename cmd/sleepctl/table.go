package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/spf13/cobra"
)

func tableCmd(opts *options) *cobra.Command {
	var (
		columns []string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the unified sleep table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if len(columns) == 0 {
				columns = table.Columns
			}
			for _, c := range columns {
				if !table.HasColumn(c) {
					return fmt.Errorf("%w: %s", domain.ErrUnknownColumn, c)
				}
			}
			return printTable(cmd.OutOrStdout(), table, columns, limit)
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns to print (default all)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most n nights (0 for all)")

	return cmd
}

func printTable(w io.Writer, table *domain.SleepTable, columns []string, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", domain.ColumnDateOfSleep, strings.Join(columns, "\t"))

	rows := table.Rows
	if limit > 0 && limit < len(rows) {
		rows = rows[:limit]
	}
	cells := make([]string, len(columns))
	for _, row := range rows {
		for i, c := range columns {
			cells[i] = cell(row.Values[c])
		}
		fmt.Fprintf(tw, "%s\t%s\n", row.Date.Format(domain.DateLayout), strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		if math.IsNaN(x) {
			return "NaN"
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	}
}
