package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func datasetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "List datasets available for agents",
	}
	cmd.AddCommand(datasetListCmd())
	return cmd
}

func datasetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List datasets that can be attached to agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, err := client.DatasetList(cmd.Context())
			if err != nil {
				return err
			}
			if flagJSON {
				return printResult(data)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tAPP\tNAME")
			for _, ds := range data.List {
				fmt.Fprintf(w, "%d\t%d\t%s\n", ds.DatasetID, ds.AppID, ds.Name)
			}
			return w.Flush()
		},
	}
}
