package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func chatroomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chatroom",
		Short: "Manage multi-agent chatrooms",
	}
	cmd.AddCommand(chatroomListCmd())
	cmd.AddCommand(chatroomDetailsCmd())
	cmd.AddCommand(chatroomDeleteCmd())
	return cmd
}

func chatroomListCmd() *cobra.Command {
	var (
		page     int
		pageSize int
		name     string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List chatrooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			data, err := client.ChatroomList(cmd.Context(), page, pageSize, name)
			if err != nil {
				return err
			}
			if flagJSON {
				return printResult(data)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMAX ROUND\tSTATUS")
			for _, room := range data.List {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", room.ChatroomID, room.Name, room.MaxRound, room.Status)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "entries per page")
	cmd.Flags().StringVar(&name, "name", "", "filter chatrooms by name")
	return cmd
}

func chatroomDetailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <chatroom-id>",
		Short: "Show a chatroom's configuration and agent roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatroomID, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			data, err := client.ChatroomDetails(cmd.Context(), chatroomID)
			if err != nil {
				return err
			}
			return printResult(data)
		},
	}
}

func chatroomDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <chatroom-id>",
		Short: "Delete a chatroom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatroomID, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.DeleteChatroom(cmd.Context(), chatroomID); err != nil {
				return err
			}
			fmt.Printf("chatroom %d deleted\n", chatroomID)
			return nil
		},
	}
}
