package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	nexus "github.com/nexus-ai/nexus-go"
)

func agentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Inspect, configure, publish and run agents",
	}
	cmd.AddCommand(agentInfoCmd())
	cmd.AddCommand(agentUpdateCmd())
	cmd.AddCommand(agentPublishCmd())
	cmd.AddCommand(agentRunCmd())
	return cmd
}

func agentInfoCmd() *cobra.Command {
	var published bool
	cmd := &cobra.Command{
		Use:   "info <app-id>",
		Short: "Show an agent's configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appID, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			info, err := client.AgentInfo(cmd.Context(), appID, published)
			if err != nil {
				return err
			}
			return printResult(info)
		},
	}
	cmd.Flags().BoolVar(&published, "published", false, "show the published revision instead of the draft")
	return cmd
}

func agentUpdateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "update <agent-id>",
		Short: "Update an agent's base settings from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID, err := parseID(args[0])
			if err != nil {
				return err
			}
			var req nexus.AgentBaseUpdateRequest
			if err := readJSONFile(file, &req); err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			identity, err := client.UpdateAgentBase(cmd.Context(), agentID, req)
			if err != nil {
				return err
			}
			return printResult(identity)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the base settings payload")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func agentPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish <agent-id>",
		Short: "Publish an agent's current draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentID, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.PublishAgent(cmd.Context(), agentID); err != nil {
				return err
			}
			fmt.Printf("agent %d published\n", agentID)
			return nil
		},
	}
}

func agentRunCmd() *cobra.Command {
	var (
		agentID   int64
		abilityID int64
		input     string
		file      string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an agent with the given input",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req nexus.AgentRunRequest
			if file != "" {
				if err := readJSONFile(file, &req); err != nil {
					return err
				}
			} else {
				req.AgentID = agentID
				req.AbilityID = abilityID
				if input != "" {
					if err := json.Unmarshal([]byte(input), &req.Inputs); err != nil {
						return fmt.Errorf("parse --input: %w", err)
					}
				}
			}
			if req.AgentID == 0 {
				return fmt.Errorf("an agent id is required (--agent or --file)")
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			result, err := client.RunAgent(cmd.Context(), req)
			if err != nil {
				return err
			}
			if flagJSON {
				return printResult(result)
			}
			if result.OutputsMarkdown != "" {
				fmt.Println(result.OutputsMarkdown)
				return nil
			}
			return printResult(result.Outputs)
		},
	}
	cmd.Flags().Int64Var(&agentID, "agent", 0, "agent id to run")
	cmd.Flags().Int64Var(&abilityID, "ability", 0, "ability id to invoke")
	cmd.Flags().StringVar(&input, "input", "", "input variables as a JSON object")
	cmd.Flags().StringVar(&file, "file", "", "JSON file with the full run payload")
	return cmd
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func readJSONFile(path string, out any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read payload file: %w", err)
	}
	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("parse payload file: %w", err)
	}
	return nil
}
