// femtoclaw - bridge a command-line AI agent into chat channels.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/femtoclaw/femtoclaw/pkg/config"
	"github.com/femtoclaw/femtoclaw/pkg/logger"
	"github.com/femtoclaw/femtoclaw/pkg/markers"
	"github.com/femtoclaw/femtoclaw/pkg/providers"
)

var version = "dev"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "femtoclaw",
		Short:         "Bridge a command-line AI agent into chat channels",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", defaultConfigPath(), "Path to config file")
	root.PersistentFlags().Bool("debug", false, "Enable debug logging")
	root.AddCommand(newChatCmd(), newParseCmd(), newVersionCmd())
	return root
}

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Send one message through the CLI agent and print the reply",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runChat,
	}
	cmd.Flags().StringP("system", "s", "", "System prompt for this turn")
	cmd.Flags().StringP("agent", "a", "", "Agent selector override")
	cmd.Flags().StringP("model", "m", "", "Model selector override")
	return cmd
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse",
		Short: "Parse attachment markers from stdin text",
		Long: "Reads message text from stdin, strips [KIND:target] markers and prints\n" +
			"the cleaned text plus the extracted attachments. Debugging aid for\n" +
			"channel adapters.",
		RunE: runParse,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("femtoclaw %s\n", version)
		},
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logger.SetLevel(logger.DEBUG)
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if agent, _ := cmd.Flags().GetString("agent"); agent != "" {
		cfg.Provider.Agent = agent
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		cfg.Provider.Model = model
	}

	message, err := readMessage(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("no message given: pass one as an argument or on stdin")
	}

	system, _ := cmd.Flags().GetString("system")

	provider := providers.NewKiroProvider(cfg)
	reply, err := provider.ChatWithSystem(cmd.Context(), system, message)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	cleaned, attachments := markers.Parse(string(data))
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cleaned)
	for _, att := range attachments {
		location := "remote"
		if markers.IsLocalPath(att.Target) {
			location = "local"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", att.Kind.MarkerName(), location, att.Target)
	}
	return nil
}

// readMessage takes the message from the argument when present,
// otherwise from stdin.
func readMessage(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "femtoclaw.json"
	}
	return filepath.Join(home, ".femtoclaw", "config.json")
}
