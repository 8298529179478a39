package main

import (
	"chat-session/auth"
	"chat-session/domain"
	errs "chat-session/errors"
	"chat-session/internal"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "chat",
		Short:         "Terminal client for the realtime chat",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand(), newServersCommand(), newHistoryCommand(), newWhoamiCommand(), newLogoutCommand())
	return root
}

// withApp opens the app for the duration of fn.
func withApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, a, args)
	}
}

func newServersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List servers and their channels",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			credential, ok := a.resolver.Resolve(cmd.Context())
			if !ok {
				return errs.ErrAuthMissing
			}
			servers, err := a.api.Servers(cmd.Context(), credential)
			if err != nil {
				return err
			}
			table := newTable(cmd.OutOrStdout(), "Server", "Name", "Channel", "Kind")
			for _, server := range servers {
				channels := server.Channels
				if channels == nil {
					if channels, err = a.api.Channels(cmd.Context(), credential, server.ID); err != nil {
						return err
					}
				}
				if len(channels) == 0 {
					table.Append([]string{server.ID, server.Name, "-", "-"})
				}
				for _, channel := range channels {
					table.Append([]string{server.ID, server.Name, channel.ID, string(channel.Kind)})
				}
			}
			table.Render()
			return nil
		}),
	}
}

func newHistoryCommand() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history <server> <channel>",
		Short: "Print the latest messages of a channel",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			if !domain.ValidIdentifier(args[0]) || !domain.ValidIdentifier(args[1]) {
				return errs.ErrInvalidIdentifier
			}
			credential, ok := a.resolver.Resolve(cmd.Context())
			if !ok {
				return errs.ErrAuthMissing
			}
			if limit <= 0 {
				limit = a.config.HistoryLimit
			}
			messages, err := a.api.Messages(cmd.Context(), credential, domain.Key(args[0], args[1]), limit)
			if err != nil {
				return err
			}
			table := newTable(cmd.OutOrStdout(), "Time", "Author", "Message")
			for _, m := range messages {
				table.Append([]string{m.Timestamp, m.Author, m.Body})
			}
			table.Render()
			return nil
		}),
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "number of messages (defaults to CHAT_HISTORY_LIMIT)")
	return cmd
}

func newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the resolved credential",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			credential, ok := a.resolver.Resolve(cmd.Context())
			if !ok {
				return errs.ErrAuthMissing
			}
			table := newTable(cmd.OutOrStdout(), "Source", "Credential", "Subject", "Expires")
			subject, expires := "-", "-"
			if claims, ok := auth.Inspect(credential.Value); ok {
				subject = claims.Subject
				if !claims.ExpiresAt.IsZero() {
					expires = claims.ExpiresAt.Format(time.RFC3339)
				}
			}
			table.Append([]string{string(credential.Source), internal.Mask(credential.Value), subject, expires})
			table.Render()
			return nil
		}),
	}
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored credential",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			if err := a.store.Clear(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "credential removed")
			return err
		}),
	}
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
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
