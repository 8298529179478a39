package main

import (
	errs "chat-session/errors"
	"chat-session/internal"
	"chat-session/repositories"
	"chat-session/runtime/workers"
	"chat-session/services"
	"chat-session/transport"
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open an interactive chat session",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			config := a.config
			session := services.NewSessionController(
				a.log,
				a.resolver,
				a.api,
				transport.NewDialer(config.PushURL, a.log),
				a.store,
				repositories.NewSelectionStore(config.ServerID, config.ChannelID),
				services.SessionOptions{
					HistoryLimit:       config.HistoryLimit,
					Backoff:            config.BackoffPolicy(),
					TypingHorizon:      config.TypingHorizon,
					RemoteTypingIdle:   config.RemoteTypingIdle,
					ValidationErrorTTL: config.ValidationErrorTTL,
					ServerErrorTTL:     config.ServerErrorTTL,
				},
			)
			defer session.Close()

			if err := session.Start(ctx); err != nil {
				if errors.Is(err, errs.ErrAuthMissing) || errors.Is(err, errs.ErrAuthExpired) {
					return err
				}
				a.log.Warn("Session started with errors", "error", err)
			}
			if config.DebugPort > 0 {
				internal.StartDebugServer(ctx, config.DebugPort, internal.NewDebugRouter(a.db, session.View), a.log)
			}

			supervisor := workers.NewSupervisor(a.log, nil)
			supervisor.Add(
				newRenderWorker(session, cmd.OutOrStdout(), cancel),
				newInputWorker(session, os.Stdin, cmd.OutOrStdout(), cancel),
			)
			supervisor.Run(ctx)

			if !session.View().Authenticated {
				return errs.ErrAuthExpired
			}
			return nil
		}),
	}
}
