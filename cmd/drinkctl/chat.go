package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/drinkchain/internal/chat"
)

var chatCmd = &cobra.Command{
	Use:   "chat [MESSAGE...]",
	Short: "Talk to the supply-chain advisor",
	Long: `With a message argument, sends one turn and prints the reply.
Without arguments, starts an interactive session reading lines from stdin.`,
	RunE: withApp(func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error {
		session := a.domain.Chat.Open()
		out := cmd.OutOrStdout()

		if len(args) > 0 {
			reply, err := a.domain.Chat.Send(ctx, session.ID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, reply.Text)
			return nil
		}

		fmt.Fprintln(out, session.Transcript[0].Text)

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				return scanner.Err()
			}

			reply, err := a.domain.Chat.Send(ctx, session.ID, scanner.Text())
			if errors.Is(err, chat.ErrEmptyMessage) {
				continue
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, reply.Text)
		}
	}),
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
