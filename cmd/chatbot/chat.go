package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/belenfg/restaurant-chatbot/internal/chat"
	"github.com/belenfg/restaurant-chatbot/internal/dialogue"
)

const (
	cliSessionID = "cli"
	msgSlowDown  = "You're sending messages too quickly. Please wait a moment and try again."
)

func newChatCmd(opts *rootOptions) *cobra.Command {
	var withAI bool

	c := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, cfg, l, err := opts.openApp(ctx, withAI)
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			if withAI && len(app.Providers) == 0 {
				fmt.Fprintln(out, "No LLM provider available. Running in standard mode.")
			}

			// One local user at a keyboard needs no flood protection.
			chatCfg := cfg.Chat
			chatCfg.RateLimitPerMin = -1
			uc := app.ChatUseCase(chatCfg, l)
			start, err := uc.StartSession(ctx, chat.StartInput{SessionID: cliSessionID})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "===== %s =====\n", app.Catalog.Name)
			fmt.Fprintln(out, "Type 'exit' or 'quit' to end the conversation.")
			fmt.Fprintf(out, "\nChatbot: %s\n", start.Welcome)

			return runREPL(cmd, uc, cmd.InOrStdin(), out)
		},
	}

	c.Flags().BoolVar(&withAI, "ai", false, "enable the LLM responder from llm.providers")
	return c
}

func runREPL(cmd *cobra.Command, uc chat.UseCase, in io.Reader, out io.Writer) error {
	ctx := cmd.Context()
	scanner := bufio.NewScanner(in)
	inFlow := false

	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		quitting := isQuit(text)
		if quitting {
			// Drop a half-finished reservation so the farewell is not read as a slot value.
			if inFlow {
				if _, err := uc.SendMessage(ctx, chat.SendInput{SessionID: cliSessionID, Text: "cancel"}); err != nil && !errors.Is(err, chat.ErrRateLimited) {
					return err
				}
			}
			text = "goodbye"
		}

		res, err := uc.SendMessage(ctx, chat.SendInput{SessionID: cliSessionID, Text: text})
		if errors.Is(err, chat.ErrRateLimited) {
			fmt.Fprintf(out, "\nChatbot: %s\n", msgSlowDown)
			if quitting {
				return nil
			}
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nChatbot: %s\n", res.Reply)
		inFlow = res.State != dialogue.StateIdle

		if quitting {
			return nil
		}
	}
}

func isQuit(text string) bool {
	switch strings.ToLower(text) {
	case "exit", "quit":
		return true
	}
	return false
}
