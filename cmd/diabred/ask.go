package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diabred/diabred/internal/chatbot"
)

func newAskCmd() *cobra.Command {
	var faqFile string

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the DIABRED FAQ assistant a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.OutOrStdout(), faqFile, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&faqFile, "faq", "", "Path to a knowledge base YAML file (default: built-in)")
	return cmd
}

func runAsk(w io.Writer, faqFile, question string) error {
	if strings.TrimSpace(question) == "" {
		return chatbot.ErrEmptyMessage
	}

	kb, err := chatbot.LoadKnowledgeBase(faqFile)
	if err != nil {
		return err
	}

	reply := chatbot.New(kb).Reply(question)
	fmt.Fprintln(w, reply.Text)
	if len(reply.Actions) > 0 {
		fmt.Fprintln(w)
		for _, a := range reply.Actions {
			fmt.Fprintf(w, "[%s] %s\n", a.Action, a.Label)
		}
	}
	return nil
}
