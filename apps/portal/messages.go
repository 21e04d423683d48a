package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func (cli *commandLine) listConversations() error {
	conversations, err := cli.messaging.Conversations(context.Background())
	if err != nil {
		return err
	}
	for _, c := range conversations {
		fmt.Printf("%-10s %-25s %s\n", c.ID, c.FirstName+" "+c.LastName, c.Role)
	}
	return nil
}

func (cli *commandLine) showChat(args []string) error {
	cmd := newFlagSet("chat")
	with := cmd.String("with", "", "The other user's id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *with == "" {
		cmd.Usage()
		return errHelp
	}

	claims, err := cli.session.Current()
	if err != nil {
		return err
	}
	messages, err := cli.messaging.History(context.Background(), *with)
	if err != nil {
		return err
	}
	for _, m := range messages {
		who := "them"
		if m.FromMe(claims.UserID) {
			who = "me"
		}
		fmt.Printf("[%s] %-4s %s\n", m.CreatedAt.Format("15:04"), who, m.Body)
	}
	return nil
}

func (cli *commandLine) sendMessage(args []string) error {
	cmd := newFlagSet("send")
	to := cmd.String("to", "", "The receiver's id")
	body := cmd.String("message", "", "The message text")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *to == "" || *body == "" {
		cmd.Usage()
		return errHelp
	}

	msg, err := cli.messaging.Send(context.Background(), *to, *body)
	if err != nil {
		return err
	}
	cli.notifier.Success("Sent " + msg.ID)
	return nil
}

// followNotifications holds the payment push channel open and prints events
// as they arrive, until interrupted.
func (cli *commandLine) followNotifications() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		cancel()
	}()

	fmt.Println("listening for payment notifications (Ctrl-C to stop)")
	done := make(chan error, 1)
	go func() { done <- cli.push.Listen(ctx) }()

	// the feed is newest-first; print what arrived since the last tick
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	printed := 0
	for {
		select {
		case err := <-done:
			return err
		case <-ticker.C:
			items := cli.feed.Items()
			for i := len(items) - printed - 1; i >= 0; i-- {
				n := items[i]
				fmt.Printf("[%s] payment received: %.2f for %s (ref %s)\n",
					n.At.Format("15:04:05"), n.Amount, n.StudentID, n.Reference)
			}
			printed = len(items)
		}
	}
}
