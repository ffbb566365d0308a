package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gyaneshwarpardhi/gacollect/internal/codec"
	"github.com/gyaneshwarpardhi/gacollect/internal/entity"
	"github.com/gyaneshwarpardhi/gacollect/internal/logging"
	"github.com/gyaneshwarpardhi/gacollect/internal/request"
	"github.com/gyaneshwarpardhi/gacollect/internal/transport"
)

func newPageviewCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "pageview",
		Short: "Track a page view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, g, request.PageView{})
		},
	}
}

func newEventCmd(g *globalFlags) *cobra.Command {
	var (
		category, action, label string
		value                   int
	)
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Track an event",
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := entity.NewEvent(category, action)
			ev.Label = label
			if value >= 0 {
				if err := ev.SetValue(value); err != nil {
					return err
				}
			}
			return run(cmd, g, request.EventHit{Event: ev})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "event category (required)")
	cmd.Flags().StringVar(&action, "action", "", "event action (required)")
	cmd.Flags().StringVar(&label, "label", "", "event label")
	cmd.Flags().IntVar(&value, "value", -1, "event value")
	return cmd
}

func newExceptionCmd(g *globalFlags) *cobra.Command {
	var (
		description string
		fatal       bool
	)
	cmd := &cobra.Command{
		Use:   "exception",
		Short: "Track an exception",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, g, request.ExceptionHit{Exception: entity.NewException(description, fatal)})
		},
	}
	cmd.Flags().StringVar(&description, "description", "", "exception description")
	cmd.Flags().BoolVar(&fatal, "fatal", false, "whether the exception was fatal")
	return cmd
}

func run(cmd *cobra.Command, g *globalFlags, hit request.Hit) error {
	file, err := g.collect()
	if err != nil {
		return err
	}
	closeLog, err := logging.Setup(file.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	visitor, err := g.visitor()
	if err != nil {
		return err
	}
	if tags, err := codec.ParseLocale(visitor.Locale); err == nil && len(tags) > 0 {
		visitor.Locale = tags[0]
	}
	session, err := g.session()
	if err != nil {
		return err
	}
	page, err := g.page()
	if err != nil {
		return err
	}

	tr := g.tracker(file)
	p, err := tr.Build(hit, page, session, visitor)
	if err != nil {
		return err
	}
	query := p.Encode()

	resp, err := tr.Send(cmd.Context(), p, session)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "hit:     %s\n", hit.Type())
	fmt.Fprintf(out, "query:   %s\n", query)
	if resp == nil {
		fmt.Fprintln(out, "sent:    no (simulated)")
	} else {
		resp.Body.Close()
		fmt.Fprintf(out, "sent:    %s %s\n", transport.Method(query), resp.Status)
	}
	fmt.Fprintf(out, "session: %s\n", session.Serialize(file.Tracker.HostName))
	return nil
}
