package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"

	"go.kurrent.dev/client/kurrent"
	"go.kurrent.dev/client/protocol"
)

func addStreamCommands(parser *flags.Parser) {
	mustAddCmd(parser, "append", "Append events to a stream", `
Append events to a stream. Events are read from stdin as a JSON document per
line, of shape {"type": "...", "data": {...}, "metadata": {...}}.

Examples:

Append a single event with an exact expected revision:
>    echo '{"type": "order-placed", "data": {"id": 1}}' | kurrentctl append --stream orders --expect 41
`, &cmdAppend{})

	mustAddCmd(parser, "read", "Read events of a stream or of $all", `
Read a range of events of a stream, or of the global $all order when no
--stream is given.
`, &cmdRead{})

	mustAddCmd(parser, "subscribe", "Subscribe to a stream or to $all", `
Open a catch-up subscription to a stream (or $all), replay history from the
requested position, and follow live events until interrupted.
`, &cmdSubscribe{})

	mustAddCmd(parser, "delete", "Delete a stream", `
Soft-delete a stream, or hard-delete (tombstone) it with --tombstone.
`, &cmdDelete{})
}

type eventDocument struct {
	Type     string          `json:"type"`
	Data     json.RawMessage `json:"data"`
	Metadata json.RawMessage `json:"metadata"`
}

type cmdAppend struct {
	Stream string `long:"stream" short:"s" required:"true" description:"Stream to append to"`
	Expect string `long:"expect" default:"any" description:"Expected revision: any, no-stream, stream-exists, or an exact number"`
}

func (cmd *cmdAppend) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var expected, err = parseExpect(cmd.Expect)
	if err != nil {
		return err
	}

	var events []protocol.EventData
	var scanner = bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var doc eventDocument
		if err := json.Unmarshal(scanner.Bytes(), &doc); err != nil {
			return fmt.Errorf("parsing event document: %w", err)
		}
		events = append(events, protocol.EventData{
			Type:        doc.Type,
			ContentType: "application/json",
			Data:        doc.Data,
			Metadata:    doc.Metadata,
		})
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	result, err := client.AppendToStream(runContext(), cmd.Stream,
		kurrent.AppendOptions{ExpectedRevision: expected}, events...)
	if err != nil {
		return err
	}

	fmt.Printf("appended %d event(s); stream is now at revision %s\n",
		len(events), result.NextExpectedRevision)
	return nil
}

type cmdRead struct {
	Stream    string `long:"stream" short:"s" description:"Stream to read. Reads $all when empty"`
	From      uint64 `long:"from" description:"Revision (or $all commit position) to read from"`
	Count     uint64 `long:"count" short:"n" default:"20" description:"Maximum number of events to read"`
	Backwards bool   `long:"backwards" description:"Read backwards from the end"`
	Links     bool   `long:"resolve-links" description:"Resolve link events to their targets"`
}

func (cmd *cmdRead) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var direction = protocol.Direction_Forwards
	if cmd.Backwards {
		direction = protocol.Direction_Backwards
	}

	var rs *kurrent.ReadStream
	var err error

	if cmd.Stream != "" {
		var from = protocol.Revision(cmd.From)
		if cmd.Backwards && cmd.From == 0 {
			from = protocol.End()
		}
		rs, err = client.ReadStream(runContext(), cmd.Stream, kurrent.ReadStreamOptions{
			Direction:      direction,
			From:           from,
			MaxCount:       cmd.Count,
			ResolveLinkTos: cmd.Links,
		})
	} else {
		var from = protocol.Position{Commit: cmd.From, Prepare: cmd.From}
		if cmd.Backwards && cmd.From == 0 {
			from = protocol.EndPosition
		}
		rs, err = client.ReadAll(runContext(), kurrent.ReadAllOptions{
			Direction:      direction,
			From:           from,
			MaxCount:       cmd.Count,
			ResolveLinkTos: cmd.Links,
		})
	}
	if err != nil {
		return err
	}
	defer rs.Close()

	for {
		var event, err = rs.Recv()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		printEvent(event)
	}
}

type cmdSubscribe struct {
	Stream string `long:"stream" short:"s" description:"Stream to subscribe to. Subscribes to $all when empty"`
	Live   bool   `long:"live" description:"Skip history and deliver live events only"`
	Links  bool   `long:"resolve-links" description:"Resolve link events to their targets"`
	Type   string `long:"type-prefix" description:"Only deliver $all events whose type has this prefix"`
}

func (cmd *cmdSubscribe) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var deliver = func(sub *kurrent.Subscription) error {
		for {
			var event, err = sub.Recv()
			if err != nil {
				return err
			}
			switch {
			case event.Confirmed != nil:
				fmt.Printf("# subscription confirmed (%s)\n", event.Confirmed.SubscriptionID)
			case event.CaughtUp:
				fmt.Println("# caught up; now live")
			case event.FellBehind:
				fmt.Println("# fell behind; catching up")
			case event.Checkpoint != nil:
				fmt.Printf("# checkpoint %s\n", event.Checkpoint)
			case event.Event != nil:
				printEvent(*event.Event)
			}
		}
	}

	if cmd.Stream != "" {
		var from = protocol.Start()
		if cmd.Live {
			from = protocol.End()
		}
		var sub, err = client.SubscribeToStream(runContext(), cmd.Stream,
			kurrent.SubscribeToStreamOptions{From: from, ResolveLinkTos: cmd.Links})
		if err != nil {
			return err
		}
		defer sub.Close()
		return deliver(sub)
	}

	var opts = kurrent.SubscribeToAllOptions{
		From:           protocol.StartPosition,
		ResolveLinkTos: cmd.Links,
	}
	if cmd.Live {
		opts.From = protocol.EndPosition
	}
	if cmd.Type != "" {
		opts.Filter = &protocol.SubscriptionFilter{Prefixes: []string{cmd.Type}}
	}

	var sub, err = client.SubscribeToAll(runContext(), opts)
	if err != nil {
		return err
	}
	defer sub.Close()
	return deliver(sub)
}

type cmdDelete struct {
	Stream    string `long:"stream" short:"s" required:"true" description:"Stream to delete"`
	Expect    string `long:"expect" default:"any" description:"Expected revision: any, no-stream, stream-exists, or an exact number"`
	Tombstone bool   `long:"tombstone" description:"Hard-delete: the stream may never be re-created"`
}

func (cmd *cmdDelete) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var expected, err = parseExpect(cmd.Expect)
	if err != nil {
		return err
	}
	var opts = kurrent.DeleteOptions{ExpectedRevision: expected}

	if cmd.Tombstone {
		_, err = client.TombstoneStream(runContext(), cmd.Stream, opts)
	} else {
		_, err = client.DeleteStream(runContext(), cmd.Stream, opts)
	}
	return err
}

func printEvent(event protocol.ResolvedEvent) {
	var original = event.OriginalEvent()
	if original == nil {
		return
	}
	fmt.Printf("%s@%d %s (%s, %s)\n\t%s\n",
		original.Stream,
		original.StreamRevision,
		original.Type,
		original.ID,
		humanize.Bytes(uint64(len(original.Data))),
		original.Data,
	)
}

func parseExpect(s string) (protocol.ExpectedRevision, error) {
	switch s {
	case "any":
		return protocol.Any(), nil
	case "no-stream":
		return protocol.NoStream(), nil
	case "stream-exists":
		return protocol.StreamExists(), nil
	default:
		var revision uint64
		if _, err := fmt.Sscanf(s, "%d", &revision); err != nil {
			return protocol.Any(), fmt.Errorf(
				"invalid --expect %q (expected any, no-stream, stream-exists, or a number)", s)
		}
		return protocol.Exact(revision), nil
	}
}
