package main

import (
	"fmt"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"
	"github.com/olekukonko/tablewriter"

	"go.kurrent.dev/client/kurrent"
	"go.kurrent.dev/client/protocol"
)

func addPersistentCommands(parser *flags.Parser) {
	mustAddCmd(parser, "psub-list", "List persistent subscription groups", `
List persistent subscription groups of a stream, or of the whole server.
`, &cmdPsubList{})

	mustAddCmd(parser, "psub-create", "Create a persistent subscription group", `
Create a persistent subscription group on a stream.
`, &cmdPsubCreate{})

	mustAddCmd(parser, "psub-delete", "Delete a persistent subscription group", `
Delete a persistent subscription group.
`, &cmdPsubDelete{})

	mustAddCmd(parser, "psub-replay-parked", "Replay a group's parked messages", `
Replay the parked (dead-lettered) messages of a persistent subscription group.
`, &cmdPsubReplay{})
}

type cmdPsubList struct {
	Stream string `long:"stream" short:"s" description:"Stream whose groups to list. Lists all groups when empty"`
}

func (cmd *cmdPsubList) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var infos, err = client.ListPersistentSubscriptions(runContext(), cmd.Stream,
		kurrent.OperationOptions{})
	if err != nil {
		return err
	}

	var table = tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Source", "Group", "Status", "Consumers", "In-Flight", "Parked"})

	for _, info := range infos {
		table.Append([]string{
			info.EventSource,
			info.GroupName,
			info.Status,
			fmt.Sprintf("%d", len(info.Connections)),
			fmt.Sprintf("%d", info.TotalInFlightMessages),
			fmt.Sprintf("%d", info.ParkedMessageCount),
		})
	}
	table.Render()
	return nil
}

type cmdPsubCreate struct {
	Stream string `long:"stream" short:"s" required:"true" description:"Stream of the group"`
	Group  string `long:"group" short:"g" required:"true" description:"Name of the group"`
	From   uint64 `long:"from" description:"Revision after which the group starts"`
}

func (cmd *cmdPsubCreate) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var opts = kurrent.PersistentSubscriptionOptions{}
	if cmd.From != 0 {
		opts.From = protocol.Revision(cmd.From)
	}
	return client.CreatePersistentSubscription(runContext(), cmd.Stream, cmd.Group, opts)
}

type cmdPsubDelete struct {
	Stream string `long:"stream" short:"s" description:"Stream of the group. Empty for a $all group"`
	Group  string `long:"group" short:"g" required:"true" description:"Name of the group"`
}

func (cmd *cmdPsubDelete) Execute([]string) error {
	var client = startup()
	defer client.Close()

	return client.DeletePersistentSubscription(runContext(), cmd.Stream, cmd.Group,
		kurrent.OperationOptions{})
}

type cmdPsubReplay struct {
	Stream string `long:"stream" short:"s" description:"Stream of the group. Empty for a $all group"`
	Group  string `long:"group" short:"g" required:"true" description:"Name of the group"`
	StopAt int64  `long:"stop-at" description:"Bound of replayed messages. Zero replays all"`
}

func (cmd *cmdPsubReplay) Execute([]string) error {
	var client = startup()
	defer client.Close()

	return client.ReplayParkedMessages(runContext(), cmd.Stream, cmd.Group,
		kurrent.ReplayParkedOptions{StopAt: cmd.StopAt})
}

func addProjectionCommands(parser *flags.Parser) {
	mustAddCmd(parser, "projections-list", "List continuous projections", `
List the status and progress of all continuous projections.
`, &cmdProjectionsList{})

	mustAddCmd(parser, "projections-enable", "Enable a projection", "",
		&cmdProjectionToggle{enable: true})
	mustAddCmd(parser, "projections-disable", "Disable a projection", "",
		&cmdProjectionToggle{enable: false})
	mustAddCmd(parser, "projections-reset", "Reset a projection", `
Rewind a projection to the beginning of its source streams.
`, &cmdProjectionReset{})
}

type cmdProjectionsList struct{}

func (cmd *cmdProjectionsList) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var details, err = client.ListContinuousProjections(runContext(), kurrent.OperationOptions{})
	if err != nil {
		return err
	}

	var table = tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Name", "Status", "Mode", "Progress", "Position"})

	for _, d := range details {
		table.Append([]string{
			d.Name,
			d.Status,
			d.Mode,
			fmt.Sprintf("%.1f%%", d.Progress),
			d.Position,
		})
	}
	table.Render()
	return nil
}

type cmdProjectionToggle struct {
	Name   string `long:"name" short:"n" required:"true" description:"Name of the projection"`
	enable bool
}

func (cmd *cmdProjectionToggle) Execute([]string) error {
	var client = startup()
	defer client.Close()

	if cmd.enable {
		return client.EnableProjection(runContext(), cmd.Name, kurrent.OperationOptions{})
	}
	return client.DisableProjection(runContext(), cmd.Name, kurrent.OperationOptions{})
}

type cmdProjectionReset struct {
	Name string `long:"name" short:"n" required:"true" description:"Name of the projection"`
}

func (cmd *cmdProjectionReset) Execute([]string) error {
	var client = startup()
	defer client.Close()

	return client.ResetProjection(runContext(), cmd.Name, kurrent.OperationOptions{})
}

func addUserCommands(parser *flags.Parser) {
	mustAddCmd(parser, "users-list", "List user accounts", "", &cmdUsersList{})
	mustAddCmd(parser, "users-create", "Create a user account", "", &cmdUsersCreate{})
	mustAddCmd(parser, "users-delete", "Delete a user account", "", &cmdUsersDelete{})
}

type cmdUsersList struct{}

func (cmd *cmdUsersList) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var users, err = client.ListUsers(runContext(), kurrent.OperationOptions{})
	if err != nil {
		return err
	}

	var table = tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Login", "Full Name", "Groups", "Disabled", "Updated"})

	for _, u := range users {
		var updated string
		if !u.LastUpdated.IsZero() {
			updated = humanize.Time(u.LastUpdated)
		}
		table.Append([]string{
			u.LoginName,
			u.FullName,
			strings.Join(u.Groups, ","),
			fmt.Sprintf("%t", u.Disabled),
			updated,
		})
	}
	table.Render()
	return nil
}

type cmdUsersCreate struct {
	Login    string   `long:"login" required:"true" description:"Login name"`
	Password string   `long:"password" required:"true" description:"Password"`
	FullName string   `long:"full-name" description:"Full name"`
	Groups   []string `long:"group" description:"Group memberships, eg --group ops --group $admins"`
}

func (cmd *cmdUsersCreate) Execute([]string) error {
	var client = startup()
	defer client.Close()

	return client.CreateUser(runContext(), cmd.Login, cmd.Password, cmd.FullName,
		cmd.Groups, kurrent.OperationOptions{})
}

type cmdUsersDelete struct {
	Login string `long:"login" required:"true" description:"Login name"`
}

func (cmd *cmdUsersDelete) Execute([]string) error {
	var client = startup()
	defer client.Close()

	return client.DeleteUser(runContext(), cmd.Login, kurrent.OperationOptions{})
}

func addOperationCommands(parser *flags.Parser) {
	mustAddCmd(parser, "scavenge", "Start a scavenge on the connected node", "", &cmdScavenge{})
	mustAddCmd(parser, "merge-indexes", "Merge indexes of the connected node", "", &cmdMergeIndexes{})
	mustAddCmd(parser, "resign-node", "Ask the connected leader to resign", "", &cmdResignNode{})
	mustAddCmd(parser, "stats", "Stream node statistics", `
Stream periodic statistic snapshots of the connected node until interrupted.
`, &cmdStats{})
}

type cmdScavenge struct {
	Threads   int32 `long:"threads" default:"1" description:"Scavenge thread count"`
	FromChunk int32 `long:"from-chunk" description:"Chunk number to start from"`
}

func (cmd *cmdScavenge) Execute([]string) error {
	var client = startup()
	defer client.Close()

	var result, err = client.StartScavenge(runContext(), cmd.Threads, cmd.FromChunk,
		kurrent.OperationOptions{})
	if err != nil {
		return err
	}
	fmt.Printf("scavenge %s: %s\n", result.ScavengeID, result.Status)
	return nil
}

type cmdMergeIndexes struct{}

func (cmd *cmdMergeIndexes) Execute([]string) error {
	var client = startup()
	defer client.Close()
	return client.MergeIndexes(runContext(), kurrent.OperationOptions{})
}

type cmdResignNode struct{}

func (cmd *cmdResignNode) Execute([]string) error {
	var client = startup()
	defer client.Close()
	return client.ResignNode(runContext(), kurrent.OperationOptions{})
}

type cmdStats struct {
	Interval uint64 `long:"interval" default:"5000" description:"Refresh interval in milliseconds"`
}

func (cmd *cmdStats) Execute([]string) error {
	var client = startup()
	defer client.Close()

	return client.ReadStats(runContext(), cmd.Interval, func(stats map[string]string) error {
		for key, value := range stats {
			fmt.Printf("%s\t%s\n", key, value)
		}
		fmt.Println()
		return nil
	}, kurrent.OperationOptions{})
}
