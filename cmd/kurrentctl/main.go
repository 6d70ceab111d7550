// kurrentctl is a tool for interacting with a KurrentDB node or cluster:
// appending and reading events, driving subscriptions, and managing
// persistent subscription groups, projections, and users.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"

	"go.kurrent.dev/client/kurrent"
	"go.kurrent.dev/client/metrics"
)

const profileFilename = "kurrentctl.yaml"

// LogConfig configures handling of application log events.
type LogConfig struct {
	Level  string `long:"level" env:"LEVEL" default:"warn" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" choice:"fatal" description:"Logging level"`
	Format string `long:"format" env:"FORMAT" default:"text" choice:"json" choice:"text" choice:"color" description:"Logging output format"`
}

// BaseConfig is configuration common to all kurrentctl commands.
type BaseConfig struct {
	Connection string    `long:"connection" short:"c" env:"KURRENT_CONNECTION" default:"esdb://localhost:2113" description:"Connection string of the node or cluster"`
	Profile    string    `long:"profile" env:"KURRENT_PROFILE" description:"Named connection profile of the kurrentctl.yaml config file"`
	Log        LogConfig `group:"Logging" namespace:"log" env-namespace:"LOG"`
}

var baseCfg = new(BaseConfig)

// profileFile is the schema of the optional kurrentctl.yaml config file:
// a mapping of profile name to connection string.
type profileFile struct {
	Profiles map[string]string `yaml:"profiles"`
}

// startup initializes logging and returns a Client of the configured
// connection.
func startup() *kurrent.Client {
	initLog(baseCfg.Log)

	var connection = baseCfg.Connection
	if baseCfg.Profile != "" {
		connection = resolveProfile(baseCfg.Profile)
	}

	var client, err = kurrent.Dial(connection)
	mustOK(err, "failed to build client")
	return client
}

func initLog(cfg LogConfig) {
	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else if cfg.Format == "text" {
		log.SetFormatter(&log.TextFormatter{})
	} else if cfg.Format == "color" {
		log.SetFormatter(&log.TextFormatter{ForceColors: true})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err != nil {
		log.WithField("err", err).Fatal("unrecognized log level")
	} else {
		log.SetLevel(lvl)
	}
}

func resolveProfile(name string) string {
	var paths = []string{profileFilename}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "kurrentctl", profileFilename))
	}

	for _, path := range paths {
		var buffer, err = os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		mustOK(err, "failed to read config file")

		var file profileFile
		mustOK(yaml.UnmarshalStrict(buffer, &file), "failed to parse config file")

		if connection, ok := file.Profiles[name]; ok {
			return connection
		}
	}
	log.WithField("profile", name).Fatal("profile not found")
	panic("not reached")
}

// mustOK panics via log.Fatal on error.
func mustOK(err error, msg string, fields ...log.Fields) {
	if err == nil {
		return
	}
	var f = log.Fields{"err": err}
	for _, extra := range fields {
		for k, v := range extra {
			f[k] = v
		}
	}
	log.WithFields(f).Fatal(msg)
}

func mustAddCmd(parser *flags.Parser, name, short, long string, cfg interface{}) {
	var _, err = parser.AddCommand(name, short, long, cfg)
	mustOK(err, "failed to add command")
}

func main() {
	prometheus.MustRegister(
		metrics.AppendedEventsTotal,
		metrics.AppendedBytesTotal,
		metrics.ReadEventsTotal,
		metrics.DiscoveryPassesTotal,
		metrics.GossipReadsTotal,
		metrics.SubscriptionResubscribesTotal,
		metrics.ChannelRebuildsTotal,
	)

	var parser = flags.NewParser(baseCfg, flags.Default)
	parser.LongDescription = `kurrentctl is a tool for interacting with a KurrentDB node or cluster.

See --help pages of each sub-command for documentation and usage examples.
Connection profiles may be kept in a '` + profileFilename + `' file in the working
directory or under '~/.config/kurrentctl/', and selected with --profile.
`

	addStreamCommands(parser)
	addPersistentCommands(parser)
	addProjectionCommands(parser)
	addUserCommands(parser)
	addOperationCommands(parser)

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}

func runContext() context.Context { return context.Background() }
