package metrics

import "github.com/prometheus/client_golang/prometheus"

// Keys for client metrics.
const (
	Fail = "fail"
	Ok   = "ok"
)

// Collectors for client operations.
var (
	AppendedEventsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kurrent_appended_events_total",
		Help: "Cumulative number of events appended.",
	})
	AppendedBytesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kurrent_appended_bytes_total",
		Help: "Cumulative number of event data bytes appended.",
	})
	ReadEventsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kurrent_read_events_total",
		Help: "Cumulative number of events read.",
	})
	DiscoveryPassesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kurrent_discovery_passes_total",
		Help: "Cumulative number of discovery passes, by outcome.",
	}, []string{"status"})
	GossipReadsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kurrent_gossip_reads_total",
		Help: "Cumulative number of candidate gossip reads, by outcome.",
	}, []string{"status"})
	SubscriptionResubscribesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kurrent_subscription_resubscribes_total",
		Help: "Cumulative number of automatic subscription re-subscriptions.",
	})
	ChannelRebuildsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kurrent_channel_rebuilds_total",
		Help: "Cumulative number of transport channel rebuilds.",
	})
)
