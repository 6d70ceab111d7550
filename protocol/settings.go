package protocol

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Credentials is a username / password pair sent as a basic Authorization
// header. Credentials are threaded per-call, defaulting from ClientSettings.
type Credentials struct {
	Username string
	Password string
}

// Validate returns an error if the Credentials are not well-formed.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return NewValidationError("expected Username")
	}
	return nil
}

// AuthorizationHeader renders the Credentials as a basic Authorization value.
func (c Credentials) AuthorizationHeader() string {
	return "Basic " + base64.StdEncoding.EncodeToString(
		[]byte(c.Username+":"+c.Password))
}

// ClientSettings parameterize a Client. They are produced by parsing a
// connection string and are immutable thereafter.
type ClientSettings struct {
	// DNSDiscover indicates the single host is a DNS name whose A records
	// enumerate the cluster's seed nodes.
	DNSDiscover bool
	// Hosts are the ordered seed endpoints.
	Hosts []Endpoint
	// TLS enables transport security. Default true.
	TLS bool
	// TLSVerifyCert requires verification of the server certificate chain.
	// Default true.
	TLSVerifyCert bool
	// TLSCAFile is an optional path of a PEM certificate authority bundle.
	TLSCAFile string
	// DefaultCredentials are applied to calls without an operation override.
	DefaultCredentials *Credentials
	// ConnectionName identifies this client to the server. If empty, a name
	// is generated at client construction.
	ConnectionName string
	// NodePreference selects the member role to which calls dispatch.
	NodePreference NodePreference
	// MaxDiscoverAttempts bounds discovery passes before failing. Default 10.
	MaxDiscoverAttempts uint32
	// DiscoveryInterval is slept between failed discovery passes. Default 100ms.
	DiscoveryInterval time.Duration
	// GossipTimeout bounds each candidate gossip read. Default 5s.
	GossipTimeout time.Duration
	// KeepAliveInterval is the HTTP/2 ping cadence. Default 10s.
	KeepAliveInterval time.Duration
	// KeepAliveTimeout fails the connection when a ping goes unacknowledged.
	// Default 10s.
	KeepAliveTimeout time.Duration
	// DefaultDeadline applies to unary and batch calls. It is never applied
	// to open-ended streaming reads or subscriptions. Zero means none.
	DefaultDeadline time.Duration
	// ThrowOnAppendFailure surfaces WrongExpectedVersion as an error when
	// true (the default), and as data on the append result when false.
	ThrowOnAppendFailure bool
}

// DefaultSettings returns ClientSettings with all defaults applied.
func DefaultSettings() ClientSettings {
	return ClientSettings{
		TLS:                  true,
		TLSVerifyCert:        true,
		NodePreference:       NodePreference_Leader,
		MaxDiscoverAttempts:  10,
		DiscoveryInterval:    100 * time.Millisecond,
		GossipTimeout:        5 * time.Second,
		KeepAliveInterval:    10 * time.Second,
		KeepAliveTimeout:     10 * time.Second,
		ThrowOnAppendFailure: true,
	}
}

// Validate returns an error if the ClientSettings are not well-formed.
func (s ClientSettings) Validate() error {
	if len(s.Hosts) == 0 {
		return NewValidationError("expected at least one host")
	}
	for i, h := range s.Hosts {
		if err := h.Validate(); err != nil {
			return ExtendContext(err, "Hosts[%d]", i)
		}
	}
	if s.DNSDiscover && len(s.Hosts) != 1 {
		return NewValidationError(
			"dns discovery requires a single host (got %d)", len(s.Hosts))
	}
	if s.DefaultCredentials != nil {
		if err := s.DefaultCredentials.Validate(); err != nil {
			return ExtendContext(err, "DefaultCredentials")
		}
	}
	if s.MaxDiscoverAttempts == 0 {
		return NewValidationError("invalid MaxDiscoverAttempts (expected > 0)")
	}
	return nil
}

// IsClusterMode returns whether discovery consults gossip: multiple seed
// hosts, or DNS discovery of seeds.
func (s ClientSettings) IsClusterMode() bool {
	return s.DNSDiscover || len(s.Hosts) > 1
}

// String renders the settings as a connection string. Parsing a rendered
// string yields equal settings for every option the renderer preserves.
func (s ClientSettings) String() string {
	var b strings.Builder

	if s.DNSDiscover {
		b.WriteString("kurrentdb+discover://")
	} else {
		b.WriteString("kurrentdb://")
	}
	if s.DefaultCredentials != nil {
		b.WriteString(url.QueryEscape(s.DefaultCredentials.Username))
		b.WriteByte(':')
		b.WriteString(url.QueryEscape(s.DefaultCredentials.Password))
		b.WriteByte('@')
	}
	for i, h := range s.Hosts {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteString(h.String())
	}

	var defaults = DefaultSettings()
	var query []string
	var add = func(key, value string) { query = append(query, key+"="+value) }

	if s.TLS != defaults.TLS {
		add("tls", fmt.Sprintf("%t", s.TLS))
	}
	if s.TLSVerifyCert != defaults.TLSVerifyCert {
		add("tlsVerifyCert", fmt.Sprintf("%t", s.TLSVerifyCert))
	}
	if s.TLSCAFile != "" {
		add("tlsCAFile", url.QueryEscape(s.TLSCAFile))
	}
	if s.NodePreference != defaults.NodePreference {
		add("nodePreference", s.NodePreference.String())
	}
	if s.MaxDiscoverAttempts != defaults.MaxDiscoverAttempts {
		add("maxDiscoverAttempts", fmt.Sprintf("%d", s.MaxDiscoverAttempts))
	}
	if s.DiscoveryInterval != defaults.DiscoveryInterval {
		add("discoveryInterval", fmt.Sprintf("%d", s.DiscoveryInterval/time.Millisecond))
	}
	if s.GossipTimeout != defaults.GossipTimeout {
		add("gossipTimeout", fmt.Sprintf("%d", s.GossipTimeout/time.Millisecond))
	}
	if s.KeepAliveInterval != defaults.KeepAliveInterval {
		add("keepAliveInterval", fmt.Sprintf("%d", s.KeepAliveInterval/time.Millisecond))
	}
	if s.KeepAliveTimeout != defaults.KeepAliveTimeout {
		add("keepAliveTimeout", fmt.Sprintf("%d", s.KeepAliveTimeout/time.Millisecond))
	}
	if s.DefaultDeadline != 0 {
		add("defaultDeadline", fmt.Sprintf("%d", s.DefaultDeadline/time.Millisecond))
	}
	if s.ThrowOnAppendFailure != defaults.ThrowOnAppendFailure {
		add("throwOnAppendFailure", fmt.Sprintf("%t", s.ThrowOnAppendFailure))
	}
	if s.ConnectionName != "" {
		add("connectionName", url.QueryEscape(s.ConnectionName))
	}

	if len(query) != 0 {
		b.WriteString("/?")
		b.WriteString(strings.Join(query, "&"))
	}
	return b.String()
}
