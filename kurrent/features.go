package kurrent

import (
	"context"
	"strings"
	"time"

	version "github.com/hashicorp/go-version"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	serverfeatures "go.kurrent.dev/client/api/serverfeatures"
	"go.kurrent.dev/client/api/shared"
	"go.kurrent.dev/client/protocol"
)

// ServerInfo is the probed capability set and version of a connected node.
// It is established once per channel rebuild; capability checks don't
// re-probe.
type ServerInfo struct {
	// Version of the server, or 0.0.0 if the probe is unsupported.
	Version *version.Version

	methods map[methodKey]struct{}
}

type methodKey struct {
	service string
	method  string
}

// Supports returns whether the server advertises (service, method).
func (si *ServerInfo) Supports(service, method string) bool {
	var _, ok = si.methods[methodKey{service: service, method: method}]
	return ok
}

// Service and method names of gated capabilities.
const (
	StreamsService               = "event_store.client.streams.streams"
	PersistentService            = "event_store.client.persistent_subscriptions.persistentsubscriptions"
	MethodBatchAppend            = "batchappend"
	MethodPersistentGetInfo      = "getinfo"
	MethodPersistentReplayParked = "replayparked"
	MethodPersistentList         = "list"
)

// probeFeatures issues the one-shot capability probe against a fresh
// channel. Servers without the probe RPC get the minimum-known capability
// set and version 0.0.0.
func probeFeatures(ctx context.Context, conn *grpc.ClientConn, timeout time.Duration) (*ServerInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var resp, err = serverfeatures.NewServerFeaturesClient(conn).
		GetSupportedMethods(ctx, &shared.Empty{})

	if status.Code(err) == codes.Unimplemented || status.Code(err) == codes.NotFound {
		return baselineServerInfo(), nil
	} else if err != nil {
		return nil, &protocol.ConnectionError{Reason: "feature probe", Err: err}
	}

	var si = &ServerInfo{methods: make(map[methodKey]struct{}, len(resp.Methods))}
	for _, m := range resp.Methods {
		si.methods[methodKey{
			service: strings.ToLower(m.ServiceName),
			method:  strings.ToLower(m.MethodName),
		}] = struct{}{}
	}

	if si.Version, err = version.NewVersion(resp.EventStoreServerVersion); err != nil {
		si.Version = zeroVersion
	}
	return si, nil
}

// baselineServerInfo is the minimum capability set assumed of servers which
// predate the feature probe.
func baselineServerInfo() *ServerInfo {
	var si = &ServerInfo{
		Version: zeroVersion,
		methods: make(map[methodKey]struct{}),
	}
	for _, m := range []methodKey{
		{StreamsService, "read"},
		{StreamsService, "append"},
		{StreamsService, "delete"},
		{StreamsService, "tombstone"},
		{PersistentService, "create"},
		{PersistentService, "update"},
		{PersistentService, "delete"},
		{PersistentService, "read"},
	} {
		si.methods[m] = struct{}{}
	}
	return si
}

var zeroVersion = version.Must(version.NewVersion("0.0.0"))
