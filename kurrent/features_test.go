package kurrent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	featuresapi "go.kurrent.dev/client/api/serverfeatures"
	"go.kurrent.dev/client/kurrent/teststub"
)

func TestFeatureProbeParsesVersionAndMethods(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()
	var c = singleNodeClient(t, node)

	var server, err = c.serverInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "24.10.1", server.Version.String())
	assert.True(t, server.Supports(StreamsService, MethodBatchAppend))
	assert.True(t, server.Supports(PersistentService, MethodPersistentList))
	assert.False(t, server.Supports(StreamsService, "no-such-method"))
}

func TestFeatureProbeNormalizesCase(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	node.FeaturesFunc = func(context.Context) (*featuresapi.SupportedMethods, error) {
		return &featuresapi.SupportedMethods{
			Methods: []*featuresapi.SupportedMethod{{
				ServiceName: "Event_Store.Client.Streams.Streams",
				MethodName:  "BatchAppend",
			}},
			EventStoreServerVersion: "23.10.0",
		}, nil
	}

	var c = singleNodeClient(t, node)
	var server, err = c.serverInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, server.Supports(StreamsService, MethodBatchAppend))
}

func TestFeatureProbeToleratesUnparsableVersion(t *testing.T) {
	var node = teststub.NewNode(t)
	defer node.Cleanup()

	node.FeaturesFunc = func(context.Context) (*featuresapi.SupportedMethods, error) {
		return &featuresapi.SupportedMethods{EventStoreServerVersion: "next"}, nil
	}

	var c = singleNodeClient(t, node)
	var server, err = c.serverInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.0.0", server.Version.String())
}
