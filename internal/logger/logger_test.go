package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFromContext_AddsFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	ctx := WithFields(context.Background(), zap.String("wallet", "0xabc"))
	ctx = WithFields(ctx, zap.String("request_id", "r1"))
	InfoCtx(ctx, "harvested")
	ErrorCtx(ctx, errors.New("mint failed"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "harvested", entries[0].Message)
	assert.Equal(t, "0xabc", entries[0].ContextMap()["wallet"])
	assert.Equal(t, "r1", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "mint failed", entries[1].Message)
}

func TestWorkflowHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := log
	log = zap.New(core)
	t.Cleanup(func() { log = previous })

	info := WorkflowInfo{WorkflowType: "TrackTransactionConfirmation", WorkflowID: "wf-1", RunID: "run-1"}
	InfoWorkflow(info, "polling")
	ErrorWorkflow(info, nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "wf-1", entries[0].ContextMap()["workflow_id"])
	assert.Equal(t, "error occurred", entries[1].Message)
}

func TestInitialize_Debug(t *testing.T) {
	previous := log
	t.Cleanup(func() { log = previous })

	require.NoError(t, Initialize(Config{Debug: true}))
	assert.NotNil(t, Default())
}
