package adk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugfGatedByFlag(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	DebugEnabled = false
	Debugf("hidden %d", 1)
	assert.Zero(t, logs.Len())

	DebugEnabled = true
	defer func() { DebugEnabled = false }()
	Debugf("dispatching tool %s", "KeywordResearch")
	assert.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "KeywordResearch")
}
