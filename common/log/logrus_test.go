package log

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestTaggedHook(t *testing.T) {
	var output bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&output)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	logger.AddHook(new(TaggedHook))

	logger.WithField("tag", "session").Info("session: client handle opened")
	require.Contains(t, output.String(), `msg="[session]: client handle opened"`)
	require.NotContains(t, output.String(), "tag=")
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	require.Error(t, Setup(Options{Level: "loud"}))
}

func TestSetupLevel(t *testing.T) {
	previous := logrus.GetLevel()
	defer logrus.SetLevel(previous)

	require.NoError(t, Setup(Options{Level: "debug", DisableColor: true}))
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	require.Equal(t, "session", NewLogger("session").Data["tag"])
}
