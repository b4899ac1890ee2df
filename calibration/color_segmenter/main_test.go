package main

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"arpaint/capture"
	"arpaint/pkg/debuglog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReportsCameraFailure(t *testing.T) {
	var buf bytes.Buffer
	errNoDevice := errors.New("capture device 3 is not available")

	origLogger, origCamera := newLogger, openCamera
	t.Cleanup(func() { newLogger, openCamera = origLogger, origCamera })

	newLogger = func() *debuglog.Logger { return debuglog.NewWithWriter(&buf, false) }
	openCamera = func(id int) (capture.Source, error) { return nil, errNoDevice }

	assert.ErrorIs(t, run(), errNoDevice)
	assert.Contains(t, buf.String(), "[CAPTURE_ERROR] capture device 3 is not available")
}

func TestFlagDefaults(t *testing.T) {
	cases := map[string]string{
		"fullscreen": "true",
		"mirror":     "true",
		"device":     "0",
		"config":     "limits.json",
	}
	for name, want := range cases {
		f := flag.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, want, f.DefValue, name)
	}
}
