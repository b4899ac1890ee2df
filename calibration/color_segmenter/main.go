package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"arpaint/capture"
	"arpaint/config"
	"arpaint/detection"
	"arpaint/pkg/debuglog"
)

var (
	deviceID   = flag.Int("device", 0, "Camera device index")
	configPath = flag.String("config", config.DefaultPath, "Path of the HSV limits file to load and save")
	mirrorMode = flag.Bool("mirror", true, "Mirror the camera image horizontally")
	fullscreen = flag.Bool("fullscreen", true, "Open the preview window fullscreen (-fullscreen=false for a normal window)")
	debugMode  = flag.Bool("debug", false, "Also write log messages to a file under "+debuglog.DefaultDir)
)

var (
	newLogger = func() *debuglog.Logger {
		return debuglog.New(*debugMode, false)
	}
	openCamera = func(id int) (capture.Source, error) {
		camera, err := capture.OpenCamera(id)
		if err != nil {
			return nil, err
		}
		return camera, nil
	}
)

func main() {
	flag.Parse()

	// highgui must stay on the main thread
	runtime.LockOSThread()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Bye!")
}

func run() error {
	logger := newLogger()
	defer logger.Close()
	debugMsgFunc = logger.Msg
	config.SetDebugFunction(logger.Msg)
	detection.SetDebugFunction(logger.Msg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	camera, err := openCamera(*deviceID)
	if err != nil {
		logger.Msg("CAPTURE_ERROR", err.Error())
		return err
	}
	defer camera.Close()

	window := capture.OpenWindow("color segmenter", *fullscreen)
	defer window.Close()

	segmenter := NewColorSegmenter(NewTrackbarControls(window), config.NewStore(*configPath), *mirrorMode)
	segmenter.LoadBounds()

	logger.Msg("MAIN", "Keys: w save, p print bounds, m mirror, q/ESC quit")
	if err := segmenter.Run(ctx, camera, window); err != nil {
		logger.Msg("MAIN_ERROR", err.Error())
	}
	return nil
}
