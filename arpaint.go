package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"arpaint/capture"
	"arpaint/config"
	"arpaint/detection"
	"arpaint/overlay"
	"arpaint/pkg/debuglog"
	"arpaint/session"
	"arpaint/tracking"
)

const windowName = "AR paint"

var (
	// Command-line flags
	deviceID     = flag.Int("device", 0, "Camera device index")
	configPath   = flag.String("config", config.DefaultPath, "HSV limits file written by color_segmenter")
	outDir       = flag.String("out", overlay.DefaultSnapshotDir, "Directory for saved drawings")
	outExt       = flag.String("ext", overlay.DefaultSnapshotExt, "Image format extension for saved drawings\n\t\tExample: -ext=jpg")
	mirrorMode   = flag.Bool("mirror", true, "Mirror the camera image horizontally (toggle at runtime with m)")
	fullscreen   = flag.Bool("fullscreen", false, "Open the drawing window fullscreen")
	debugMode    = flag.Bool("debug", false, "Also write log messages to a session file under "+debuglog.DefaultDir)
	debugVerbose = flag.Bool("debug-verbose", false, "Enable verbose debug output (per-frame detection details)")

	logger *debuglog.Logger

	newLogger = func() *debuglog.Logger {
		return debuglog.New(*debugMode, *debugVerbose)
	}
	openCamera = func(id int) (capture.Source, error) {
		camera, err := capture.OpenCamera(id)
		if err != nil {
			return nil, err
		}
		return camera, nil
	}
)

func printKeys() {
	fmt.Println("Keys:")
	fmt.Println("  r / g / b   brush color red, green, blue")
	fmt.Println("  + / -       grow / shrink brush")
	fmt.Println("  c           clear canvas")
	fmt.Println("  w           save drawing to " + *outDir)
	fmt.Println("  m           toggle mirror")
	fmt.Println("  q / ESC     quit")
}

func main() {
	flag.Parse()

	// highgui calls must stay on the main thread
	runtime.LockOSThread()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Bye!")
}

// run owns every resource so its deferred releases, including the log file sync, happen
// before main decides the exit code.
func run() error {
	logger = newLogger()
	defer logger.Close()

	config.SetDebugFunction(logger.Msg)
	detection.SetDebugFunction(logger.Msg)
	detection.SetDebugVerboseFunction(logger.Verbose)
	tracking.SetDebugFunction(logger.Msg)
	overlay.SetDebugFunction(logger.Msg)
	session.SetDebugFunction(logger.Msg)

	store := config.NewStore(*configPath)
	// A missing or malformed file is logged by the store and falls back to the full range
	bounds, _ := store.LoadOrDefault()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	camera, err := openCamera(*deviceID)
	if err != nil {
		logger.Msg("CAPTURE_ERROR", err.Error())
		return err
	}
	defer camera.Close()

	window := capture.OpenWindow(windowName, *fullscreen)
	defer window.Close()

	provider := detection.NewColorProvider(bounds)
	defer provider.Close()

	state := session.NewState(*mirrorMode, overlay.NewSnapshotter(*outDir, *outExt))
	defer state.Close()

	printKeys()

	sess := session.New(camera, window, provider, state)
	if err := sess.Run(ctx); err != nil {
		if errors.Is(err, session.ErrCaptureFailed) {
			logger.Msg("CAPTURE", "Camera stopped delivering frames")
		} else {
			logger.Msg("MAIN_ERROR", err.Error())
		}
	}
	return nil
}
