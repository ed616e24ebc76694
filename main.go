package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"

	"cursor-overlay/internal/bridge"
	"cursor-overlay/internal/config"
	"cursor-overlay/internal/cursor"
	"cursor-overlay/internal/ipc"
	"cursor-overlay/internal/window"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	configSvc, err := config.New()
	if err != nil {
		fmt.Printf("Failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewDefaultLogger()

	host := ipc.NewHost(log)
	if err := host.Handle(ipc.ChannelGetCursor, ipc.CursorHandler(cursor.System())); err != nil {
		fmt.Printf("Failed to register %s: %v\n", ipc.ChannelGetCursor, err)
		os.Exit(1)
	}

	page, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		fmt.Printf("Failed to load overlay page: %v\n", err)
		os.Exit(1)
	}

	app := window.Options(window.Fixed(), window.Deps{
		Assets:    page,
		Logger:    log,
		LogLevel:  configSvc.Level(),
		Inspector: configSvc.Get().Inspector,
		GOOS:      runtime.GOOS,
		OnStartup: host.Attach,
		Bridge:    bridge.New(host),
	})

	if err := wails.Run(app); err != nil {
		fmt.Printf("Error starting application: %v\n", err)
		os.Exit(1)
	}
}
