package window

import (
	"context"
	"io/fs"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"
)

// Title is used for the window and the task switcher entry
const Title = "Cursor Overlay"

// Presentation holds the overlay window flags
type Presentation struct {
	Width       int
	Height      int
	Frame       bool
	Transparent bool
	AlwaysOnTop bool
	Resizable   bool
	HasShadow   bool
	SkipTaskbar bool
}

// Fixed returns the only presentation the overlay runs with
func Fixed() Presentation {
	return Presentation{
		Width:       200,
		Height:      200,
		Frame:       false,
		Transparent: true,
		AlwaysOnTop: true,
		Resizable:   true,
		HasShadow:   false,
		SkipTaskbar: false,
	}
}

// Deps are everything the window needs besides its presentation
type Deps struct {
	Assets    fs.FS
	Logger    logger.Logger
	LogLevel  logger.LogLevel
	Inspector bool
	GOOS      string
	OnStartup func(ctx context.Context)
	Bridge    interface{}
}

// StaysResident reports whether the host keeps running after its last
// window is closed. Only macOS follows that convention.
func StaysResident(goos string) bool {
	return goos == "darwin"
}

// Options builds the Wails application for a single overlay window
func Options(p Presentation, deps Deps) *options.App {
	app := &options.App{
		Title:             Title,
		Width:             p.Width,
		Height:            p.Height,
		Frameless:         !p.Frame,
		AlwaysOnTop:       p.AlwaysOnTop,
		DisableResize:     !p.Resizable,
		HideWindowOnClose: StaysResident(deps.GOOS),
		AssetServer: &assetserver.Options{
			Assets: deps.Assets,
		},
		Logger:             deps.Logger,
		LogLevel:           deps.LogLevel,
		LogLevelProduction: deps.LogLevel,
		OnStartup:          deps.OnStartup,
		Debug: options.Debug{
			OpenInspectorOnStartup: deps.Inspector,
		},
		Windows: &wailswindows.Options{
			WebviewIsTransparent: p.Transparent,
			WindowIsTranslucent:  p.Transparent,
			// Frameless windows get their drop shadow from the decorations
			DisableFramelessWindowDecorations: !p.HasShadow,
		},
		Mac: &mac.Options{
			WebviewIsTransparent: p.Transparent,
			WindowIsTranslucent:  p.Transparent,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: p.Transparent,
			ProgramName:         "cursor-overlay",
		},
	}

	if deps.Bridge != nil {
		app.Bind = []interface{}{deps.Bridge}
	}

	if p.Transparent {
		app.BackgroundColour = &options.RGBA{R: 0, G: 0, B: 0, A: 0}
	} else {
		app.BackgroundColour = &options.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	return app
}
