package window

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

type fakeBridge struct{}

func (fakeBridge) GetCursor() {}

func testDeps(goos string) Deps {
	return Deps{
		Assets:    fstest.MapFS{"index.html": &fstest.MapFile{Data: []byte("<html></html>")}},
		Logger:    logger.NewDefaultLogger(),
		LogLevel:  logger.INFO,
		GOOS:      goos,
		OnStartup: func(ctx context.Context) {},
		Bridge:    fakeBridge{},
	}
}

func TestFixed(t *testing.T) {
	p := Fixed()

	if p.Width != 200 || p.Height != 200 {
		t.Errorf("Fixed size = %dx%d; want 200x200", p.Width, p.Height)
	}
	if p.Frame {
		t.Error("Expected frameless window")
	}
	if !p.Transparent || !p.AlwaysOnTop || !p.Resizable {
		t.Errorf("Unexpected flags: %+v", p)
	}
	if p.HasShadow || p.SkipTaskbar {
		t.Errorf("Expected no shadow and taskbar entry, got %+v", p)
	}
}

func TestOptions_Geometry(t *testing.T) {
	app := Options(Fixed(), testDeps("linux"))

	if app.Width != 200 || app.Height != 200 {
		t.Errorf("Window size = %dx%d; want 200x200", app.Width, app.Height)
	}
	if !app.Frameless {
		t.Error("Expected Frameless")
	}
	if !app.AlwaysOnTop {
		t.Error("Expected AlwaysOnTop")
	}
	if app.DisableResize {
		t.Error("Expected window to be resizable")
	}
	if app.StartHidden {
		t.Error("Window should be shown on startup")
	}
}

func TestOptions_Transparent(t *testing.T) {
	app := Options(Fixed(), testDeps("windows"))

	if app.BackgroundColour == nil || app.BackgroundColour.A != 0 {
		t.Errorf("Expected fully transparent background, got %+v", app.BackgroundColour)
	}
	if !app.Windows.WebviewIsTransparent || !app.Windows.WindowIsTranslucent {
		t.Error("Expected transparent webview on Windows")
	}
	if !app.Windows.DisableFramelessWindowDecorations {
		t.Error("Expected frameless decorations (shadow) disabled")
	}
	if !app.Mac.WebviewIsTransparent || !app.Linux.WindowIsTranslucent {
		t.Error("Expected transparent webview on macOS and Linux")
	}
}

func TestOptions_SingleBinding(t *testing.T) {
	app := Options(Fixed(), testDeps("linux"))

	if len(app.Bind) != 1 {
		t.Fatalf("Expected exactly one bound value, got %d", len(app.Bind))
	}
	if _, ok := app.Bind[0].(fakeBridge); !ok {
		t.Errorf("Unexpected binding %T", app.Bind[0])
	}
}

func TestOptions_Lifecycle(t *testing.T) {
	if Options(Fixed(), testDeps("linux")).HideWindowOnClose {
		t.Error("Closing the last window should quit on linux")
	}
	if Options(Fixed(), testDeps("windows")).HideWindowOnClose {
		t.Error("Closing the last window should quit on windows")
	}
	if !Options(Fixed(), testDeps("darwin")).HideWindowOnClose {
		t.Error("Host should stay resident on darwin")
	}
}

func TestStaysResident(t *testing.T) {
	if !StaysResident("darwin") {
		t.Error("Expected darwin to stay resident")
	}
	if StaysResident("linux") || StaysResident("windows") {
		t.Error("Expected linux and windows to quit")
	}
}
