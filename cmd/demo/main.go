package main

import (
	"log"
	"os"

	"github.com/pluginui/imbridge/bridge"
	"github.com/pluginui/imbridge/config"
	glbackend "github.com/pluginui/imbridge/gfx/gl"
	"github.com/pluginui/imbridge/imdraw"
	"github.com/pluginui/imbridge/imtk"
	"github.com/pluginui/imbridge/platform"
)

// demoScene is a stand-in frame producer: a static panel plus a marker
// that follows the pointer. Frames only differ while the pointer moves,
// so repaints stay suppressed when nothing happens.
type demoScene struct {
	b *imdraw.ListBuilder
}

func (d *demoScene) BuildFrame(io *imtk.IO) *imdraw.DrawData {
	d.b.Reset()
	d.b.SetClipRect(0, 0, io.DisplaySize[0], io.DisplaySize[1])

	d.b.AddRectFilled(40, 40, 240, 140, imdraw.PackColor(0.18, 0.45, 0.70, 1))

	col := imdraw.PackColor(0.9, 0.6, 0.1, 1)
	if io.MouseDown[0] {
		col = imdraw.PackColor(0.9, 0.2, 0.2, 1)
	}
	d.b.AddRectFilled(io.MousePos[0]-8, io.MousePos[1]-8, 16, 16, col)

	io.WantCaptureMouse = io.MouseDown[0]

	return &imdraw.DrawData{
		Valid:       true,
		Lists:       []*imdraw.DrawList{d.b.List()},
		DisplaySize: io.DisplaySize,
	}
}

func main() {
	path := "imbridge.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	win, err := platform.NewWindow(cfg.WindowConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer win.Close()

	scene := &demoScene{b: imdraw.NewListBuilder(256)}
	ui, err := bridge.New(win, scene, glbackend.New(), cfg.BridgeConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer ui.Close()

	win.Attach(ui)
	if err := win.Run(); err != nil {
		log.Fatal(err)
	}
}
