package main

import (
	"image"
	"image/color"
	"math"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/editor"
	"github.com/npillmayer/navpath/mapmeta"
	"github.com/npillmayer/navpath/surface"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
)

var (
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a path onto its map as PNG",
	Long: `Render a path, colored by curvature, onto the map image. The map is
scaled to fit into --width × --height.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	f := renderCmd.Flags()
	f.IntVar(&renderWidth, "width", 800, "maximum image width")
	f.IntVar(&renderHeight, "height", 600, "maximum image height")
}

var axesColor = color.NRGBA{R: 0x71, A: 0x88}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rec, err := loadRecord()
	if err != nil {
		return err
	}
	mp, err := loadMap()
	if err != nil {
		return err
	}
	w, h, scale := renderWidth, renderHeight, 1.0
	if mp != nil {
		mw, mh := mp.Size()
		scale = mapmeta.FitScale(mw, mh, renderWidth, renderHeight)
		w = int(math.Round(float64(mw) * scale))
		h = int(math.Round(float64(mh) * scale))
	}
	tr, err := transform(mp, scale)
	if err != nil {
		return err
	}
	raster := surface.NewRaster(w, h)
	if mp != nil {
		raster.SetBackground(background(mp, w, h, tr))
	}
	ed, err := editor.New(cfg, tr)
	if err != nil {
		return err
	}
	if err := ed.Load(rec); err != nil {
		return err
	}
	ed.Tick(raster)
	out, closeOut, err := output()
	if err != nil {
		return err
	}
	if err := raster.WritePNG(out); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

// background scales the map image to w × h and marks the world origin.
func background(mp *mapmeta.Map, w, h int, tr navpath.Transform) image.Image {
	bg := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(bg, bg.Bounds(), mp.Image, mp.Image.Bounds(), draw.Src, nil)
	axes := surface.NewRaster(w, h)
	axes.SetBackground(bg)
	axes.Clear()
	o := tr.ToDisplay(navpath.Origin)
	axes.SetStroke(axesColor, 1)
	surface.Line(axes, o-navpath.P(5, 0), o+navpath.P(5, 0))
	surface.Line(axes, o-navpath.P(0, 5), o+navpath.P(0, 5))
	return axes.Image()
}
