package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/navpath/ctrlpath"
	"github.com/npillmayer/navpath/sampler"
	"github.com/spf13/cobra"
)

var (
	sampleDistance float64
	sampleMeters   float64
	sampleScale    float64
	sampleFormat   string
	sampleFrame    string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample a path into world-frame points with curvature",
	Long: `Sample a path at roughly equal distances. The distance is given in
display pixels of the map drawn at --scale, or in meters with --meters.
Output is a JSON array of points with curvature, or a nav_msgs/Path message.`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	f := sampleCmd.Flags()
	f.Float64VarP(&sampleDistance, "distance", "d", 0, "sample distance in display units (default from config)")
	f.Float64Var(&sampleMeters, "meters", 0, "sample distance in world units, overrides --distance")
	f.Float64Var(&sampleScale, "scale", 1, "display scale of the map")
	f.StringVar(&sampleFormat, "format", "points", "output format: points or navpath")
	f.StringVar(&sampleFrame, "frame", "map", "frame id of the navpath output")
}

func runSample(cmd *cobra.Command, args []string) error {
	if sampleFormat != "points" && sampleFormat != "navpath" {
		return fmt.Errorf("unknown output format %q", sampleFormat)
	}
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
	tr, err := transform(mp, sampleScale)
	if err != nil {
		return err
	}
	path, err := ctrlpath.Load(rec, tr)
	if err != nil {
		return err
	}
	var sp *sampler.SampledPath
	var ok bool
	if sampleMeters > 0 {
		sp, ok = sampler.AsPathWorld(path, tr, sampleMeters)
	} else {
		d := sampleDistance
		if d <= 0 {
			d = cfg.SampleDistance
		}
		sp, ok = sampler.AsPath(path, tr, d)
	}
	if !ok {
		return errors.New("path needs at least 4 points to be sampled")
	}
	out, closeOut, err := output()
	if err != nil {
		return err
	}
	if err := writeSamples(out, sp); err != nil {
		closeOut()
		return err
	}
	return closeOut()
}

func writeSamples(w io.Writer, sp *sampler.SampledPath) error {
	if sampleFormat == "points" {
		return sp.WriteJSON(w)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sp.NavPath(sampleFrame))
}
