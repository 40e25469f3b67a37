/*
Command navpath works with navigation paths edited on robot maps.

	navpath sample --path route.json --map office.yaml --distance 5 > samples.json
	navpath sample --path route.json --map office.yaml --meters 0.25 --format navpath
	navpath render --path route.json --map office.yaml --width 1024 -o route.png

Paths are read in the JSON form written by the editor, with points in world
coordinates. Map metadata follows the ROS map server format.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/navpath"
	"github.com/npillmayer/navpath/ctrlpath"
	"github.com/npillmayer/navpath/editor"
	"github.com/npillmayer/navpath/mapmeta"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// trace keys of all packages
var traceKeys = []string{"navpath", "bezier", "ctrlpath", "curvature", "sampler",
	"polygon", "surface", "editor", "mapmeta"}

var (
	configFile string
	traceLevel string
	pathFile   string
	mapFile    string
	outFile    string
)

var rootCmd = &cobra.Command{
	Use:           "navpath",
	Short:         "Sample and render navigation paths on robot maps",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setTraceLevel(traceLevel)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "editor configuration (YAML)")
	pf.StringVar(&traceLevel, "trace", "error", "trace level: error, info or debug")
	pf.StringVarP(&pathFile, "path", "p", "", "path record (JSON)")
	pf.StringVarP(&mapFile, "map", "m", "", "map metadata (YAML)")
	pf.StringVarP(&outFile, "output", "o", "", "output file (default stdout)")
	rootCmd.MarkPersistentFlagRequired("path")
	rootCmd.AddCommand(sampleCmd, renderCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "navpath: %v\n", err)
		os.Exit(1)
	}
}

func setTraceLevel(level string) error {
	level = strings.ToLower(level)
	switch level {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("unknown trace level %q", level)
	}
	for _, key := range traceKeys {
		t := tracing.Select(key)
		switch level {
		case "error":
			t.SetTraceLevel(tracing.LevelError)
		case "info":
			t.SetTraceLevel(tracing.LevelInfo)
		case "debug":
			t.SetTraceLevel(tracing.LevelDebug)
		}
	}
	return nil
}

// loadConfig returns the editor configuration given by --config, or the
// default configuration.
func loadConfig() (editor.Config, error) {
	if configFile == "" {
		return editor.DefaultConfig(), nil
	}
	f, err := os.Open(configFile)
	if err != nil {
		return editor.Config{}, err
	}
	defer f.Close()
	c, err := editor.LoadConfig(f)
	if err != nil {
		return editor.Config{}, fmt.Errorf("%s: %w", configFile, err)
	}
	return c, nil
}

func loadRecord() (ctrlpath.Record, error) {
	f, err := os.Open(pathFile)
	if err != nil {
		return ctrlpath.Record{}, err
	}
	defer f.Close()
	rec, err := ctrlpath.DecodeRecord(f)
	if err != nil {
		return ctrlpath.Record{}, fmt.Errorf("%s: %w", pathFile, err)
	}
	return rec, nil
}

// loadMap loads the map given by --map, if any.
func loadMap() (*mapmeta.Map, error) {
	if mapFile == "" {
		return nil, nil
	}
	return mapmeta.LoadMap(mapFile)
}

// transform returns the display transform for a map drawn with scale, or
// the identity if there is no map.
func transform(mp *mapmeta.Map, scale float64) (navpath.Transform, error) {
	if mp == nil {
		return navpath.IdentityTransform(), nil
	}
	return mp.Transform(scale)
}

// output opens the file given by --output, or stdout.
func output() (*os.File, func() error, error) {
	if outFile == "" || outFile == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
