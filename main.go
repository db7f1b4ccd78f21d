package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"github.com/macdylan/Gcode2GX/gx"
)

func newLogger() hclog.Logger {
	level := hclog.Info
	if v, ok := os.LookupEnv("GX_LOG_LEVEL"); ok {
		if l := hclog.LevelFromString(v); l != hclog.NoLevel {
			level = l
		}
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "gx",
		Output: os.Stderr,
		Level:  level,
	})
}

func extruders() (int, error) {
	v, ok := os.LookupEnv("GX_EXTRUDERS")
	if !ok || v == "" {
		return gx.ExtrudersSingle, nil
	}
	return strconv.Atoi(v)
}

func run(path string, logger hclog.Logger) error {
	n, err := extruders()
	if err != nil {
		return err
	}
	enc, err := gx.New(gx.Options{Extruders: n, Logger: logger})
	if err != nil {
		return err
	}
	return enc.ConvertFile(path)
}

func main() {
	flag.Usage = flag_usage
	flag.Parse()
	if flag.NArg() != 1 {
		flag_usage()
	}

	startCPUProfile()
	logger := newLogger()
	err := run(flag.Arg(0), logger)
	stopCPUProfile()
	writeMemProfile()

	if err != nil {
		logger.Error("failed to generate GX file", "error", err)
		os.Exit(1)
	}
}
