//go:build pprof

package main

import (
	"os"
	"runtime"
	"runtime/pprof"
)

var cpuFile *os.File

func startCPUProfile() {
	var err error
	if cpuFile, err = os.Create("gx-cpu.pprof"); err != nil {
		panic(err)
	}
	if err = pprof.StartCPUProfile(cpuFile); err != nil {
		panic(err)
	}
}

func stopCPUProfile() {
	pprof.StopCPUProfile()
	cpuFile.Close()
}

func writeMemProfile() {
	memFile, err := os.Create("gx-mem.pprof")
	if err != nil {
		panic(err)
	}
	defer memFile.Close()
	runtime.GC() // get up-to-date statistics
	if err := pprof.WriteHeapProfile(memFile); err != nil {
		panic(err)
	}
}
