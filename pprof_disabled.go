//go:build !pprof

package main

func startCPUProfile() {}

func stopCPUProfile() {}

func writeMemProfile() {}
