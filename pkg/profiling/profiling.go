// Package profiling writes optional CPU and heap profiles of a run.
package profiling

import (
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rs/zerolog/log"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = pprof.WriteHeapProfile
)

// DoCPUProfiling starts a CPU profile written to filePath and returns a func that stops it.
// Failures are logged and yield a no-op stop func.
func DoCPUProfiling(filePath string) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("could not create CPU profile")
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("could not start CPU profile")
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Str("file", filePath).Msg("failed to close CPU profile")
		}
	}
}

// DoMemProfiling returns a func that writes a heap profile to filePath.
// Call it when the work to be measured is done.
func DoMemProfiling(filePath string) (write func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			log.Error().Err(err).Str("file", filePath).Msg("could not create memory profile")
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.Error().Err(err).Str("file", filePath).Msg("could not write memory profile")
		}
	}
}
