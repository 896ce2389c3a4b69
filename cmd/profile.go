package cmd

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/spf13/viper"
)

// startProfile records CPU and heap profiles for the named process when env is dev.
func startProfile(cfg *viper.Viper, name string) func() {
	if cfg.GetString("env") != "dev" {
		return func() {}
	}

	cpu, err := os.Create(fmt.Sprintf("%s-cpu.prof", name))
	if err != nil {
		log.Fatalf("could not create CPU profile: %v", err)
	}

	err = pprof.StartCPUProfile(cpu)
	if err != nil {
		log.Fatalf("could not start CPU profile: %v", err)
	}

	return func() {
		pprof.StopCPUProfile()
		cpu.Close()

		mem, err := os.Create(fmt.Sprintf("%s-mem.prof", name))
		if err != nil {
			log.Printf("could not create memory profile: %v", err)
			return
		}
		defer mem.Close()

		if err := pprof.WriteHeapProfile(mem); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
}
