// Command gosat reads a DIMACS CNF instance and reports whether it is
// satisfiable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	"github.com/rhartert/gosat/internal/dimacsio"
	"github.com/rhartert/gosat/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagGzipped = flag.Bool(
	"gzip",
	false,
	"the instance file is gzip-compressed",
)

// assumptions collects repeated -assume flags into a list of signed DIMACS
// literals, e.g. "-assume 3 -assume -7".
type assumptions []int

func (a *assumptions) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, len(*a))
	for i, x := range *a {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}

func (a *assumptions) Set(value string) error {
	x, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid assumption literal %q: %w", value, err)
	}
	if x == 0 {
		return fmt.Errorf("assumption literal cannot be 0")
	}
	*a = append(*a, x)
	return nil
}

var flagAssumptions assumptions

func init() {
	flag.Var(&flagAssumptions, "assume", "signed DIMACS literal to assume (repeatable)")
}

type config struct {
	instanceFile string
	gzipped      bool
	memProfile   bool
	cpuProfile   bool
	assumptions  []int
}

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		gzipped:      *flagGzipped,
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		assumptions:  flagAssumptions,
	}, nil
}

func run(cfg *config) error {
	var solver sat.Solver
	if err := dimacsio.LoadFile(cfg.instanceFile, cfg.gzipped, &solver); err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	assumptions := make([]sat.Literal, len(cfg.assumptions))
	for i, x := range cfg.assumptions {
		assumptions[i] = sat.FromDIMACS(x)
	}

	fmt.Printf("c variables:  %d\n", solver.NumVariables())
	fmt.Println("start solving ...")

	t := time.Now()
	result := solver.Solve(assumptions)
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	if !result.Satisfiable {
		fmt.Println("UNSAT")
		return nil
	}
	fmt.Printf("SAT model = %s\n", result.Model)
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
