package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Cloud-Foundations/Hanoi/lib/flags/commands"
	"github.com/Cloud-Foundations/Hanoi/lib/flags/loadflags"
	"github.com/Cloud-Foundations/Hanoi/lib/flagutil"
	"github.com/Cloud-Foundations/Hanoi/lib/hanoi"
	"github.com/Cloud-Foundations/Hanoi/lib/log/cmdlogger"
	"github.com/Cloud-Foundations/Hanoi/lib/version"
	"github.com/Cloud-Foundations/tricorder/go/tricorder"
)

var (
	diskValues flagutil.UintList
	iterative  = flag.Bool("iterative", false,
		"If true, use the explicit stack solver instead of recursion")
	numDisks = flag.Uint("numDisks", 3,
		"Number of random disks to generate when -disks is not given")
	placement  hanoi.Placement
	randomSeed = flag.Uint64("randomSeed", 0,
		"Seed for random disk values (default: seeded from the clock)")
)

func init() {
	flag.Var(&diskValues, "disks",
		"Comma separated list of disk values for the source column (top first)")
	flag.Var(&placement, "placement",
		"Where moved disks are placed on the destination: top or bottom")
}

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: hanoi [flags...] [command [args...]]")
	fmt.Fprintln(w, "Common flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w, "Commands (default: solve):")
	commands.PrintCommands(w, subcommands)
}

var subcommands = []commands.Command{
	{"count-moves", "numDisks", 1, 1, countMovesSubcommand},
	{"print-initial", "", 0, 0, printInitialSubcommand},
	{"solve", "[numDisks]", 0, 1, solveSubcommand},
}

func doMain() int {
	checkVersion := version.AddFlags("hanoi")
	if err := loadflags.LoadForCli("hanoi"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	tricorder.RegisterFlags()
	flag.Usage = printUsage
	flag.Parse()
	checkVersion()
	logger := cmdlogger.New()
	args := flag.Args()
	if len(args) < 1 {
		args = []string{"solve"}
	}
	return commands.RunCommands(args, subcommands, os.Stderr, printUsage,
		logger)
}

func main() {
	os.Exit(doMain())
}
