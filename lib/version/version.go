package version

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var baseVersion string

type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Dirty     bool
}

// AddFlags registers the -version flag. The returned function should be called
// after flag.Parse; if -version was given it prints the version of progName
// and exits.
func AddFlags(progName string) func() {
	printVersion := flag.Bool("version", false, "Print version and exit")
	return func() {
		if *printVersion {
			fmt.Printf("%s %s\n", progName, Get())
			os.Exit(0)
		}
	}
}

// Get returns the version information of the running binary.
func Get() Info {
	info := Info{
		Version:   strings.TrimSpace(baseVersion),
		GitCommit: "unknown",
		BuildDate: "unknown",
		GoVersion: runtime.Version(),
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.applySettings(buildInfo.Settings)
	}
	if info.GitCommit != "unknown" {
		info.Version += "+" + info.GitCommit
	}
	if info.Dirty {
		info.Version += "-dirty"
	}
	return info
}

func (i Info) String() string {
	return fmt.Sprintf("%s (built: %s, %s)", i.Version, i.BuildDate,
		i.GoVersion)
}

func (i *Info) applySettings(settings []debug.BuildSetting) {
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			i.GitCommit = setting.Value
			if len(i.GitCommit) > 8 {
				i.GitCommit = i.GitCommit[:8]
			}
		case "vcs.time":
			i.BuildDate = setting.Value
		case "vcs.modified":
			i.Dirty = setting.Value == "true"
		}
	}
}
