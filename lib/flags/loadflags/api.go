package loadflags

import (
	"flag"
	"io"
)

// LoadForCli sets flag defaults from the flags.default and flags.extra files
// in /etc/config/<progName> and then in $HOME/.config/<progName>. Each line
// is a name=value pair; blank lines and lines starting with '#' or ';' are
// ignored. Missing files are skipped. It should be called before flag.Parse
// so that command-line arguments take precedence.
func LoadForCli(progName string) error {
	return loadForCli(flag.CommandLine, progName)
}

// Load reads name=value lines from reader and sets the matching flags in
// flagSet.
func Load(flagSet *flag.FlagSet, reader io.Reader) error {
	return load(flagSet, reader)
}
