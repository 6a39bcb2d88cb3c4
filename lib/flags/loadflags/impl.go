package loadflags

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const systemDir = "/etc/config"

var filenames = []string{"flags.default", "flags.extra"}

func load(flagSet *flag.FlagSet, reader io.Reader) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found {
			return errors.New("bad line, cannot split name from value: " + line)
		}
		name = strings.TrimSpace(name)
		if strings.ContainsAny(name, " \t") {
			return errors.New("bad line, name has whitespace: " + line)
		}
		if err := flagSet.Set(name, strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return scanner.Err()
}

func loadDirectory(flagSet *flag.FlagSet, dirname string) error {
	for _, filename := range filenames {
		pathname := filepath.Join(dirname, filename)
		file, err := os.Open(pathname)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		err = load(flagSet, file)
		file.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", pathname, err)
		}
	}
	return nil
}

func loadForCli(flagSet *flag.FlagSet, progName string) error {
	err := loadDirectory(flagSet, filepath.Join(systemDir, progName))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
	}
	return loadDirectory(flagSet,
		filepath.Join(os.Getenv("HOME"), ".config", progName))
}
