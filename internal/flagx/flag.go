// Package flagx lets several configuration layers share os.Args: each layer
// picks out only the flags it owns before parsing them with its own FlagSet.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args made of the flags named in names
// (given without dashes) and their values. Both "-name" and "--name" are
// recognised, as well as the "-name=value" form. A separate value is taken
// only when the next argument does not itself start with a dash.
func FilterArgs(args []string, names []string) []string {
	owned, _ := split(args, names)
	return owned
}

// StripArgs is the complement of FilterArgs: it returns args without the
// named flags and their values, in their original order.
func StripArgs(args []string, names []string) []string {
	_, rest := split(args, names)
	return rest
}

func split(args []string, names []string) (owned, rest []string) {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[strings.TrimLeft(n, "-")] = struct{}{}
	}

	owned = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			rest = append(rest, arg)
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if _, ok := allowed[name]; !ok {
			rest = append(rest, arg)
			continue
		}

		owned = append(owned, arg)
		if hasValue {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			owned = append(owned, args[i+1])
			i++
		}
	}

	return owned, rest
}

// ConfigPath extracts the JSON config file path given with -c or -config.
// It returns "" when neither flag is present. When both appear, the last
// one wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(discard{})
	fs.StringVar(&path, "config", "", "Path to config file")
	fs.StringVar(&path, "c", "", "Path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"c", "config"}))

	return path
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
