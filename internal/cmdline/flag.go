package cmdline

import (
	"flag"
	"fmt"

	"golang.org/x/exp/slices"
)

// EnumFlag defines a string flag on fs that only accepts values in safelist.
func EnumFlag(fs *flag.FlagSet, target *string, name string, safelist []string, usage string) {
	usageWithValues := fmt.Sprintf("%s, must be one of %v", usage, safelist)
	fs.Func(name, usageWithValues, func(flagValue string) error {
		if !slices.Contains(safelist, flagValue) {
			return fmt.Errorf("must be one of %v", safelist)
		}
		*target = flagValue
		return nil
	})
}
