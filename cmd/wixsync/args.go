package wixsync

import (
	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/spf13/cobra"
)

// legacyFlags maps single-dash spellings accepted by older releases to
// their current form
var legacyFlags = map[string]string{
	"-replaceProduct": "--replace-product",
}

// NormalizeArgs rewrites legacy flag spellings so the flag parser accepts
// them. Arguments after "--" are left alone.
func NormalizeArgs(args []string) []string {
	out := make([]string, len(args))
	passthrough := false
	for i, arg := range args {
		if arg == "--" {
			passthrough = true
		}
		if replacement, ok := legacyFlags[arg]; ok && !passthrough {
			arg = replacement
		}
		out[i] = arg
	}
	return out
}

// positionalArgs requires the three positional arguments of an update run
func positionalArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.New(errors.ErrNoArguments, MsgErrNoArguments)
	case len(args) < 3:
		return errors.Newf(errors.ErrMissingArguments, MsgErrMissingArguments, len(args)).
			WithDetail("got", len(args))
	}
	return nil
}
