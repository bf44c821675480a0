package utils

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether both stdin and stdout are terminals, which
// is required for the bubbletea views.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))
}

func StrFlag(strVar *string, name string, fallback string, args []string) {
	if len(*strVar) > 0 {
		// This var has already been set
		return
	}

	flagNameA := fmt.Sprintf("-%s", string(name[0]))
	flagNameB := fmt.Sprintf("--%s", name)

	for idx, arg := range args {
		if arg == flagNameA || arg == flagNameB {
			if idx >= len(args)-1 {
				// Invalid flag value
				break
			}
			*strVar = args[idx+1]
			return
		}
	}

	*strVar = fallback
}

// Positional returns args with every "-x value" / "--name value" pair
// removed.
func Positional(args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		if strings.HasPrefix(args[i], "-") {
			i++
			continue
		}

		out = append(out, args[i])
	}

	return out
}
