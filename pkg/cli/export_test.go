package cli

import (
	"io"

	"github.com/urfave/cli/v3"
)

// NewAppForTest builds the root command writing to w
func NewAppForTest(w io.Writer) *cli.Command {
	return newApp("test", w)
}
