// nefdecode decodes Nikon Electronic Format (NEF) raw camera files into a
// linear, demosaic-ready pixel raster plus structured metadata.
// Copyright (C) 2026  R. Voss
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// These are overridden at build time via -ldflags "-X ...".
//
//nolint:gochecknoglobals // set via -ldflags at build time
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Display the version, commit hash, and build date of nefdecode.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(
				os.Stdout,
				`  _  _ ___ ___    _           _
 | \| | __| __|__| |___ __ ___| |___
 | .  | _|| _|/ _` + "`" + ` / -_) _/ _ \ / -_)
 |_|\_|___|_| \__,_\___\__\___/_\___|

nefdecode %s (commit: %s, built: %s)
`,
				buildVersion,
				buildCommit,
				buildDate,
			)
		},
	}
}
