// This file is part of romraster.
//
// romraster is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romraster is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romraster.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/pm5644/romraster/conversion"
	"github.com/pm5644/romraster/rom"
	"github.com/pm5644/romraster/version"
)

// styles for the terminal output. styling is not applied if output is not
// to a terminal.
type styles struct {
	plain   bool
	heading lipgloss.Style
	label   lipgloss.Style
	digest  lipgloss.Style
	file    lipgloss.Style
	err     lipgloss.Style
}

func newStyles(output *os.File) styles {
	return styles{
		plain:   !term.IsTerminal(int(output.Fd())),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		digest:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		file:    lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
	}
}

func (sty styles) render(st lipgloss.Style, s string) string {
	if sty.plain {
		return s
	}
	return st.Render(s)
}

func (sty styles) failure(s string) string {
	return sty.render(sty.err, s)
}

func (sty styles) report(output io.Writer, mode string, res *conversion.Result) {
	fmt.Fprintln(output, sty.render(sty.heading, fmt.Sprintf("%s complete", mode)))

	for _, g := range rom.Groups {
		if res.Raw[g] == nil {
			continue
		}
		fmt.Fprintf(output, "%s raw plane %dx%d\n", sty.render(sty.label, fmt.Sprintf("%-5s", g)),
			res.Raw[g].Rect.Dx(), res.Raw[g].Rect.Dy())
	}

	for _, g := range rom.Groups {
		if res.Aligned[g] == nil {
			continue
		}
		fmt.Fprintf(output, "%s aligned plane %dx%d (%s)\n", sty.render(sty.label, fmt.Sprintf("%-5s", g)),
			res.Aligned[g].Rect.Dx(), res.Aligned[g].Rect.Dy(), res.Stats[g])
	}

	if res.Composite != nil {
		fmt.Fprintf(output, "%s %dx%d %s\n", sty.render(sty.label, "composite"),
			res.Composite.Rect.Dx(), res.Composite.Rect.Dy(), sty.render(sty.digest, res.Digest))
	}

	for _, f := range res.Written {
		fmt.Fprintln(output, sty.render(sty.file, f))
	}
}

func (sty styles) info(output io.Writer, s conversion.Settings) {
	fmt.Fprintln(output, sty.render(sty.heading, version.String()))
	fmt.Fprintf(output, "%s %v\n", sty.render(sty.label, "geometry   "), s.Geometry)
	fmt.Fprintf(output, "%s %v\n", sty.render(sty.label, "addressing "), s.Addressing)
	fmt.Fprintf(output, "%s %v\n", sty.render(sty.label, "calibration"), s.Calibration)
	fmt.Fprintf(output, "%s %v\n", sty.render(sty.label, "alignment  "), s.Alignment)
	fmt.Fprintf(output, "%s %s\n", sty.render(sty.label, "vectors    "), s.Files.Vectors)
}
