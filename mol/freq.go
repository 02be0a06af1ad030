/*
 * freq.go, part of netsuriki.
 *
 *
 * Copyright 2024 mizu-bai
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mol

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mizu-bai/Netsuriki/chemunit"
)

//ParseWavenumbers reads a normal mode list: whitespace separated
//wavenumbers in cm⁻¹, any number per line, with blank lines and lines
//starting with # skipped. A non-positive value means an imaginary
//frequency from an unconverged geometry and fails; so does a list with
//no values at all.
func ParseWavenumbers(r io.Reader) ([]chemunit.Wavenumber, error) {
	ei := "mol/ParseWavenumbers"
	var out []chemunit.Wavenumber
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, field := range strings.Fields(line) {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: line %d: %w", ei, lineno, err)
			}
			if v <= 0 {
				return nil, fmt.Errorf("%s: line %d: non-positive wavenumber %v; imaginary frequencies have no thermochemistry", ei, lineno, v)
			}
			out = append(out, chemunit.Wavenumber(v)*chemunit.PerCentimetre)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ei, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: no wavenumbers found", ei)
	}
	return out, nil
}

//ReadWavenumbers opens a normal mode file, decompressing by name suffix
//like XYZFileRead, and parses it.
func ReadWavenumbers(name string) ([]chemunit.Wavenumber, error) {
	ei := "mol/ReadWavenumbers"
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rc, err := anyNewReader(name, bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", ei, name, err)
	}
	defer rc.Close()
	ws, err := ParseWavenumbers(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", ei, name, err)
	}
	return ws, nil
}
