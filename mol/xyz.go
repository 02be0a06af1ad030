/*
 * xyz.go, part of netsuriki.
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
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//*zstd.Decoder closes without returning an error, which keeps it from
//being an io.ReadCloser by itself.
type zstdReadCloser struct {
	close func()
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.close()
	return nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

//anyNewReader picks a decompressor from the file name suffix: gzip for
//.gz, zstd for .zst, the bare stream for anything else.
func anyNewReader(name string, a io.Reader) (io.ReadCloser, error) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		return gzip.NewReader(a)
	case strings.HasSuffix(low, ".zst"):
		r, err := zstd.NewReader(a)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{r.Close, r}, nil
	}
	return io.NopCloser(a), nil
}

//anyNewWriter is the writing counterpart of anyNewReader.
func anyNewWriter(name string, a io.Writer) (io.WriteCloser, error) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		return gzip.NewWriter(a), nil
	case strings.HasSuffix(low, ".zst"):
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopWriteCloser{a}, nil
}

//XYZRead reads one molecule in XYZ format: an atom count line, a
//comment line, then one "symbol x y z" line per atom, coordinates in Å.
//Unknown element symbols are kept with zero mass after a logged notice;
//Masses will refuse them if the thermochemistry ever asks. Charge,
//multiplicity and point group are not part of the format and come out
//as 0, 1 and empty.
func XYZRead(r io.Reader) (*Molecule, error) {
	ei := "mol/XYZRead"
	buf := bufio.NewReader(r)
	line, err := buf.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", ei, err)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("%s: malformed atom count line %q", ei, strings.TrimSpace(line))
	}
	if natoms < 1 {
		return nil, fmt.Errorf("%s: file claims %d atoms", ei, natoms)
	}
	if _, err := buf.ReadString('\n'); err != nil {
		return nil, fmt.Errorf("%s: truncated before the comment line", ei)
	}
	atoms := make([]Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("%s: %w", ei, err)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("%s: atom line %d of %d missing or ill formed", ei, i+1, natoms)
		}
		sym := fields[0]
		if w, ok := symbolWeight[sym]; ok {
			atoms[i] = Atom{Symbol: sym, Mass: massOf(w)}
		} else {
			log.Printf("mol: unknown element %q, leaving its mass zero", sym)
			atoms[i] = Atom{Symbol: sym}
		}
		for k := 0; k < 3; k++ {
			coords[i*3+k], err = strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: atom line %d: %w", ei, i+1, err)
			}
		}
	}
	return New(atoms, mat.NewDense(natoms, 3, coords), 0, 1, "")
}

//XYZFileRead opens an XYZ file, decompressing it if its name ends in
//.gz or .zst, and reads the molecule in it.
func XYZFileRead(name string) (*Molecule, error) {
	ei := "mol/XYZFileRead"
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
	M, err := XYZRead(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", ei, name, err)
	}
	return M, nil
}

//XYZWrite writes the molecule in XYZ format with an empty comment line.
func XYZWrite(w io.Writer, M *Molecule) error {
	ei := "mol/XYZWrite"
	if M == nil || M.Len() == 0 {
		return fmt.Errorf("%s: nothing to write", ei)
	}
	if _, err := fmt.Fprintf(w, "%d\n\n", M.Len()); err != nil {
		return fmt.Errorf("%s: %w", ei, err)
	}
	for i, a := range M.atoms {
		_, err := fmt.Fprintf(w, "%-2s  %12.8f  %12.8f  %12.8f\n",
			a.Symbol, M.coords.At(i, 0), M.coords.At(i, 1), M.coords.At(i, 2))
		if err != nil {
			return fmt.Errorf("%s: %w", ei, err)
		}
	}
	return nil
}

//XYZFileWrite creates (or overwrites) the named file and writes the
//molecule to it, compressing by name suffix like XYZFileRead.
func XYZFileWrite(name string, M *Molecule) error {
	ei := "mol/XYZFileWrite"
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	defer out.Close()
	h, err := anyNewWriter(name, out)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", ei, name, err)
	}
	if err := XYZWrite(h, M); err != nil {
		h.Close()
		return fmt.Errorf("%s: %s: %w", ei, name, err)
	}
	if err := h.Close(); err != nil {
		return fmt.Errorf("%s: %s: %w", ei, name, err)
	}
	return nil
}
