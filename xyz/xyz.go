/*
 * xyz.go, part of gosymm.
 *
 * Copyright 2024 The gosymm authors.
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

/*Package xyz reads molecular geometries in the XYZ format, optionally gzip or
zstd compressed, and assigns atomic masses to the element symbols found.*/
package xyz

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Molecule is one XYZ frame.
type Molecule struct {
	Comment string
	Symbols []string
	//Stacked cartesian coordinates, 3 per atom.
	Coords []float64
	Masses []float64
}

//Len returns the number of atoms in M.
func (M *Molecule) Len() int { return len(M.Symbols) }

//zstdCloser gives the zstd decoder a Close method with the io.Closer signature.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//Read reads the first frame of the XYZ file name. Files ending in .gz are read
//through gzip, and files ending in .zst or .zstd through zstd.
func Read(name string) (*Molecule, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	var anyNewReader func(io.Reader) (io.ReadCloser, error)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		anyNewReader = func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	case ".zst", ".zstd":
		anyNewReader = func(a io.Reader) (io.ReadCloser, error) {
			r, err := zstd.NewReader(a)
			if err != nil {
				return nil, err
			}
			return zstdCloser{r}, nil
		}
	default:
		anyNewReader = func(a io.Reader) (io.ReadCloser, error) { return io.NopCloser(a), nil }
	}
	r, err := anyNewReader(bufio.NewReader(f))
	if err != nil {
		return nil, Error{"can't decompress: " + err.Error(), name, []string{"Read"}, true}
	}
	defer r.Close()
	mol, err := Decode(r)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = name
			e.deco = e.Decorate("Read")
			return nil, e
		}
		return nil, err
	}
	return mol, nil
}

//Decode reads one XYZ frame from r: the number of atoms, a comment line, and one
//"Symbol x y z" line per atom. Extra fields after the coordinates are ignored.
func Decode(r io.Reader) (*Molecule, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil && line == "" {
		return nil, Error{"empty input", "", []string{"Decode"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 1 {
		return nil, Error{fmt.Sprintf("ill formatted atom count %q", strings.TrimSpace(line)), "", []string{"Decode"}, true}
	}
	comment, err := xyz.ReadString('\n')
	if err != nil && comment == "" {
		return nil, Error{"missing comment line", "", []string{"Decode"}, true}
	}
	mol := &Molecule{
		Comment: strings.TrimRight(comment, "\r\n"),
		Symbols: make([]string, natoms),
		Coords:  make([]float64, 3*natoms),
		Masses:  make([]float64, natoms),
	}
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && line == "" {
			return nil, Error{fmt.Sprintf("expected %d atoms, found %d", natoms, i), "", []string{"Decode"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Error{fmt.Sprintf("atom line %d ill formed", i+1), "", []string{"Decode"}, true}
		}
		sym := Symbol(fields[0])
		mol.Symbols[i] = sym
		mol.Masses[i], err = Mass(sym)
		if err != nil {
			return nil, Error{fmt.Sprintf("atom line %d: %s", i+1, err.Error()), "", []string{"Decode"}, true}
		}
		for j := 0; j < 3; j++ {
			mol.Coords[3*i+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("atom line %d: bad coordinate %q", i+1, fields[j+1]), "", []string{"Decode"}, true}
			}
		}
	}
	return mol, nil
}

//Error is the error type of the xyz package.
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("xyz error: %s", err.message)
	}
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file associated to the error, if any.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }
