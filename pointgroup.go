/*
 * pointgroup.go, part of netsuriki.
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

package netsuriki

import (
	"fmt"
	"strconv"
	"strings"
)

//family is the Schoenflies family a point group belongs to. The
//rotational symmetry number is a fixed function of the family and, for
//the axial families, the order of the main axis.
type family int

const (
	famInvalid family = iota
	famC1
	famCi
	famCs
	famCinfv
	famDinfh
	famCn
	famDn
	famSn
	famT
	famO
	famI
)

//Group is a parsed point group: its Schoenflies family plus, for the
//Cn/Dn/Sn families, the order n of the main rotation axis.
type Group struct {
	fam    family
	order  int
	symbol string
}

//ParseGroup reads a Schoenflies point group symbol. Recognized are C1,
//Ci, Cs, C∞v (also spelled Cinfv or Coov), D∞h (Dinfh, Dooh), Cn, Cnv,
//Cnh, Dn, Dnd, Dnh, Sn (n even), T, Td, Th, O, Oh, I and Ih. Case is
//not significant. Any other symbol is outside the supported enumeration
//and returns an error rather than some default.
func ParseGroup(s string) (Group, error) {
	ei := "netsuriki/ParseGroup"
	tok := strings.TrimSpace(s)
	if tok == "" {
		return Group{}, fmt.Errorf("%s: empty point group symbol", ei)
	}
	r := []rune(tok)
	canon := strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
	switch canon {
	case "C1":
		return Group{fam: famC1, symbol: canon}, nil
	case "Ci":
		return Group{fam: famCi, symbol: canon}, nil
	case "Cs":
		return Group{fam: famCs, symbol: canon}, nil
	case "C∞v", "Cinfv", "Coov":
		return Group{fam: famCinfv, symbol: "C∞v"}, nil
	case "D∞h", "Dinfh", "Dooh":
		return Group{fam: famDinfh, symbol: "D∞h"}, nil
	case "T", "Td", "Th":
		return Group{fam: famT, symbol: canon}, nil
	case "O", "Oh":
		return Group{fam: famO, symbol: canon}, nil
	case "I", "Ih":
		return Group{fam: famI, symbol: canon}, nil
	}
	cr := []rune(canon)
	var fam family
	switch cr[0] {
	case 'C':
		fam = famCn
	case 'D':
		fam = famDn
	case 'S':
		fam = famSn
	default:
		return Group{}, fmt.Errorf("%s: unrecognized point group %q", ei, s)
	}
	j := 1
	for j < len(cr) && cr[j] >= '0' && cr[j] <= '9' {
		j++
	}
	if j == 1 {
		return Group{}, fmt.Errorf("%s: unrecognized point group %q", ei, s)
	}
	n, err := strconv.Atoi(string(cr[1:j]))
	if err != nil || n < 1 {
		return Group{}, fmt.Errorf("%s: bad rotation order in point group %q", ei, s)
	}
	//a single trailing decoration (the v in C2v, the d in D3d) leaves
	//the symmetry number untouched
	switch deco := string(cr[j:]); deco {
	case "":
	case "v", "h":
		if fam == famSn {
			return Group{}, fmt.Errorf("%s: unrecognized point group %q", ei, s)
		}
	case "d":
		if fam != famDn {
			return Group{}, fmt.Errorf("%s: unrecognized point group %q", ei, s)
		}
	default:
		return Group{}, fmt.Errorf("%s: unrecognized point group %q", ei, s)
	}
	if fam == famSn && n < 2 {
		return Group{}, fmt.Errorf("%s: improper rotation group %q needs order 2 or higher", ei, s)
	}
	return Group{fam: fam, order: n, symbol: canon}, nil
}

//SymmetryNumber returns the rotational symmetry number σ of the group:
//the count of indistinguishable orientations reachable by proper
//rotations. Calling it on an unparsed (zero value) Group panics.
func (G Group) SymmetryNumber() int {
	switch G.fam {
	case famC1, famCi, famCs, famCinfv:
		return 1
	case famDinfh:
		return 2
	case famCn:
		return G.order
	case famDn:
		return 2 * G.order
	case famSn:
		return G.order / 2
	case famT:
		return 12
	case famO:
		return 24
	case famI:
		return 60
	}
	panic(ErrPointGroup)
}

//Linear reports whether the group is one of the two linear molecule
//groups, C∞v or D∞h.
func (G Group) Linear() bool {
	return G.fam == famCinfv || G.fam == famDinfh
}

//Order returns the order of the main rotation axis for the Cn, Dn and
//Sn families, and 0 for the others.
func (G Group) Order() int {
	return G.order
}

func (G Group) String() string {
	return G.symbol
}

//SymmetryNumber maps a point group symbol straight to its rotational
//symmetry number. It is shorthand for ParseGroup followed by the method
//of the same name.
func SymmetryNumber(symbol string) (int, error) {
	G, err := ParseGroup(symbol)
	if err != nil {
		return 0, err
	}
	return G.SymmetryNumber(), nil
}
