/*
 * pointgroup_test.go, part of netsuriki.
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
	"testing"
)

func TestSymmetryNumbers(Te *testing.T) {
	table := map[string]int{
		"C1":    1,
		"Ci":    1,
		"Cs":    1,
		"C∞v":   1,
		"Cinfv": 1,
		"Coov":  1,
		"D∞h":   2,
		"Dinfh": 2,
		"C2":    2,
		"C2v":   2,
		"C3h":   3,
		"c2v":   2,
		"D3":    6,
		"D3d":   6,
		"D6h":   12,
		"S4":    2,
		"S6":    3,
		"T":     12,
		"Td":    12,
		"Th":    12,
		"O":     24,
		"Oh":    24,
		"I":     60,
		"Ih":    60,
	}
	for symbol, want := range table {
		got, err := SymmetryNumber(symbol)
		if err != nil {
			Te.Errorf("SymmetryNumber(%q): %v", symbol, err)
			continue
		}
		if got != want {
			Te.Errorf("SymmetryNumber(%q) = %d, want %d", symbol, got, want)
		}
	}
}

func TestUnrecognizedGroupsFail(Te *testing.T) {
	for _, symbol := range []string{"Z9", "", "C", "D", "Qh", "C2x", "S1", "S3v", "K", "C0v"} {
		if _, err := SymmetryNumber(symbol); err == nil {
			Te.Errorf("SymmetryNumber(%q) should have failed", symbol)
		} else {
			fmt.Println("rejected as it should:", symbol, "->", err)
		}
	}
}

func TestGroupShape(Te *testing.T) {
	for symbol, linear := range map[string]bool{
		"C∞v": true,
		"D∞h": true,
		"C2v": false,
		"Td":  false,
	} {
		G, err := ParseGroup(symbol)
		if err != nil {
			Te.Fatal(err)
		}
		if G.Linear() != linear {
			Te.Errorf("%s: Linear() = %v, want %v", symbol, G.Linear(), linear)
		}
	}
	G, err := ParseGroup("D3d")
	if err != nil {
		Te.Fatal(err)
	}
	if G.Order() != 3 {
		Te.Errorf("D3d order = %d, want 3", G.Order())
	}
	if G.String() != "D3d" {
		Te.Errorf("D3d String() = %q", G.String())
	}
}

func TestZeroGroupPanics(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("SymmetryNumber on a zero Group should panic")
		}
	}()
	var G Group
	G.SymmetryNumber()
}
