// Copyright (c) 2025-2026 Jean Aguiluz
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"reflect"
	"testing"
)

func TestParseIncludes(t *testing.T) {
	tests := []struct {
		name     string
		includes string
		expected []string
	}{
		{"empty", "", nil},
		{"single item", "Animación", []string{"Animación"}},
		{"comma separated", "Animación, Pintacaritas, Globoflexia", []string{"Animación", "Pintacaritas", "Globoflexia"}},
		{"newline separated", "Animación\nPintacaritas\nGloboflexia", []string{"Animación", "Pintacaritas", "Globoflexia"}},
		{"windows newlines", "Animación\r\nPintacaritas", []string{"Animación", "Pintacaritas"}},
		{"mixed separators", "Animación, Pintacaritas\nGloboflexia", []string{"Animación", "Pintacaritas", "Globoflexia"}},
		{"blank entries dropped", "Animación,,  ,\n\nPintacaritas", []string{"Animación", "Pintacaritas"}},
		{"whitespace trimmed", "  Animación  ,  Pintacaritas  ", []string{"Animación", "Pintacaritas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIncludes(tt.includes)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseIncludes(%q) = %v, want %v", tt.includes, got, tt.expected)
			}
		})
	}
}

func TestIncludesList(t *testing.T) {
	pkg := &AnimationPackage{Includes: "Animación 2 horas\nTorta temática"}
	got := pkg.IncludesList()
	want := []string{"Animación 2 horas", "Torta temática"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IncludesList() = %v, want %v", got, want)
	}
}
