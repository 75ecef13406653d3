package main

import (
	"testing"
)

// TestParseAddr_Literals checks the accepted address notations.
func TestParseAddr_Literals(t *testing.T) {
	cases := []struct {
		in   string
		want uintptr
	}{
		{"0x0900_0000", 0x0900_0000},
		{"0x1000", 0x1000},
		{"4096", 4096},
		{"0o777", 0o777},
	}
	for _, tc := range cases {
		got, err := parseAddr(tc.in)
		if err != nil {
			t.Errorf("parseAddr(%q) error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseAddr(%q) = %#x, want %#x", tc.in, got, tc.want)
		}
	}
}

// TestParseAddr_Invalid checks malformed addresses are refused.
func TestParseAddr_Invalid(t *testing.T) {
	for _, in := range []string{"", "zero", "0x", "-4", "0x1_0000_0000_0000_0000_0"} {
		if _, err := parseAddr(in); err == nil {
			t.Errorf("parseAddr(%q) accepted, want error", in)
		}
	}
}

// TestCheckWidth covers the closed width set.
func TestCheckWidth(t *testing.T) {
	for _, w := range []int{8, 16, 32, 64} {
		if err := checkWidth(w); err != nil {
			t.Errorf("checkWidth(%d) = %v, want nil", w, err)
		}
	}
	for _, w := range []int{0, 1, 7, 24, 128} {
		if err := checkWidth(w); err == nil {
			t.Errorf("checkWidth(%d) accepted, want error", w)
		}
	}
}

// TestParseValue_WidthBound checks that values must fit the access width.
func TestParseValue_WidthBound(t *testing.T) {
	if v, err := parseValue("0xFF", 8); err != nil || v != 0xFF {
		t.Errorf("parseValue(0xFF, 8) = %#x, %v", v, err)
	}
	if _, err := parseValue("0x100", 8); err == nil {
		t.Error("parseValue(0x100, 8) accepted, want error")
	}
	if v, err := parseValue("0xFFFF_FFFF_FFFF_FFFF", 64); err != nil || v != ^uint64(0) {
		t.Errorf("parseValue(max, 64) = %#x, %v", v, err)
	}
	if _, err := parseValue("", 32); err == nil {
		t.Error("parseValue(\"\") accepted, want error")
	}
}
