package service

import (
	"strconv"
	"testing"
)

func TestGenerateOTP_Format(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP returned error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 characters, got %q", code)
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code is not numeric: %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code out of range: %d", n)
		}
	}
}

func TestGenerateOTP_Varies(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generateOTP returned error: %v", err)
		}
		seen[code] = struct{}{}
	}
	// 50 draws from 900000 values colliding down to a single code would
	// mean a broken source, not bad luck.
	if len(seen) < 2 {
		t.Fatalf("expected varied codes, got %d distinct", len(seen))
	}
}
