package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMinorMajorRoundTrip(t *testing.T) {
	for _, amount := range []int64{1, 50, 1999, 1_000_000_000_000, 999_999_999_999_99} {
		major := MinorToMajor(amount, "BRL")
		got, err := MajorToMinor(major, "BRL")
		if err != nil || got != amount {
			t.Fatalf("amount %d: got %d err=%v", amount, got, err)
		}
	}

	if s := MinorToMajor(1999, "usd").String(); s != "19.99" {
		t.Fatalf("expected 19.99, got %s", s)
	}
	if s := MinorToMajor(1500, "CLP").String(); s != "1500" {
		t.Fatalf("expected zero-decimal currency unchanged, got %s", s)
	}
}

func TestMajorToMinor_RejectsSubUnitPrecision(t *testing.T) {
	if _, err := MajorToMinor(decimal.RequireFromString("10.005"), "BRL"); err == nil {
		t.Fatalf("expected error for sub-cent amount")
	}
	if _, err := MajorToMinor(decimal.RequireFromString("10.5"), "CLP"); err == nil {
		t.Fatalf("expected error for fractional peso")
	}
}

func TestMajorToMinor_ExtremeExponents(t *testing.T) {
	start := time.Now()
	if got, err := MajorToMinor(decimal.RequireFromString("0e-2000000000"), "BRL"); err != nil || got != 0 {
		t.Fatalf("expected zero, got %d err=%v", got, err)
	}
	if _, err := MajorToMinor(decimal.RequireFromString("1e99999999"), "BRL"); err == nil {
		t.Fatalf("expected overflow error")
	}
	if _, err := MajorToMinor(decimal.RequireFromString("1e-99999999"), "BRL"); err == nil {
		t.Fatalf("expected precision error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("conversion took %s", elapsed)
	}
}
