package domain_test

import (
	"testing"

	"github.com/hernifleitas/sos-delivery-sub000/internal/domain"
)

func TestNormalizeType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want domain.PingType
	}{
		{"normal", domain.TypeNormal},
		{"", domain.TypeNormal},
		{"refresh", domain.TypeRefresh},
		{"robbery", domain.TypeRobbery},
		{"ROBBERY", domain.TypeRobbery},
		{"  accident  ", domain.TypeAccident},
		{"flat-tire", domain.TypeFlatTire},
		{"flat_tire", domain.TypeFlatTire},
		{"flat tire", domain.TypeFlatTire},
		{"flattire", domain.TypeFlatTire},
		{"Flat Tire", domain.TypeFlatTire},
		{"hurricane", domain.TypeNormal},
		{"sos", domain.TypeNormal},
	}
	for _, tc := range cases {
		if got := domain.NormalizeType(tc.raw); got != tc.want {
			t.Errorf("NormalizeType(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestPingTypeIsAlert(t *testing.T) {
	t.Parallel()

	for _, typ := range []domain.PingType{domain.TypeRobbery, domain.TypeAccident, domain.TypeFlatTire} {
		if !typ.IsAlert() {
			t.Errorf("%q should be an alert kind", typ)
		}
	}
	for _, typ := range []domain.PingType{domain.TypeNormal, domain.TypeRefresh, domain.PingType("")} {
		if typ.IsAlert() {
			t.Errorf("%q should not be an alert kind", typ)
		}
	}
}
