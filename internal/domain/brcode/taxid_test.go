package brcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Xausdorf/pix-brcode/internal/domain/brcode"
)

func TestIsCPF(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "65952998607", want: true},
		{in: "52998224725", want: true},
		{in: "529.982.247-25", want: true},
		{in: "11144477735", want: true},
		{in: "52998224724", want: false},
		{in: "11111111111", want: false},
		{in: "00000000000", want: false},
		{in: "5299822472", want: false},
		{in: "529982247250", want: false},
		{in: "529/982/247-25", want: false},
		{in: "5299822472a", want: false},
		{in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, brcode.IsCPF(tt.in))
		})
	}
}

func TestIsCNPJ(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "99336905000102", want: true},
		{in: "11222333000181", want: true},
		{in: "11.222.333/0001-81", want: true},
		{in: "11222333000182", want: false},
		{in: "11222333000191", want: false},
		{in: "22222222222222", want: false},
		{in: "1122233300018", want: false},
		{in: "11 222 333 0001 81", want: false},
		{in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, brcode.IsCNPJ(tt.in))
		})
	}
}
