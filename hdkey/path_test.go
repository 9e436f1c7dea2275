package hdkey

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestParsePath(t *testing.T) {
	testCases := []struct {
		path string
		want []uint32
	}{
		{"m", []uint32{}},
		{"m/0", []uint32{0}},
		{"m/0'/1", []uint32{HardenedBit, 1}},
		{"m/44h/60h/0h/0/0", []uint32{44 | HardenedBit, 60 | HardenedBit, HardenedBit, 0, 0}},
		{"m/2645'/579218131'/1393043894'/0'/0'/0", []uint32{
			2645 | HardenedBit, 579218131 | HardenedBit, 1393043894 | HardenedBit,
			HardenedBit, HardenedBit, 0}},
	}
	for _, tc := range testCases {
		got, err := ParsePath(tc.path)
		if err != nil {
			t.Fatalf("ParsePath(%s): %v", tc.path, err)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParsePath(%s) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, path := range []string{"", "0/1", "m/", "m/x", "m/-1", "m/2147483648", "m/1''"} {
		if _, err := ParsePath(path); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ParsePath(%q): expected ErrInvalidPath, got %v", path, err)
		}
	}
}
