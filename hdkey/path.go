package hdkey

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParsePath parses a BIP32 path such as m/44'/60'/0'/0/0 into child indices.
// A trailing ' or h marks a hardened index.  "m" alone is the empty path.
func ParsePath(path string) ([]uint32, error) {
	segments := strings.Split(strings.TrimSpace(path), "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, errors.Wrapf(ErrInvalidPath, "%q must start with m", path)
	}

	indices := make([]uint32, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		hardened := false
		if strings.HasSuffix(seg, "'") || strings.HasSuffix(seg, "h") {
			hardened = true
			seg = seg[:len(seg)-1]
		}
		n, err := strconv.ParseUint(seg, 10, 32)
		if err != nil || n >= HardenedBit {
			return nil, errors.Wrapf(ErrInvalidPath, "bad segment %q in %q", seg, path)
		}
		i := uint32(n)
		if hardened {
			i |= HardenedBit
		}
		indices = append(indices, i)
	}
	return indices, nil
}
