package importer

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Checksum fingerprints a file's full text. The only contract is
// determinism: same bytes, same checksum. Together with the file name
// it identifies a stored local copy.
func Checksum(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}
