package report

import "github.com/minio/highwayhash"

// hashKey is a fixed 32-byte HighwayHash key: content hashing here is
// for cheap staleness detection, not security, so a fixed key is fine.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// ContentHash fingerprints source bytes so a caller can tell two
// AnalysisResults for the same path apart without re-walking either.
func ContentHash(data []byte) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(data); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
