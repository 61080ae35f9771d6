package domain

// VersionRecord holds the last committed publish state for a single package.
// Version and ContentHash are always updated together; a record never carries
// a hash from a different version.
type VersionRecord struct {
	Version     int    `json:"version"`
	ContentHash string `json:"content_hash"`
}

// VersionMap maps a package key to its last committed version record.
// The whole map is the unit of persistence.
type VersionMap map[string]VersionRecord

// Clone returns a shallow copy of the map. Records are value types, so the
// copy is safe to mutate independently.
func (m VersionMap) Clone() VersionMap {
	out := make(VersionMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
