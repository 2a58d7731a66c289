package dex

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ChecksumVersion changes whenever the canonical representation does.
const ChecksumVersion = 1

// Checksum identifies the content a mod sees, independent of where it was
// loaded from.
type Checksum struct {
	Hash    string // hex SHA-256
	Records int
	Version int
}

// Checksum hashes every record visible to this mod: kinds in AllKinds order,
// ids sorted, each record as JSON. Handlers are not part of the hash.
func (d *Dex) Checksum() (*Checksum, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "MOD:%s|%d\n", d.name, d.gen)

	records := 0
	for _, kind := range AllKinds {
		ids := d.IDs(kind)
		fmt.Fprintf(&buf, "KIND:%s|%d\n", kind, len(ids))
		for _, key := range ids {
			rec, ok := d.lookup(kind, key)
			if !ok {
				continue
			}
			data, err := json.Marshal(rec)
			if err != nil {
				return nil, fmt.Errorf("failed to encode %s %q: %w", kind, key, err)
			}
			buf.WriteString(string(key))
			buf.WriteByte('=')
			buf.Write(data)
			buf.WriteByte('\n')
			records++
		}
	}

	hash := sha256.New()
	if _, err := hash.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to compute hash: %w", err)
	}
	return &Checksum{
		Hash:    hex.EncodeToString(hash.Sum(nil)),
		Records: records,
		Version: ChecksumVersion,
	}, nil
}

// VerifyChecksum reports whether this mod's content hashes to expected.
func (d *Dex) VerifyChecksum(expected string) (bool, error) {
	computed, err := d.Checksum()
	if err != nil {
		return false, fmt.Errorf("failed to compute checksum: %w", err)
	}
	return computed.Hash == expected, nil
}
