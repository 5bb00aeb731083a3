package opc

import (
	"encoding/hex"
	"runtime"

	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"
)

// Digest is a BLAKE3-256 content hash.
type Digest [32]byte

// String returns the digest as lowercase hex.
func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// DigestBytes hashes data.
func DigestBytes(data []byte) Digest { return blake3.Sum256(data) }

// PartDigest hashes a part's blob followed by its serialized
// relationships, so two parts with equal digests have the same content
// and the same outgoing edges.
func PartDigest(p Part) (Digest, error) {
	blob, err := p.Blob()
	if err != nil {
		return Digest{}, err
	}
	h := blake3.New()
	_, _ = h.Write(blob)
	if p.Rels().Len() > 0 {
		rels, err := p.Rels().XML()
		if err != nil {
			return Digest{}, err
		}
		_, _ = h.Write(rels)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d, nil
}

// Fingerprint maps the partname of every reachable part to its digest.
// Parts are serialized and hashed in parallel.
func Fingerprint(pkg *Package) (map[PackURI]Digest, error) {
	parts := pkg.Parts()
	digests := make([]Digest, len(parts))

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, part := range parts {
		eg.Go(func() error {
			d, err := PartDigest(part)
			if err != nil {
				return wrapPartError(part.Partname(), err)
			}
			digests[i] = d
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[PackURI]Digest, len(parts))
	for i, part := range parts {
		out[part.Partname()] = digests[i]
	}
	return out, nil
}
