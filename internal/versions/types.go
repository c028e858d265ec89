// Package versions implements the in-memory version chain behind codenav.
//
// Every saved snapshot of a code draft is a Node stored in an append-only
// arena (Chain). Nodes reference their neighbours by NodeID instead of by
// pointer, so the chain has no ownership cycles. A Session owns one chain,
// the node currently on display and the pending draft fields, and exposes the
// navigation and save operations the presentation layer dispatches.
//
// The package provides:
// - Node: immutable code snapshot with previous/next links by ID
// - Chain: append-only arena with forward/backward walks
// - Session: current-node pointer, draft fields and user intents
// - Language: the closed set of supported language tags
package versions

import (
	"bytes"
	"encoding/binary"
	"time"

	"lukechampine.com/blake3"
)

// NodeID addresses a node inside its Chain. IDs are dense and stable:
// the n-th node ever created has ID n-1.
type NodeID int

// NoNode represents the absence of a link.
const NoNode NodeID = -1

// Valid reports whether id refers to a node at all.
func (id NodeID) Valid() bool {
	return id >= 0
}

// Node is a single saved version of a code draft.
// Content fields are set once at creation; only PrevID and NextID are
// written afterwards, and only by the owning Chain.
type Node struct {
	ID          NodeID
	Code        string
	Language    Language
	Description string
	CreatedAt   string    // display-formatted creation time
	Created     time.Time // raw creation time
	Fingerprint [32]byte  // BLAKE3-256 of CanonicalBytes
	PrevID      NodeID
	NextID      NodeID
}

// HasPrevious reports whether the node links back to an older version.
func (n Node) HasPrevious() bool {
	return n.PrevID.Valid()
}

// HasNext reports whether the node links forward to a newer version.
func (n Node) HasNext() bool {
	return n.NextID.Valid()
}

// IsRoot reports whether n is the first node of its chain.
func (n Node) IsRoot() bool {
	return n.ID == 0 && !n.PrevID.Valid()
}

// CanonicalBytes returns the stable byte encoding of the node's content.
// Links are not part of the encoding: they may change after creation.
//
// Canonical encoding format (version 1):
//
//	uvarint(1)                  // version
//	uvarint(ID)                 // node id
//	uvarint(len(Language))      // language tag length
//	bytes(Language)             // language tag
//	uvarint(len(Code))          // code length
//	bytes(Code)                 // code
//	uvarint(len(Description))   // description length
//	bytes(Description)          // description
//	varint(Created.UnixNano())  // creation time (signed)
func (n *Node) CanonicalBytes() []byte {
	var buf bytes.Buffer
	scratch := make([]byte, binary.MaxVarintLen64)

	putUvarint := func(v uint64) {
		k := binary.PutUvarint(scratch, v)
		buf.Write(scratch[:k])
	}
	putString := func(s string) {
		putUvarint(uint64(len(s)))
		buf.WriteString(s)
	}

	putUvarint(1)
	putUvarint(uint64(n.ID))
	putString(string(n.Language))
	putString(n.Code)
	putString(n.Description)

	k := binary.PutVarint(scratch, n.Created.UnixNano())
	buf.Write(scratch[:k])

	return buf.Bytes()
}

// computeFingerprint hashes the canonical encoding with BLAKE3-256.
func (n *Node) computeFingerprint() [32]byte {
	return blake3.Sum256(n.CanonicalBytes())
}
