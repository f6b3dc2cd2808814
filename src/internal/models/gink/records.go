package gink

import (
	"fmt"
	"strings"

	"google.golang.org/protobuf/proto"
)

// ChangeSetOption sets an optional ChangeSet field at construction time
type ChangeSetOption func(*ChangeSet)

// WithComment attaches a free-form comment to the change set
func WithComment(comment string) ChangeSetOption {
	return func(cs *ChangeSet) {
		cs.Comment = comment
	}
}

// WithChain places the change set on a chain identified by medallion and chain start,
// directly after the change set stamped previous.
func WithChain(medallion, chainStart, previous uint64) ChangeSetOption {
	return func(cs *ChangeSet) {
		cs.Medallion = medallion
		cs.ChainStart = chainStart
		cs.PreviousTimestamp = previous
	}
}

// NewChangeSet builds a change set stamped with timestamp. Fields not set by an
// option keep their zero value. The timestamp is not validated.
func NewChangeSet(timestamp uint64, opts ...ChangeSetOption) *ChangeSet {
	cs := &ChangeSet{Timestamp: timestamp}
	for _, opt := range opts {
		opt(cs)
	}
	return cs
}

// MuidText renders a muid as upper-case hex: 14 digits of timestamp, 13 of
// medallion and 5 of offset, joined by sep.
func MuidText(m *Muid, sep string) string {
	parts := []string{
		fmt.Sprintf("%014X", uint64(m.GetTimestamp())),
		fmt.Sprintf("%013X", uint64(m.GetMedallion())),
		fmt.Sprintf("%05X", m.GetOffset()),
	}
	return strings.Join(parts, sep)
}

// Marshal encodes a message deterministically for the peer protocol
func Marshal(m proto.Message) ([]byte, error) {
	data, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", m.ProtoReflect().Descriptor().FullName(), err)
	}
	return data, nil
}
