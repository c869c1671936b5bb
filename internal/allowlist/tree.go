package allowlist

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Entry is one allow-list member: an address, its presale quota and the
// per-item price it was promised.
type Entry struct {
	Address      common.Address
	MaxQuantity  uint64
	PricePerItem *uint256.Int
}

// Tree is a keccak-256 merkle tree over allow-list entries. It exists for
// owner tooling and tests; the engine itself only ever verifies proofs against
// the committed root. A lone node at the end of a level is promoted unchanged,
// which matches Verify's pair-by-pair recomputation.
type Tree struct {
	entries []Entry
	layers  [][]common.Hash
}

// NewTree builds a tree from the given entries. At least one entry is required.
func NewTree(entries []Entry) (*Tree, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("allowlist tree requires at least one entry")
	}

	leaves := make([]common.Hash, len(entries))
	for i, e := range entries {
		leaves[i] = Leaf(e.Address, e.MaxQuantity, e.PricePerItem)
	}

	layers := [][]common.Hash{leaves}
	current := leaves
	for len(current) > 1 {
		next := make([]common.Hash, 0, (len(current)+1)/2)
		for i := 0; i < len(current); i += 2 {
			if i+1 == len(current) {
				// odd node, promote
				next = append(next, current[i])
				continue
			}
			next = append(next, hashPair(current[i], current[i+1]))
		}
		layers = append(layers, next)
		current = next
	}

	return &Tree{entries: entries, layers: layers}, nil
}

// Root returns the tree's commitment
func (t *Tree) Root() common.Hash {
	top := t.layers[len(t.layers)-1]
	return top[0]
}

// Proof returns the sibling path for the entry at index i, ordered leaf-first
func (t *Tree) Proof(i int) ([]common.Hash, error) {
	if i < 0 || i >= len(t.entries) {
		return nil, fmt.Errorf("proof index %d out of range", i)
	}

	var proof []common.Hash
	idx := i
	for _, layer := range t.layers[:len(t.layers)-1] {
		sibling := idx ^ 1
		if sibling < len(layer) {
			proof = append(proof, layer[sibling])
		}
		idx /= 2
	}
	return proof, nil
}

// ProofFor returns the proof for the first entry matching addr
func (t *Tree) ProofFor(addr common.Address) ([]common.Hash, error) {
	for i, e := range t.entries {
		if e.Address == addr {
			return t.Proof(i)
		}
	}
	return nil, fmt.Errorf("address %s not in allowlist", addr.Hex())
}
