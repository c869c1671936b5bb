// Package allowlist implements the presale membership proof scheme: a binary
// keccak-256 hash tree over (address, quota, price) entries, with sorted-pair
// node hashing so proof verification is independent of which side of the tree
// a sibling came from.
package allowlist

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Leaf computes the leaf hash binding an address to its presale quota and
// per-item price. The encoding is three 32-byte words: the address
// left-padded, the quota and the price big-endian.
func Leaf(addr common.Address, maxQuantity uint64, pricePerItem *uint256.Int) common.Hash {
	var buf [96]byte
	copy(buf[12:32], addr.Bytes())

	quota := uint256.NewInt(maxQuantity).Bytes32()
	copy(buf[32:64], quota[:])

	price := pricePerItem.Bytes32()
	copy(buf[64:96], price[:])

	return crypto.Keccak256Hash(buf[:])
}

// Verify recomputes the root from leaf and proof and reports whether it
// matches the committed root. Malformed or wrong-length proofs simply fail to
// match; Verify never panics and has no side effects.
func Verify(root common.Hash, leaf common.Hash, proof []common.Hash) bool {
	computed := leaf
	for _, sibling := range proof {
		computed = hashPair(computed, sibling)
	}
	return computed == root
}

// hashPair combines two nodes with the smaller operand first
func hashPair(a, b common.Hash) common.Hash {
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}
	return crypto.Keccak256Hash(a[:], b[:])
}
