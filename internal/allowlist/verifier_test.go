package allowlist_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-drop-engine/internal/allowlist"
)

func testEntries(n int) []allowlist.Entry {
	entries := make([]allowlist.Entry, n)
	for i := range entries {
		var addr common.Address
		addr[19] = byte(i + 1)
		entries[i] = allowlist.Entry{
			Address:      addr,
			MaxQuantity:  uint64(i + 1),
			PricePerItem: uint256.NewInt(uint64(1000 * (i + 1))),
		}
	}
	return entries
}

func TestVerify_AllEntriesProve(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 8, 17} {
		entries := testEntries(size)
		tree, err := allowlist.NewTree(entries)
		require.NoError(t, err)

		for i, e := range entries {
			proof, err := tree.Proof(i)
			require.NoError(t, err)

			leaf := allowlist.Leaf(e.Address, e.MaxQuantity, e.PricePerItem)
			assert.True(t, allowlist.Verify(tree.Root(), leaf, proof),
				"entry %d of %d-entry tree must verify", i, size)
		}
	}
}

func TestVerify_WrongClaimFails(t *testing.T) {
	entries := testEntries(8)
	tree, err := allowlist.NewTree(entries)
	require.NoError(t, err)

	proof, err := tree.Proof(3)
	require.NoError(t, err)
	e := entries[3]

	// inflated quota
	leaf := allowlist.Leaf(e.Address, e.MaxQuantity+1, e.PricePerItem)
	assert.False(t, allowlist.Verify(tree.Root(), leaf, proof))

	// discounted price
	leaf = allowlist.Leaf(e.Address, e.MaxQuantity, uint256.NewInt(1))
	assert.False(t, allowlist.Verify(tree.Root(), leaf, proof))

	// different address
	var other common.Address
	other[0] = 0xff
	leaf = allowlist.Leaf(other, e.MaxQuantity, e.PricePerItem)
	assert.False(t, allowlist.Verify(tree.Root(), leaf, proof))
}

func TestVerify_TamperedProofFails(t *testing.T) {
	entries := testEntries(8)
	tree, err := allowlist.NewTree(entries)
	require.NoError(t, err)

	e := entries[5]
	leaf := allowlist.Leaf(e.Address, e.MaxQuantity, e.PricePerItem)

	proof, err := tree.Proof(5)
	require.NoError(t, err)
	require.True(t, allowlist.Verify(tree.Root(), leaf, proof))

	// single bit flip in a proof element
	tampered := make([]common.Hash, len(proof))
	copy(tampered, proof)
	tampered[1][0] ^= 0x01
	assert.False(t, allowlist.Verify(tree.Root(), leaf, tampered))
}

func TestVerify_MalformedProofReturnsFalse(t *testing.T) {
	entries := testEntries(4)
	tree, err := allowlist.NewTree(entries)
	require.NoError(t, err)

	e := entries[0]
	leaf := allowlist.Leaf(e.Address, e.MaxQuantity, e.PricePerItem)
	proof, err := tree.Proof(0)
	require.NoError(t, err)

	// truncated
	assert.False(t, allowlist.Verify(tree.Root(), leaf, proof[:1]))
	// over-long
	assert.False(t, allowlist.Verify(tree.Root(), leaf, append(append([]common.Hash{}, proof...), common.Hash{})))
	// empty proof against a multi-leaf root
	assert.False(t, allowlist.Verify(tree.Root(), leaf, nil))
}

func TestVerify_SingleEntryTree(t *testing.T) {
	entries := testEntries(1)
	tree, err := allowlist.NewTree(entries)
	require.NoError(t, err)

	e := entries[0]
	leaf := allowlist.Leaf(e.Address, e.MaxQuantity, e.PricePerItem)

	proof, err := tree.Proof(0)
	require.NoError(t, err)
	assert.Empty(t, proof)
	assert.True(t, allowlist.Verify(tree.Root(), leaf, proof))
	assert.Equal(t, leaf, tree.Root())
}

func TestNewTree_Empty(t *testing.T) {
	_, err := allowlist.NewTree(nil)
	assert.Error(t, err)
}

func TestProofFor_UnknownAddress(t *testing.T) {
	tree, err := allowlist.NewTree(testEntries(4))
	require.NoError(t, err)

	var unknown common.Address
	unknown[0] = 0xaa
	_, err = tree.ProofFor(unknown)
	assert.Error(t, err)
}
