// Package mmr implements an append only Merkle Mountain Range accumulator.
package mmr

/*

# Motivation for the choice of MMR's

Merkle Mountain Ranges are a method of working with binary merkle trees that
has compelling benefits for append only logs:

1. The structure is strictly append only and it is easy to prove this is the case
2. The position of a value in the tree is easily provable
3. The whole history is committed by one short root, and each append costs
   at most log2(width) hash operations
4. Inclusion proofs are logarithmic in the number of leaves and can be
   checked without access to the log

All of this is achieved mostly due to one simple property: trees only grow to
the right and nothing is ever inserted. The Mountain Range comes from the fact
that this requires us to maintain multiple 'peaks'. With previous peaks being
combined as new elements are added. It turns out it is very directly possible
to manage those peaks based on knowing only the total number of leaves.

# Numbering

Every node, leaf or interior, gets the next one based position when it is
created. The post order traversal (children first, left to right) of the MMR is
identical to this creation order:

	5                             31
	                     /                 \
	4             15                                30              46
	           /      \                       /           \       /     \
	3      7             14             22             29       38       45
	     /   \         /    \         /    \         /    \    /   \    /  \
	2   3     6      10      13     18     21      25     28  34   37  41  44   49
	   / \   / \    /  \    /  \   /  \   /  \    /  \   / \  / \ / \ / \  / \  / \
	1 1   2 4   5  8    9  11  12 16  17 19  20  23  24 26 27 ..  ..  ..  .. 47 48 50

Leaves have height 1. Heights, children, siblings and the peaks for a given
width are all recomputed arithmetically from positions (see indexheight.go
and peaks.go). Nothing about the shape of the tree is stored, the store is a
plain position to hash table that is written once per position.

# Appending

Appending is binary increment of the width. The new leaf is written at the
next position, and while the node following the one just written is taller,
the two equal height mountains to its left merge into it. Each merge is one
carry.

# Hashing

	leaf   = H(pos || value)
	branch = H(left || right)
	bag    = H(p1 || H(p2 || ... H(pk-1 || pk)))   peaks tallest first
	root   = H(width || bag)

Integers are 8 byte big endian. The order of the bagging fold is part of the
proof contract, builders and verifiers must agree on it exactly.

References:
  - https://github.com/mimblewimble/grin/blob/0ff6763ee64e5a14e70ddd4642b99789a1648a32/core/src/core/pmmr.rs#L18
  - https://github.com/opentimestamps/opentimestamps-server/blob/master/doc/merkle-mountain-range.md
  - https://github.com/Snowfork/solidity-mmr
*/
