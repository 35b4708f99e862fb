package gametree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_FullTree(t *testing.T) {
	if testing.Short() {
		t.Skip("full tree enumeration allocates half a million nodes")
	}

	// Given: the root of an empty board
	root := NewRoot(entity.Board{})

	// When: expanding with X to move
	Expand(root, entity.PlayerX)

	// Then: every reachable game is present
	assert.Equal(t, 549946, root.Count())
	assert.Equal(t, 255168, root.Leaves())

	root.Release()
	assert.Equal(t, 1, root.Count())
}

func TestExpandDepth(t *testing.T) {
	t.Run("One ply", func(t *testing.T) {
		// Given: the root of an empty board
		root := NewRoot(entity.Board{})

		// When: expanding a single ply
		ExpandDepth(root, entity.PlayerX, 1)

		// Then: there is one child per cell, in row-major order
		require.Len(t, root.Children, 9)
		for i, child := range root.Children {
			want := entity.Board{}
			want[i] = entity.PlayerX

			assert.Equal(t, i, child.Move)
			assert.Equal(t, entity.PlayerX, child.Player)
			assert.Empty(t, child.Children)
			if diff := cmp.Diff(want, child.Board); diff != "" {
				t.Errorf("child %d board mismatch (-want +got):\n%s", i, diff)
			}
		}
	})

	t.Run("Two plies", func(t *testing.T) {
		root := NewRoot(entity.Board{})

		ExpandDepth(root, entity.PlayerX, 2)

		assert.Equal(t, 1+9+72, root.Count())
		assert.Equal(t, 72, root.Leaves())
	})

	t.Run("Zero limit leaves the node unexpanded", func(t *testing.T) {
		root := NewRoot(entity.Board{})

		ExpandDepth(root, entity.PlayerX, 0)

		assert.Empty(t, root.Children)
	})
}

func TestExpand_Terminal(t *testing.T) {
	// Given: a board X has already won
	root := NewRoot(entity.MustParseBoard("XXX OO* ***"))

	// When: expanding it
	Expand(root, entity.PlayerO)

	// Then: the node stays a leaf
	assert.Empty(t, root.Children)
	assert.True(t, root.IsRoot())
	assert.Equal(t, entity.XWins, root.Outcome())
}

func TestExpand_Endgame(t *testing.T) {
	// Given: two empty cells left with X to move
	root := NewRoot(entity.MustParseBoard("XOX XOO O**"))

	// When: expanding the full tree
	Expand(root, entity.PlayerX)

	// Then: X at 7 leads to a draw and X at 8 lets O win at 7
	require.Len(t, root.Children, 2)

	atSeven, atEight := root.Children[0], root.Children[1]
	assert.Equal(t, 7, atSeven.Move)
	require.Len(t, atSeven.Children, 1)
	assert.Equal(t, entity.Draw, atSeven.Children[0].Outcome())

	assert.Equal(t, 8, atEight.Move)
	require.Len(t, atEight.Children, 1)
	assert.Equal(t, entity.OWins, atEight.Children[0].Outcome())

	assert.Equal(t, 5, root.Count())
	assert.Equal(t, 2, root.Leaves())
}

func TestExpand_ChildInvariants(t *testing.T) {
	// Given: a tree three plies deep
	root := NewRoot(entity.MustParseBoard("X** *O* ***"))
	ExpandDepth(root, entity.PlayerX, 3)

	// Then: each child adds exactly one mark to its parent's board
	root.Walk(func(node *Node, depth int) bool {
		if depth < 3 && !node.Outcome().IsTerminal() {
			assert.Len(t, node.Children, len(node.Board.EmptyCells()))
		}

		for _, child := range node.Children {
			assert.Equal(t, entity.EmptyCell, node.Board[child.Move])

			diff := 0
			for pos := range child.Board {
				if child.Board[pos] != node.Board[pos] {
					diff++
					assert.Equal(t, child.Move, pos)
					assert.Equal(t, child.Player, child.Board[pos])
				}
			}
			assert.Equal(t, 1, diff)
		}

		return true
	})
}

func TestNode_Release(t *testing.T) {
	// Given: an expanded tree
	root := NewRoot(entity.Board{})
	ExpandDepth(root, entity.PlayerO, 2)
	child := root.Children[0]

	// When: releasing the root
	root.Release()

	// Then: no children remain at any level
	assert.Nil(t, root.Children)
	assert.Nil(t, child.Children)
	assert.Equal(t, 1, root.Count())
}

func TestNode_Walk(t *testing.T) {
	root := NewRoot(entity.Board{})
	ExpandDepth(root, entity.PlayerX, 2)

	// When: the visitor refuses to descend below the first ply
	visited := 0
	root.Walk(func(_ *Node, depth int) bool {
		visited++
		return depth < 1
	})

	// Then: grandchildren are skipped
	assert.Equal(t, 1+9, visited)
}
