// Package gametree materializes the reachable game tree below a board.
//
// Move selection never needs the tree; it exists for inspection and export.
package gametree

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const rootMove = -1

// Node owns its board snapshot and its children. Children are not shared
// between nodes and hold no reference back to their parent.
type Node struct {
	Board    entity.Board
	Move     int         // position that produced Board, -1 for the root
	Player   entity.Cell // mark placed at Move, EmptyCell for the root
	Children []*Node
}

func NewRoot(board entity.Board) *Node {
	return &Node{
		Board:  board,
		Move:   rootMove,
		Player: entity.EmptyCell,
	}
}

func (that *Node) IsRoot() bool {
	return that.Move == rootMove
}

func (that *Node) Outcome() entity.Outcome {
	return entity.Evaluate(that.Board)
}

// Expand builds the complete tree below node with mover to play first.
func Expand(node *Node, mover entity.Cell) {
	ExpandDepth(node, mover, entity.CellCount)
}

// ExpandDepth is Expand limited to limit plies. Nodes at the limit stay unexpanded.
// Terminal boards are never expanded.
func ExpandDepth(node *Node, mover entity.Cell, limit int) {
	if limit <= 0 || !mover.IsPlayer() || node.Outcome().IsTerminal() {
		return
	}

	for _, pos := range node.Board.EmptyCells() {
		child := &Node{
			Board:  node.Board,
			Move:   pos,
			Player: mover,
		}
		child.Board[pos] = mover

		node.Children = append(node.Children, child)

		ExpandDepth(child, mover.Opponent(), limit-1)
	}
}

// Release drops the whole subtree below node.
func (that *Node) Release() {
	for _, child := range that.Children {
		child.Release()
	}

	that.Children = nil
}

// Count returns the number of nodes in the subtree, node included.
func (that *Node) Count() int {
	n := 1
	for _, child := range that.Children {
		n += child.Count()
	}

	return n
}

// Leaves returns the number of nodes without children.
func (that *Node) Leaves() int {
	if len(that.Children) == 0 {
		return 1
	}

	n := 0
	for _, child := range that.Children {
		n += child.Leaves()
	}

	return n
}

// Walk visits the subtree depth-first, parents before children.
// Returning false from visit skips the node's children.
func (that *Node) Walk(visit func(node *Node, depth int) bool) {
	that.walk(visit, 0)
}

func (that *Node) walk(visit func(node *Node, depth int) bool, depth int) {
	if !visit(that, depth) {
		return
	}

	for _, child := range that.Children {
		child.walk(visit, depth+1)
	}
}
