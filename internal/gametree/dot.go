package gametree

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const graphName = "G"

// ToDot renders the subtree below root as a directed Graphviz graph. Nodes are
// labelled with their board and edges with the move that produced the child.
func ToDot(root *Node) (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return "", fmt.Errorf("failed to name graph: %w", err)
	}

	if err := g.SetDir(true); err != nil {
		return "", fmt.Errorf("failed to set graph direction: %w", err)
	}

	ids := make(map[*Node]string)

	var err error
	root.Walk(func(node *Node, _ int) bool {
		if err != nil {
			return false
		}

		id := fmt.Sprintf("n%d", len(ids))
		ids[node] = id

		attrs := map[string]string{
			"shape":    "box",
			"fontname": "Monaco",
			"label":    nodeLabel(node),
		}
		if node.Outcome().IsTerminal() {
			attrs["color"] = "red"
		}

		if err = g.AddNode(graphName, id, attrs); err != nil {
			err = fmt.Errorf("failed to add node %s: %w", id, err)
		}

		return true
	})
	if err != nil {
		return "", err
	}

	root.Walk(func(node *Node, _ int) bool {
		if err != nil {
			return false
		}

		for _, child := range node.Children {
			attrs := map[string]string{
				"label": quote(entity.Move{Position: child.Move, Player: child.Player}.String()),
			}
			if err = g.AddEdge(ids[node], ids[child], true, attrs); err != nil {
				err = fmt.Errorf("failed to add edge %s -> %s: %w", ids[node], ids[child], err)
				return false
			}
		}

		return true
	})
	if err != nil {
		return "", err
	}

	return g.String(), nil
}

// nodeLabel draws the board one row per line, followed by the outcome of terminal boards.
func nodeLabel(node *Node) string {
	board := node.Board

	rows := make([]string, 0, entity.Side+1)
	for row := 0; row < entity.Side; row++ {
		var sb strings.Builder
		for col := 0; col < entity.Side; col++ {
			sb.WriteString(board[row*entity.Side+col].String())
		}
		rows = append(rows, sb.String())
	}

	if outcome := node.Outcome(); outcome.IsTerminal() {
		rows = append(rows, outcome.String())
	}

	return quote(strings.Join(rows, `\n`))
}

func quote(s string) string {
	return `"` + s + `"`
}
