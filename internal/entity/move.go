package entity

import "fmt"

// Move is one applied ply.
type Move struct {
	Position int  `json:"position"`
	Player   Cell `json:"player"`
}

func (that Move) String() string {
	return fmt.Sprintf("%s@%d", that.Player, that.Position)
}
