package main

import (
	"fmt"

	"github.com/muli0525/xqpro/internal/engine"
	"github.com/muli0525/xqpro/internal/xiangqi"
)

func main() {
	pos := xiangqi.NewInitialPosition()
	fmt.Println("FEN:", pos.Encode())

	moves := pos.GenerateMoves()
	fmt.Println("Pseudo legal moves:", len(moves))

	res := engine.NewEngine().Search(pos, engine.SearchConfig{MaxDepth: 1})
	if res.BestMove != nil {
		fmt.Printf("depth-1 best: %s score=%d nodes=%d\n",
			xiangqi.MoveToCode(*res.BestMove), res.Score, res.Nodes)
	}
}
