package main

import (
	"flag"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/muli0525/xqpro/internal/engine"
	"github.com/muli0525/xqpro/internal/xiangqi"
)

func main() {
	totalGames := flag.Int("games", 4, "number of games to play")
	depth := flag.Int("depth", 4, "search depth")
	timeMs := flag.Int64("time", 1000, "time budget per move (ms)")
	workers := flag.Int("workers", 2, "games in flight at once")
	maxMoves := flag.Int("maxmoves", 200, "max plies before calling it a draw")
	flag.Parse()

	var redWins, blackWins, draws int64
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(*workers)
	for i := 0; i < *totalGames; i++ {
		i := i
		g.Go(func() error {
			winner := playGame(*depth, time.Duration(*timeMs)*time.Millisecond, *maxMoves)
			switch winner {
			case xiangqi.Red:
				atomic.AddInt64(&redWins, 1)
			case xiangqi.Black:
				atomic.AddInt64(&blackWins, 1)
			default:
				atomic.AddInt64(&draws, 1)
			}
			log.Printf("game %d finished, winner=%v", i+1, winner)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("games=%d red=%d black=%d draw=%d elapsed=%v\n",
		*totalGames, redWins, blackWins, draws, time.Since(start))
}

// 自对弈一盘；双方各用一个独立的引擎实例，棋盘不跨盘共享。
func playGame(depth int, budget time.Duration, maxMoves int) xiangqi.Side {
	pos := xiangqi.NewInitialPosition()
	engines := map[xiangqi.Side]*engine.Engine{
		xiangqi.Red:   engine.NewEngine(),
		xiangqi.Black: engine.NewEngine(),
	}

	for ply := 0; ply < maxMoves; ply++ {
		side := pos.SideToMove
		res := engines[side].Search(pos, engine.SearchConfig{
			MaxDepth:   depth,
			TimeBudget: budget,
		})
		if res.BestMove == nil {
			// 无招即负
			return xiangqi.Opponent(side)
		}
		mv := *res.BestMove
		pos.MakeMove(&mv)

		if !pos.GeneralExists(pos.SideToMove) {
			// 将帅被吃，走子的一方赢
			return side
		}
	}
	return xiangqi.NoSide
}
