// Command sqwadsim plays many seeded gameplay sessions without a window and
// reports how long each party survived.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"runtime"

	"github.com/milk9111/sqwad/ecs"
	"github.com/milk9111/sqwad/ecs/component"
	"github.com/milk9111/sqwad/input"
	"github.com/milk9111/sqwad/screen"
	"golang.org/x/sync/errgroup"
)

const tick = 1.0 / 60

type result struct {
	Seed     uint64
	Survived float64
	Kills    int
	Shots    int
	Defeated bool
}

func main() {
	runs := flag.Int("runs", 8, "number of sessions")
	workers := flag.Int("workers", runtime.NumCPU(), "sessions run at once")
	seconds := flag.Float64("seconds", 120, "simulated seconds per session")
	seed := flag.Uint64("seed", 1, "seed of the first session")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *runs, *workers, *seconds, *seed); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, runs, workers int, seconds float64, seed uint64) error {
	if runs <= 0 || seconds <= 0 {
		return fmt.Errorf("runs and seconds must be positive")
	}

	results := make([]result, runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range runs {
		g.Go(func() error {
			r, err := simulate(gctx, seed+uint64(i), seconds)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("%4s %8s %9s %6s %6s\n", "run", "seed", "survived", "kills", "shots")
	var total float64
	for i, r := range results {
		mark := ""
		if !r.Defeated {
			mark = " (alive)"
		}
		fmt.Printf("%4d %8d %8.1fs %6d %6d%s\n", i, r.Seed, r.Survived, r.Kills, r.Shots, mark)
		total += r.Survived
	}
	fmt.Printf("mean survival %.1fs over %d runs\n", total/float64(runs), runs)
	return nil
}

// simulate plays one session: the party circles the arena with fire held
// and rotates every few seconds.
func simulate(ctx context.Context, seed uint64, seconds float64) (result, error) {
	app, err := screen.NewApp(screen.Options{Seed: seed, Initial: screen.Gameplay})
	if err != nil {
		return result{}, err
	}
	defer app.Close()

	gs, ok := app.Current().(*screen.GameplayScreen)
	if !ok {
		return result{}, fmt.Errorf("started on %s", app.CurrentName())
	}

	res := result{Seed: seed}
	ticks := int(seconds / tick)
	for i := range ticks {
		if i%600 == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		t := float64(i) * tick
		in := input.State{MoveX: math.Cos(t / 2), MoveY: math.Sin(t / 2)}
		in.SetButton(input.Fire, true, i == 0)
		if i%180 == 179 {
			in.RotateAxis = 1
		}

		app.Update(tick, in)
		if app.Current() != gs {
			res.Defeated = true
			break
		}
	}

	w := gs.World()
	if e, ok := ecs.First(w, component.StatsComponent.Kind()); ok {
		stats, _ := ecs.Get(w, e, component.StatsComponent.Kind())
		res.Survived = stats.Survived
		res.Kills = stats.Kills
		res.Shots = stats.Shots
	}
	return res, nil
}
