// Command homcount counts homomorphisms, injective homomorphisms or subgraph
// copies of a generated pattern graph in a generated host graph.
//
//	homcount -pattern grid:2x2 -host grid:4x3 -mode subgraph
//	homcount -pattern cycle:6 -host random:60:0.1 -seed 7 -workers 8 -v 2
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/homcount/dp"
	"github.com/katalvlaran/homcount/hom"
	"github.com/katalvlaran/homcount/treedecomp"
)

func main() {
	fset := flag.NewFlagSet("homcount", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var (
		pattern   = fset.String("pattern", "grid:2x2", "pattern graph generator")
		host      = fset.String("host", "grid:3x3", "host graph generator")
		modeName  = fset.String("mode", "hom", "hom | injective | subgraph")
		heurName  = fset.String("heuristic", "minfill", "minfill | mindegree | exact")
		remapName = fset.String("remapper", "arithmetic", "arithmetic | enumeration")
		workers   = fset.Int("workers", 1, "data-parallel workers per kernel")
		parallel  = fset.Bool("parallel-joins", false, "evaluate join subtrees concurrently")
		seed      = fset.Int64("seed", 1, "seed for random generators")
		timeout   = fset.Duration("timeout", 0, "abort the count after this long (0 = no limit)")
	)
	if err := fset.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	code := 0
	if err := run(*pattern, *host, *modeName, *heurName, *remapName, *workers, *parallel, *seed, *timeout); err != nil {
		klog.Errorf("homcount: %+v", err)
		fmt.Fprintln(os.Stderr, "homcount:", err)
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}

func run(patternDesc, hostDesc, modeName, heurName, remapName string,
	workers int, parallel bool, seed int64, timeout time.Duration) error {

	mode, err := hom.ParseMode(modeName)
	if err != nil {
		return err
	}
	heur, err := treedecomp.ParseHeuristic(heurName)
	if err != nil {
		return err
	}
	strategy, err := dp.ParseStrategy(remapName)
	if err != nil {
		return err
	}

	h, err := parseGraph(patternDesc, seed)
	if err != nil {
		return err
	}
	g, err := parseGraph(hostDesc, seed+1)
	if err != nil {
		return err
	}
	klog.V(1).Infof("pattern %s", h)
	klog.V(1).Infof("host n=%d m=%d", g.Order(), g.Size())

	c, err := hom.New(
		hom.WithHeuristic(heur),
		hom.WithStrategy(strategy),
		hom.WithWorkers(workers),
		hom.WithParallelJoins(parallel),
	)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	nice, err := c.Decompose(h)
	if err != nil {
		return err
	}
	count, err := c.CountWith(ctx, nice, h, g, mode)
	if err != nil {
		return err
	}

	fmt.Printf("width\t%d\n", nice.Width())
	fmt.Printf("nodes\t%s\n", nice.Stats())
	fmt.Printf("%s\t%d\n", mode, count)
	klog.V(1).Infof("done in %s", time.Since(start))

	return nil
}
