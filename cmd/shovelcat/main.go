// Command shovelcat runs the fixed demonstration sequence: the three
// orthogonal observers, a verification pass, the uncertainty-sink
// demonstration, the light-speed and alpha derivations, and the
// structural-hierarchy printout. Exits 0 on success, 1 if any parameter
// falls outside its documented domain.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/jpelchat/shovelcat"
	"github.com/jpelchat/shovelcat/network"
	"github.com/jpelchat/shovelcat/observer"
	"github.com/jpelchat/shovelcat/report"
	"github.com/jpelchat/shovelcat/sink"
	"github.com/jpelchat/shovelcat/spoke"
	"github.com/jpelchat/shovelcat/synth"
)

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	var configPath string

	root := &cobra.Command{
		Use:          "shovelcat",
		Short:        "Derive structural constants with full provenance",
		Long:         "Runs the fixed shovelcat demonstration: observers, verification,\nuncertainty sink, light-speed and alpha derivations, hierarchy.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := LoadParams(configPath)
			if err != nil {
				return err
			}

			return run(params)
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "optional YAML parameter file")

	if err := root.Execute(); err != nil {
		if errors.Is(err, shovelcat.ErrDomain) {
			slog.Error("parameter outside documented domain", "err", err)
		} else {
			slog.Error("demonstration failed", "err", err)
		}
		os.Exit(1)
	}
}

func run(params Params) error {
	if err := demonstrateObservers(); err != nil {
		return err
	}
	if err := demonstrateVerification(); err != nil {
		return err
	}
	if err := demonstrateSink(params); err != nil {
		return err
	}
	if err := demonstrateLightSpeed(params); err != nil {
		return err
	}
	if err := demonstrateAlpha(params); err != nil {
		return err
	}

	return demonstrateHierarchy(params)
}

func demonstrateObservers() error {
	fmt.Println("== the three orthogonal observers ==")
	triad := observer.NewTriad()
	for _, o := range []observer.Observer{triad.Void, triad.Something, triad.Depth} {
		fmt.Printf("observer %s: plane=%s side=%s shifted-loop=%v a=%.4f b=%.4f\n",
			o.Kind.Unit(), o.Kind.Plane(), o.Side, o.HasShiftedLoop,
			o.EstimateThree, o.EstimatePointOneFour)
	}

	return nil
}

func demonstrateVerification() error {
	fmt.Println("\n== verification pass ==")
	triad := observer.NewTriad()
	for _, z := range []float64{0.001, 0.5, 1.0, 2.0, 100.0} {
		v := triad.Verify(z)
		fmt.Printf("z=%-7g confidence=%.2f verified=%v depth says: %s\n",
			z, v.Confidence, v.Verified, v.PerObserver[2].Message)
	}

	return nil
}

func demonstrateSink(params Params) error {
	fmt.Println("\n== uncertainty sink ==")

	// One isolated accounting step first.
	budget, err := sink.Drain(shovelcat.ObserverFootprint, params.DrainFraction)
	if err != nil {
		return err
	}
	fmt.Print(report.FormatBudget(budget))

	// Then the caller-owned accumulator fed by spoke deformation costs.
	acc, err := sink.NewAccumulator(params.SinkCapacity)
	if err != nil {
		return err
	}

	bridge := spoke.Bridge{BendX: 10, BendY: 5, BendZ: 20, Intact: true}
	costs, _, err := bridge.Costs(spoke.DefaultOptions())
	if err != nil {
		return err
	}
	residual, err := acc.Absorb(sink.Intake{
		Heat:   costs[0].Magnitude,
		Mass:   costs[1].Magnitude,
		Energy: costs[2].Magnitude,
	})
	if err != nil {
		return err
	}
	fmt.Printf("deformation waste absorbed=%.6f residual=%.6f\n",
		acc.TotalAbsorbed(), residual)
	slog.Info("sink demonstration complete",
		"capacity", acc.Capacity, "absorbed", acc.TotalAbsorbed(), "residual", residual)

	return nil
}

func demonstrateLightSpeed(params Params) error {
	fmt.Println("\n== light-speed derivation ==")
	c, err := synth.DeriveLightSpeed(params.RingFactor, params.ThresholdFactor, params.BoundaryFactor)
	if err != nil {
		return err
	}
	fmt.Print(report.Format(c))
	fmt.Printf("reference: %d m/s (deviation %.0f m/s)\n",
		int64(shovelcat.C), c.Value-shovelcat.C)

	return nil
}

func demonstrateAlpha(params Params) error {
	fmt.Println("\n== alpha derivation ==")
	a, err := synth.DeriveAlpha(params.ThetaDegrees, params.Alpha0)
	if err != nil {
		return err
	}
	fmt.Print(report.Format(a))
	fmt.Printf("geometric closed form: %.15f (%.2f ppb from measured)\n",
		synth.AlphaFromGeometry(), synth.AlphaErrorPPB())

	return nil
}

func demonstrateHierarchy(params Params) error {
	fmt.Println("\n== structural hierarchy ==")

	count, err := network.CountIntersections(params.Density)
	if err != nil {
		return err
	}
	net, err := network.Build(network.DefaultOptions())
	if err != nil {
		return err
	}

	fmt.Println("polygon sides    — the perceived surface")
	fmt.Println("spoke bridges    — support beams (bend pays heat/mass/energy)")
	fmt.Printf("intersections    — verification joints (%d per unit length)\n", count)
	fmt.Println("foundation       — the <1 observer")
	fmt.Println("uncertainty sink — absorbs what the layers above shed")
	fmt.Printf("built network: %d crossing points, phi integrity %.2f\n",
		len(net.Points()), network.Integrity(net.Phi.Bridges()))

	return nil
}
