// Package sink implements the uncertainty sink: an error-budget
// accounting step that drains a configured fraction of an injected error
// magnitude and reports exactly what remains.
//
// 🚀 What is the uncertainty sink?
//
//	The foundation layer of the structural hierarchy absorbs the waste
//	produced above it — measurement fuzz, deformation losses, estimation
//	error. The sink formalizes that as plain arithmetic:
//
//	  drained  = injected × drainFraction
//	  residual = injected − drained
//
//	The residual is what "leaks back" as measurable error (the ppb-scale
//	discrepancies in derived constants).
//
// ✨ Key guarantees:
//   - Exact conservation: Drained + Residual == Injected. Residual is
//     computed by subtraction, so the identity holds to well within
//     1e-12 relative tolerance for any valid input.
//   - Statelessness: every Drain call is independent and reproducible
//     from its inputs. There is no hidden global accumulation.
//
// ⚙️ Usage:
//
//	budget, err := sink.Drain(0.0007, 0.9999)
//	if err != nil {
//	  // errors.Is(err, sink.ErrNegativeInjected) etc.
//	}
//	fmt.Println(budget.Residual) // what could not be absorbed
//
// Cross-call accumulation — the "one universal sink" reading — is an
// explicit opt-in: create an Accumulator and pass it around. The package
// never owns one for you.
//
//	acc := sink.NewAccumulator(shovelcat.ObserverFootprint)
//	residual, err := acc.Absorb(sink.Intake{Heat: 0.001, Error: 2e-5})
//
// See example_test.go for full walkthroughs.
package sink
