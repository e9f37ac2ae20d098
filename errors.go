// errors.go — the single domain-error sentinel shared by all packages.
//
// Error policy (explicit and strict):
//   - Every parameter-validation failure in this module is a domain error:
//     the input fell outside its documented domain.
//   - Each package exposes its own sentinels for the specific violation
//     (negative density, bend out of range, …); every one of them wraps
//     ErrDomain at definition site.
//   - Callers that only care about the class branch once with
//     errors.Is(err, shovelcat.ErrDomain); callers that care about the
//     specific violation use the package sentinel.
//   - Domain errors are unrecoverable at the point of the call: the
//     computation is deterministic and stateless, so retrying without
//     correcting the input cannot succeed.

package shovelcat

import "errors"

// ErrDomain indicates an input parameter outside its documented domain.
// All package-level validation sentinels wrap this error.
var ErrDomain = errors.New("shovelcat: parameter outside documented domain")
