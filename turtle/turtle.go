// Package turtle interprets a derived symbol string as turtle-graphics
// commands and builds the resulting spatial tree. A stack of cursors
// tracks position and orientation across nested branch scopes; all
// randomness comes from an injected seedable source so runs are
// reproducible.
package turtle

import (
	"fmt"
	"math/rand"

	"goki.dev/mat32/v2"

	"github.com/Sayama3/L-System/grammar"
	"github.com/Sayama3/L-System/tree"
)

// RandomSource supplies uniform floats in [0, 1). *rand.Rand satisfies
// it; inject a fixed-seed source for deterministic tests.
type RandomSource interface {
	Float64() float64
}

// NewSource returns a seeded RandomSource.
func NewSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}

// Default draw distance range and rotation jitter.
const (
	DefaultMinDistance    = 2.0
	DefaultMaxDistance    = 5.0
	DefaultJitterFraction = 0.05
)

// Options configures symbol bindings and randomization ranges.
// The zero value is not usable; start from DefaultOptions.
type Options struct {
	Forward rune // draw one segment along the heading
	Right   rune // turn by +angle
	Left    rune // turn by -angle
	Open    rune // push a branch scope
	Close   rune // pop a branch scope

	MinDistance    float64 // lower bound of the uniform draw distance
	MaxDistance    float64 // upper bound of the uniform draw distance
	JitterFraction float64 // rotation jitter as a fraction of the angle

	// Lenient downgrades branch underflow from a fatal error to a
	// diagnostic: the extra close is ignored and the root cursor is
	// left untouched. Best-effort semantics; off by default.
	Lenient bool
}

// DefaultOptions returns the conventional L-system symbol bindings
// (F, +, -, [, ]) and distance/jitter defaults.
func DefaultOptions() *Options {
	return &Options{
		Forward:        'F',
		Right:          '+',
		Left:           '-',
		Open:           '[',
		Close:          ']',
		MinDistance:    DefaultMinDistance,
		MaxDistance:    DefaultMaxDistance,
		JitterFraction: DefaultJitterFraction,
	}
}

// Diagnostic records a non-fatal condition hit while interpreting,
// such as a symbol with no binding. Diagnostics are returned with the
// result instead of being printed.
type Diagnostic struct {
	Index   int    `json:"index"`
	Symbol  string `json:"symbol"`
	Message string `json:"message"`
}

// Interpret walks the symbol string once, left to right, and returns
// the generated tree rooted at the caller's opaque handle ref.
// params supplies the rotation angle; rng supplies all randomness.
//
// A branch-close with no matching open fails with an *UnbalancedError
// naming the offending symbol index; the partially built tree is
// still returned. Unknown symbols are reported as diagnostics and
// never abort the pass.
func Interpret(symbols string, params grammar.Params, ref any, rng RandomSource, opts *Options) (*tree.Tree, []Diagnostic, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	out := tree.New(ref)
	cursors := stack{{Node: tree.Root}}
	cursors[0].Rotation.SetIdentity()

	var diags []Diagnostic
	for i, sym := range symbols {
		switch sym {
		case opts.Forward:
			cur := cursors.peek()
			dist := opts.MinDistance + rng.Float64()*(opts.MaxDistance-opts.MinDistance)
			cur.Position.SetAdd(cur.Forward().MulScalar(float32(dist)))
			cur.Node = out.AddChild(cur.Node, cur.Position, cur.Rotation)
			cursors.replaceTop(cur)

		case opts.Right:
			cur := cursors.peek()
			cur.Rotation = turn(cur.Rotation, params.Angle, opts.JitterFraction, rng)
			cursors.replaceTop(cur)

		case opts.Left:
			cur := cursors.peek()
			cur.Rotation = turn(cur.Rotation, -params.Angle, opts.JitterFraction, rng)
			cursors.replaceTop(cur)

		case opts.Open:
			cur := cursors.peek()
			cur.Rotation = branchJitter(cur.Rotation, params.Angle, opts.JitterFraction, rng)
			cursors.push(cur)

		case opts.Close:
			if len(cursors) == 1 {
				// Popping here would discard the root cursor.
				if opts.Lenient {
					diags = append(diags, Diagnostic{
						Index:   i,
						Symbol:  string(sym),
						Message: "branch close without matching open (ignored)",
					})
					continue
				}
				return out, diags, &UnbalancedError{Index: i}
			}
			cursors.pop()

		default:
			diags = append(diags, Diagnostic{
				Index:   i,
				Symbol:  string(sym),
				Message: fmt.Sprintf("unsupported symbol %q", sym),
			})
		}
	}

	return out, diags, nil
}

// turn composes a directional rotation onto rot: the configured angle
// plus uniform jitter of +-jitterFraction*|angle| around the pitch
// axis, with the jitter component alone applied around the yaw axis on
// the other side. The exact composition order is an aesthetic choice,
// not a contract; only the jittered-magnitude shape is load-bearing.
func turn(rot mat32.Quat, angleDeg, jitterFraction float64, rng RandomSource) mat32.Quat {
	jitter := symmetric(rng) * jitterFraction * abs(angleDeg)
	pitch := mat32.NewQuatAxisAngle(mat32.V3(1, 0, 0), mat32.DegToRad(float32(angleDeg+jitter)))
	yaw := mat32.NewQuatAxisAngle(mat32.V3(0, 1, 0), mat32.DegToRad(float32(jitter)))
	q := yaw.Mul(rot)
	return q.Mul(pitch)
}

// branchJitter perturbs a branch's starting orientation by a
// sign-symmetric random fraction of the angle around both pitch and
// roll, so sibling branches fan out instead of stacking.
func branchJitter(rot mat32.Quat, angleDeg, jitterFraction float64, rng RandomSource) mat32.Quat {
	spread := jitterFraction * abs(angleDeg)
	pitch := mat32.NewQuatAxisAngle(mat32.V3(1, 0, 0), mat32.DegToRad(float32(symmetric(rng)*spread)))
	roll := mat32.NewQuatAxisAngle(mat32.V3(0, 0, 1), mat32.DegToRad(float32(symmetric(rng)*spread)))
	q := pitch.Mul(rot)
	return q.Mul(roll)
}

// symmetric draws uniformly from [-1, 1).
func symmetric(rng RandomSource) float64 {
	return rng.Float64()*2 - 1
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
