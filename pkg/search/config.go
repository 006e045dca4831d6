package search

// VariableStrategy selects how a Phase decision builder picks the next
// unbound variable to branch on.
type VariableStrategy int

const (
	VariableDefault VariableStrategy = iota
	VariableSimple
	ChooseFirstUnbound
	ChooseRandom
	ChooseMinSizeLowestMin
	ChooseMinSizeHighestMin
	ChooseMinSizeLowestMax
	ChooseMinSizeHighestMax
	ChoosePath
)

// ValueStrategy selects how a Phase decision builder picks the value to
// assign to the chosen variable.
type ValueStrategy int

const (
	ValueDefault ValueStrategy = iota
	ValueSimple
	AssignMinValue
	AssignMaxValue
	AssignRandomValue
	AssignCenterValue
)

// EvaluatorStrategy names the two global evaluator selectors
// (spec §4.2.2). No constructor reads it: the selectors are built
// directly by NewStaticEvaluatorSelector and NewDynamicEvaluatorSelector.
type EvaluatorStrategy int

const (
	ChooseStaticGlobalBest EvaluatorStrategy = iota
	ChooseDynamicGlobalBest
)

// Config bundles construction-time options for a Solver. Its existence
// fills a gap: the teacher repo references a SolverConfig type across
// several files without ever defining it.
type Config struct {
	// UseSparseGLSPenalties selects the GLS penalty table representation.
	// Observationally equivalent either way; only memory/time profile
	// differs (spec §6.2).
	UseSparseGLSPenalties bool

	// RandSeed seeds the deterministic RNG exposed to selectors and
	// metaheuristics via Rand32/Rand64 (spec §6.1).
	RandSeed uint64
}

// DefaultConfig returns the default configuration: dense GLS penalties,
// a fixed RNG seed (1) for reproducible runs.
func DefaultConfig() Config {
	return Config{UseSparseGLSPenalties: false, RandSeed: 1}
}
