// Package catalog holds the SPHInX group shapes as registry data. Each entry
// is a flat field specification interpreted by the dsl builder; nested shapes
// are embedded by name. Only the groups the structure encoder and its callers
// exercise are declared here; the full engine catalogue is far larger.
package catalog

import "github.com/sphinxkit/spxinput/dsl"

var registry = dsl.NewRegistry()

// Lookup resolves a registered group shape by name.
func Lookup(name string) (dsl.GroupSpec, bool) { return registry.Lookup(name) }

// Structure tree.
var (
	Operator = registry.MustRegister(dsl.Group("operator").
		Field("S", dsl.KindMatrix).Required().
		MustBuild())

	Symmetry = registry.MustRegister(dsl.Group("symmetry").
		Field("operator", dsl.KindGroup).Ref("operator").Required().
		MustBuild())

	Atom = registry.MustRegister(dsl.Group("atom").
		Field("coords", dsl.KindVector).Optional().
		Field("relative", dsl.KindBool).Optional().
		Field("movableLine", dsl.KindVector).Optional().
		Field("label", dsl.KindString).Optional().
		Field("movable", dsl.KindBool).Optional().
		Field("movableX", dsl.KindBool).Optional().
		Field("movableY", dsl.KindBool).Optional().
		Field("movableZ", dsl.KindBool).Optional().
		MustBuild())

	Species = registry.MustRegister(dsl.Group("species").
		Field("element", dsl.KindString).Optional().
		Field("atom", dsl.KindGroupList).Ref("atom").Optional().
		MustBuild())

	Structure = registry.MustRegister(dsl.Group("structure").
		Field("cell", dsl.KindMatrix).Required().
		Field("movable", dsl.KindBool).Optional().
		Field("movableX", dsl.KindBool).Optional().
		Field("movableY", dsl.KindBool).Optional().
		Field("movableZ", dsl.KindBool).Optional().
		Field("species", dsl.KindGroupList).Ref("species").Optional().
		Field("symmetry", dsl.KindGroup).Ref("symmetry").Optional().
		MustBuild())
)

// Plane-wave basis and k-point sampling.
var (
	KPoint = registry.MustRegister(dsl.Group("kPoint").
		Field("coords", dsl.KindVector).Required().
		Field("relative", dsl.KindBool).Optional().
		Field("weight", dsl.KindFloat).Optional().
		MustBuild())

	KPointsFrom = registry.MustRegister(dsl.Group("kPoints.from").
		Field("coords", dsl.KindVector).Required().
		Field("relative", dsl.KindBool).Optional().
		Field("label", dsl.KindString).Optional().
		MustBuild())

	KPointsTo = registry.MustRegister(dsl.Group("kPoints.to").
		Field("coords", dsl.KindVector).Required().
		Field("relative", dsl.KindBool).Optional().
		Field("label", dsl.KindString).Optional().
		Field("dK", dsl.KindFloat).Optional().
		Field("nPoints", dsl.KindInt).Optional().
		MustBuild())

	KPoints = registry.MustRegister(dsl.Group("kPoints").
		Field("relative", dsl.KindBool).Optional().
		Field("dK", dsl.KindFloat).Optional().
		Field("from", dsl.KindGroupList).Ref("kPoints.from").Optional().
		Field("to", dsl.KindGroupList).Ref("kPoints.to").Optional().
		MustBuild())

	Basis = registry.MustRegister(dsl.Group("basis").
		Field("eCut", dsl.KindFloat).Required().
		Field("gCut", dsl.KindFloat).Optional().
		Field("folding", dsl.KindInt).Optional().
		Field("mesh", dsl.KindIntVector).Optional().
		Field("meshAccuracy", dsl.KindFloat).Optional().
		Field("saveMemory", dsl.KindBool).Optional().
		Field("kPoint", dsl.KindGroup).Ref("kPoint").Optional().
		Field("kPoints", dsl.KindGroup).Ref("kPoints").Optional().
		MustBuild())
)

// Initial guess for density and wave functions.
var (
	AtomicSpin = registry.MustRegister(dsl.Group("atomicSpin").
		Field("spin", dsl.KindFloat).Optional().
		Field("label", dsl.KindString).Optional().
		Field("file", dsl.KindString).Optional().
		MustBuild())

	Charged = registry.MustRegister(dsl.Group("charged").
		Field("charge", dsl.KindFloat).Required().
		Field("beta", dsl.KindFloat).Optional().
		Field("z", dsl.KindFloat).Optional().
		Field("coords", dsl.KindVector).Optional().
		MustBuild())

	Rho = registry.MustRegister(dsl.Group("rho").
		Field("file", dsl.KindString).Optional().
		Field("fromWave", dsl.KindBool).Optional().
		Field("random", dsl.KindBool).Optional().
		Field("atomicOrbitals", dsl.KindBool).Optional().
		Field("spinMoment", dsl.KindBool).Optional().
		Field("atomicSpin", dsl.KindGroupList).Ref("atomicSpin").Optional().
		Field("charged", dsl.KindGroup).Ref("charged").Optional().
		MustBuild())

	Lcao = registry.MustRegister(dsl.Group("lcao").
		Field("maxSteps", dsl.KindInt).Optional().
		Field("dEnergy", dsl.KindFloat).Optional().
		MustBuild())

	Waves = registry.MustRegister(dsl.Group("waves").
		Field("file", dsl.KindString).Optional().
		Field("random", dsl.KindBool).Optional().
		Field("keepWavesOnDisk", dsl.KindBool).Optional().
		Field("lcao", dsl.KindGroup).Ref("lcao").Optional().
		MustBuild())

	InitialGuess = registry.MustRegister(dsl.Group("initialGuess").
		Field("noWavesStorage", dsl.KindBool).Optional().
		Field("noRhoStorage", dsl.KindBool).Optional().
		Field("waves", dsl.KindGroup).Ref("waves").Optional().
		Field("rho", dsl.KindGroup).Ref("rho").Optional().
		MustBuild())
)

// Main loop. CCG is the shared direct-minimization shape; scfDiag embeds it
// by name rather than redeclaring it inline.
var (
	CCG = registry.MustRegister(dsl.Group("CCG").
		Field("dEnergy", dsl.KindFloat).Default(1e-8).
		Field("maxSteps", dsl.KindInt).Optional().
		Field("printSteps", dsl.KindInt).Default(10).
		Field("initialDiag", dsl.KindBool).Optional().
		Field("finalDiag", dsl.KindBool).Optional().
		Field("kappa", dsl.KindFloat).Optional().
		Field("keepOccFixed", dsl.KindBool).Optional().
		Field("ekt", dsl.KindFloat).Optional().
		Field("dipoleCorrection", dsl.KindBool).Optional().
		Field("noRhoStorage", dsl.KindBool).Optional().
		Field("noWavesStorage", dsl.KindBool).Optional().
		MustBuild())

	ScfDiag = registry.MustRegister(dsl.Group("scfDiag").
		Field("dEnergy", dsl.KindFloat).Default(1e-8).
		Field("maxSteps", dsl.KindInt).Optional().
		Field("maxResidue", dsl.KindFloat).Optional().
		Field("printSteps", dsl.KindInt).Default(10).
		Field("mixingMethod", dsl.KindString).Optional().
		Field("nPulaySteps", dsl.KindInt).Optional().
		Field("rhoMixing", dsl.KindFloat).Optional().
		Field("spinMixing", dsl.KindFloat).Optional().
		Field("keepRhoFixed", dsl.KindBool).Optional().
		Field("keepOccFixed", dsl.KindBool).Optional().
		Field("keepSpinFixed", dsl.KindBool).Optional().
		Field("spinMoment", dsl.KindFloat).Optional().
		Field("ekt", dsl.KindFloat).Optional().
		Field("dipoleCorrection", dsl.KindBool).Optional().
		Field("dSpinMoment", dsl.KindFloat).Optional().
		Field("noRhoStorage", dsl.KindBool).Optional().
		Field("noWavesStorage", dsl.KindBool).Optional().
		Field("CCG", dsl.KindGroup).Ref("CCG").Optional().
		MustBuild())

	Main = registry.MustRegister(dsl.Group("main").
		Field("scfDiag", dsl.KindGroupList).Ref("scfDiag").Optional().
		Field("QN", dsl.KindGroup).Optional().
		Field("linQN", dsl.KindGroup).Optional().
		Field("ricQN", dsl.KindGroup).Optional().
		MustBuild())
)

// Sphinx is the top-level input document. Groups with no shape declared in
// this catalogue (pawPot et al.) accept prebuilt nodes only.
var Sphinx = registry.MustRegister(dsl.Group("sphinx").
	Field("structure", dsl.KindGroup).Ref("structure").Optional().
	Field("basis", dsl.KindGroup).Ref("basis").Optional().
	Field("pawPot", dsl.KindGroup).Optional().
	Field("PAWHamiltonian", dsl.KindGroup).Optional().
	Field("spinConstraint", dsl.KindGroup).Optional().
	Field("initialGuess", dsl.KindGroup).Ref("initialGuess").Optional().
	Field("pseudoPot", dsl.KindGroup).Optional().
	Field("PWHamiltonian", dsl.KindGroup).Optional().
	Field("main", dsl.KindGroup).Ref("main").Optional().
	MustBuild())
