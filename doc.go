package spxinput

// Package spxinput turns an in-memory atomic-structure model into the ordered,
// nested group document consumed by the SPHInX DFT engine.
//
// - Ordered document nodes (Node) with omit-absent-optional semantics
// - A stable error model via Issues (dotted path, code, message)
// - A data-driven group registry plus one generic builder under dsl/ and catalog/
// - The structure encoder and atom-ordering permutations under encode/ and order/
//
// Design policy:
// - Keep only public value types and the error model in the root package.
// - Place the field-spec DSL under dsl/, the group catalogue under catalog/,
//   label codecs under codec/, and the structure model under structure/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	st, err := structure.New(cell, positions, elements, moments, fixed)
//	group, spins, err := encode.Structure(st, encode.Options{UseSymmetry: true})
//	fwd := order.Forward(st.Elements())
