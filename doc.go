// Package enigma is a rotor cipher machine simulator: an alphabet, cycle
// notation permutations, rotors of four kinds and a machine that steps and
// converts like the naval Enigma.
//
// 🚀 What is in the box?
//
//   - Alphabets of any distinct symbols, not only A..Z
//   - Permutations parsed from cycle notation, e.g. "(AELTPHQXRU) (BKNW)"
//   - Rotors: plain, moving (with notches), fixed and reflectors
//   - A machine with a plugboard, pawls and the double-step quirk
//   - Text and YAML machine descriptions, plus an embedded naval inventory
//   - Message sessions with setup lines, five-letter groups and batch runs
//
// Under the hood it is organised into small packages:
//
//	alphabet/      ordered symbol sets and index mapping
//	permutation/   cycle parsing, forward and inverse mapping
//	rotor/         rotor kinds, settings, notches and the rotor inventory
//	machine/       slot discipline, stepping, the signal path, tracing
//	config/        .conf and .yaml machine descriptions
//	session/       setup lines, message streams, concurrent batches
//	cmd/enigma     the command-line front end
//
// Signal path for a 5-slot machine (slot 0 is the reflector):
//
//	in → plugboard → 4 → 3 → 2 → 1 → 0 ┐
//	out ← plugboard ← 4 ← 3 ← 2 ← 1 ←──┘
//
// Quick start:
//
//	go run ./cmd/enigma run default < message.in
package enigma
