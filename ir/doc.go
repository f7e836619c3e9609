// Package ir defines the shader AST that glslgen builds and rewrites.
//
// The tree is designed to be:
//   - Composable: programs are assembled from reusable blocks and expressions
//   - Immutable once built: a Process pass always returns a new tree
//   - Target-agnostic: GLSL spelling is left to the glsl package
//
// # Structure
//
// A Program holds globals (uniforms, attributes, varyings, fragment outputs,
// constants), helper functions and the main body. Function bodies are Blocks:
// ordered statement sequences that declare Locals through Local and Declare,
// which append a Def statement and hand back a variable to reference.
//
// # Symbols
//
// Identifiers are Symbols. Named symbols are emitted verbatim. Generated
// symbols come from a Generator and receive a unique spelling at emission
// time, derived from their prefix.
//
// # Pipeline
//
// The typical pipeline is:
//
//	build (Block, Program) → Process(ctx) → glsl emission
//
// Process threads a Context through the tree: placeholder bindings, rewrite
// rules and target capabilities. The identity Context reproduces the input.
package ir
