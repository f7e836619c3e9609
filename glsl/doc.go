// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package glsl renders glslgen trees as GLSL (OpenGL Shading Language) source.
//
// It supports legacy and modern dialects from one tree:
//
//   - GLSL 1.10 / 1.20 and ES 1.00: attribute/varying, texture2D(), gl_FragColor
//   - GLSL 1.30 - 1.50: in/out, texture(), uint
//   - GLSL 3.30+ and ES 3.00+: explicit locations
//   - GLSL 4.20+ and ES 3.10+: explicit uniform bindings
//
// # Basic Usage
//
//	source, info, err := glsl.Compile(program, glsl.Options{
//	    LangVersion: glsl.Version330,
//	})
//
// Compile runs the program through a Process pass built from the options
// (placeholder bindings, user rules, dialect rules) and then emits it.
// Lower level emission of single statements goes through Output.
//
// # Names
//
// Named symbols are written verbatim. Generated symbols get the first free
// spelling of their prefix ("x", "x_1", ...). Prefixes colliding with GLSL
// reserved words are escaped with a leading underscore.
package glsl
