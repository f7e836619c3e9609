// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

import "strings"

// reservedWords lists the identifiers a generated name must not take, grouped
// the way the GLSL 4.60 and GLSL ES 3.20 specifications group them.
var reservedWords = [...]string{
	// types
	`void bool int uint float double
	vec2 vec3 vec4 ivec2 ivec3 ivec4 uvec2 uvec3 uvec4 bvec2 bvec3 bvec4 dvec2 dvec3 dvec4
	mat2 mat3 mat4 mat2x2 mat2x3 mat2x4 mat3x2 mat3x3 mat3x4 mat4x2 mat4x3 mat4x4
	dmat2 dmat3 dmat4 dmat2x2 dmat2x3 dmat2x4 dmat3x2 dmat3x3 dmat3x4 dmat4x2 dmat4x3 dmat4x4
	sampler1D sampler2D sampler3D samplerCube sampler2DRect sampler1DShadow sampler2DShadow
	samplerCubeShadow sampler1DArray sampler2DArray sampler1DArrayShadow sampler2DArrayShadow
	samplerCubeArray samplerBuffer sampler2DMS isampler2D isampler3D isamplerCube usampler2D
	usampler3D usamplerCube image2D image3D imageCube atomic_uint`,

	// qualifiers and statements
	`attribute const uniform varying buffer shared coherent volatile restrict readonly writeonly
	layout centroid flat smooth noperspective patch sample in out inout invariant precise
	lowp mediump highp precision subroutine struct
	break continue do for while switch case default if else discard return true false`,

	// reserved for future use
	`common partition active asm class union enum typedef template this resource goto
	inline noinline public static extern external interface long short half fixed unsigned
	superp input output hvec2 hvec3 hvec4 fvec2 fvec3 fvec4 sampler3DRect filter sizeof cast
	namespace using`,

	// built-in functions
	`main radians degrees sin cos tan asin acos atan sinh cosh tanh asinh acosh atanh
	pow exp log exp2 log2 sqrt inversesqrt abs sign floor trunc round roundEven ceil fract
	mod modf min max clamp mix step smoothstep isnan isinf fma frexp ldexp
	floatBitsToInt floatBitsToUint intBitsToFloat uintBitsToFloat
	length distance dot cross normalize faceforward reflect refract
	matrixCompMult outerProduct transpose determinant inverse
	lessThan lessThanEqual greaterThan greaterThanEqual equal notEqual any all not
	texture textureProj textureLod textureOffset texelFetch textureGrad textureSize textureGather
	texture1D texture2D texture3D textureCube texture2DLod texture2DProj textureCubeLod shadow2D
	dFdx dFdy fwidth noise1 noise2 noise3 noise4`,
}

var glslKeywords = func() map[string]struct{} {
	m := make(map[string]struct{}, 400)
	for _, group := range reservedWords {
		for _, w := range strings.Fields(group) {
			m[w] = struct{}{}
		}
	}
	return m
}()

// isKeyword checks if a name is a GLSL keyword or reserved word.
func isKeyword(name string) bool {
	_, ok := glslKeywords[name]
	return ok
}

// escapeKeyword escapes a name if it conflicts with GLSL keywords.
// Returns the name with underscore prefix if it's reserved. The gl_ prefix
// is reserved as a whole, and a double underscore is reserved anywhere.
func escapeKeyword(name string) string {
	switch {
	case name == "":
		return "_unnamed"
	case isKeyword(name), strings.HasPrefix(name, "gl_"):
		return "_" + name
	case strings.Contains(name, "__"):
		return strings.ReplaceAll(name, "__", "_x")
	default:
		return name
	}
}
