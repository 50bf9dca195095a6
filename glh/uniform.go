// SPDX-License-Identifier: MIT

package glh

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/DimitrisVlachos/jglsl-shader/math/vec"
)

// Setters by path. Each resolves the path through the lookup table
// built at Finalize time; a path that never resolved writes to
// location 0. The program must be bound.

func (s *Shader) SetFloat(path string, v float32) {
	gl.Uniform1f(s.Uniform(path), v)
}

func (s *Shader) SetVec2(path string, v vec.Vec2) {
	gl.Uniform2f(s.Uniform(path), v.X, v.Y)
}

func (s *Shader) SetVec3(path string, v vec.Vec3) {
	gl.Uniform3f(s.Uniform(path), v.X, v.Y, v.Z)
}

func (s *Shader) SetVec4(path string, v vec.Vec4) {
	gl.Uniform4f(s.Uniform(path), v.X, v.Y, v.Z, v.W)
}

func (s *Shader) SetInt(path string, v int32) {
	gl.Uniform1i(s.Uniform(path), v)
}

func (s *Shader) SetUint(path string, v uint32) {
	gl.Uniform1ui(s.Uniform(path), v)
}

// SetTex binds a sampler uniform to a texture unit.
func (s *Shader) SetTex(path string, unit int32) {
	gl.Uniform1i(s.Uniform(path), unit)
}

func (s *Shader) SetMat4(path string, m *Matrix) {
	m.SetAsUniform(s.Uniform(path))
}

// SetMat3 uploads a 3x3 matrix given in row major order.
func (s *Shader) SetMat3(path string, m *[9]float32) {
	SetMat3(s.Uniform(path), m)
}

// SetUints uploads a uint array uniform. Empty slices are ignored.
func (s *Shader) SetUints(path string, v []uint32) {
	SetUints(s.Uniform(path), v)
}

// Setters by location, for callers that cache Uniform() results.

func SetFloat(loc int32, v float32) {
	gl.Uniform1f(loc, v)
}

func SetVec2(loc int32, v vec.Vec2) {
	gl.Uniform2f(loc, v.X, v.Y)
}

func SetVec3(loc int32, v vec.Vec3) {
	gl.Uniform3f(loc, v.X, v.Y, v.Z)
}

func SetVec4(loc int32, v vec.Vec4) {
	gl.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
}

func SetInt(loc int32, v int32) {
	gl.Uniform1i(loc, v)
}

func SetUint(loc int32, v uint32) {
	gl.Uniform1ui(loc, v)
}

func SetTex(loc int32, unit int32) {
	gl.Uniform1i(loc, unit)
}

func SetMat4(loc int32, m *Matrix) {
	m.SetAsUniform(loc)
}

func SetMat3(loc int32, m *[9]float32) {
	gl.UniformMatrix3fv(loc, 1, true, &m[0])
}

func SetUints(loc int32, v []uint32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1uiv(loc, int32(len(v)), &v[0])
}
