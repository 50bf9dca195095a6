// SPDX-License-Identifier: MIT

// Package glh wraps GL shader programs whose uniform and attribute
// locations are resolved up front from the shader source text, so
// struct members can be addressed by dotted path ("test.other.f.a2")
// instead of only by the flat names GL reports.
package glh

import (
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"

	"github.com/DimitrisVlachos/jglsl-shader/glsl"
)

// Shader is a GL program assembled from one or more compiled stages.
// Load compiles a stage and scans its source for uniform and attribute
// declarations; Finalize links the program and resolves every scanned
// path to its GL location. All methods must run on the GL thread.
type Shader struct {
	prog    *program
	stages  []uint32
	types   *glsl.TypeSet
	pending struct {
		uniforms   []string
		attributes []string
	}
	uniforms   map[string]int32
	attributes map[string]uint32
}

// program carries the GL name separately so the underlying object can
// be released from the GC goroutine via the main thread.
type program struct {
	id uint32
}

func newProgram() *program {
	p := &program{id: gl.CreateProgram()}
	runtime.AddCleanup(p, deleteProgram, p.id)
	return p
}

func deleteProgram(id uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteProgram(id)
	})
}

func NewShader() *Shader {
	return &Shader{
		types:      glsl.DefaultTypes(),
		uniforms:   make(map[string]int32),
		attributes: make(map[string]uint32),
	}
}

// RegisterType adds a type name the declaration scanner should accept
// as builtin, e.g. extension types. With fragment set, the name matches
// as a substring of a declared type.
func (s *Shader) RegisterType(name string, fragment bool) {
	s.types.Register(name, fragment)
}

// Load compiles one shader stage (gl.VERTEX_SHADER, gl.FRAGMENT_SHADER,
// ...) and queues the source's uniform and attribute paths for
// resolution at Finalize time. The source is scanned even when
// compilation fails.
func (s *Shader) Load(stage uint32, src string) error {
	structs := glsl.BuildStructTable(src, s.types)
	s.pending.uniforms = glsl.Extract(glsl.KeywordUniform, src, s.types, structs, s.pending.uniforms)
	s.pending.attributes = glsl.Extract(glsl.KeywordAttribute, src, s.types, structs, s.pending.attributes)

	shader := gl.CreateShader(stage)
	csource, free := gl.Strs(src + "\x00")
	length := int32(len(src))
	gl.ShaderSource(shader, 1, csource, &length)
	free()
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(shader)
		gl.DeleteShader(shader)
		return errors.Errorf("compile shader: %s", infoLog)
	}
	s.stages = append(s.stages, shader)
	return nil
}

// Finalize links all loaded stages and resolves every pending uniform
// and attribute path into the lookup tables. The compiled stage objects
// are released either way. A relink replaces the previous program and
// its resolved locations.
func (s *Shader) Finalize() error {
	if len(s.stages) == 0 {
		return errors.New("no compiled shader stages to link")
	}
	prog := newProgram()
	for _, stage := range s.stages {
		gl.AttachShader(prog.id, stage)
	}
	gl.LinkProgram(prog.id)
	var status int32
	gl.GetProgramiv(prog.id, gl.LINK_STATUS, &status)
	for _, stage := range s.stages {
		gl.DeleteShader(stage)
	}
	s.stages = s.stages[:0]
	if status == gl.FALSE {
		return errors.Errorf("link program: %s", programInfoLog(prog.id))
	}
	if s.prog != nil {
		s.Unbind()
	}
	s.prog = prog

	clear(s.uniforms)
	clear(s.attributes)
	for _, path := range s.pending.attributes {
		s.attributes[path] = uint32(gl.GetAttribLocation(prog.id, gl.Str(path+"\x00")))
	}
	for _, path := range s.pending.uniforms {
		s.uniforms[path] = gl.GetUniformLocation(prog.id, gl.Str(path+"\x00"))
	}
	s.pending.uniforms = nil
	s.pending.attributes = nil
	return nil
}

func (s *Shader) Bind() {
	if s.prog == nil {
		gl.UseProgram(0)
		return
	}
	gl.UseProgram(s.prog.id)
}

func (s *Shader) Unbind() {
	gl.UseProgram(0)
}

// Uniform returns the resolved location of a uniform path. Unknown
// paths return 0.
func (s *Shader) Uniform(path string) int32 {
	return s.uniforms[path]
}

// Attribute returns the resolved location of an attribute path.
// Unknown paths return 0.
func (s *Shader) Attribute(path string) uint32 {
	return s.attributes[path]
}

// Uniforms returns the resolved uniform paths in unspecified order.
func (s *Shader) Uniforms() []string {
	paths := make([]string, 0, len(s.uniforms))
	for path := range s.uniforms {
		paths = append(paths, path)
	}
	return paths
}

// Attributes returns the resolved attribute paths in unspecified order.
func (s *Shader) Attributes() []string {
	paths := make([]string, 0, len(s.attributes))
	for path := range s.attributes {
		paths = append(paths, path)
	}
	return paths
}

// Unload drops the program and all resolved and pending names. The GL
// object itself is released once the GC gets to it.
func (s *Shader) Unload() {
	if s.prog != nil {
		s.Unbind()
		s.prog = nil
	}
	s.stages = s.stages[:0]
	s.pending.uniforms = nil
	s.pending.attributes = nil
	clear(s.uniforms)
	clear(s.attributes)
}

func shaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func programInfoLog(prog uint32) string {
	var logLength int32
	gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}
