// SPDX-License-Identifier: MIT

package glh

import (
	"runtime"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
)

// Target selects which binding point a Buffer attaches to.
type Target uint32

const (
	ArrayBuffer        Target = gl.ARRAY_BUFFER
	ElementArrayBuffer Target = gl.ELEMENT_ARRAY_BUFFER
)

type Buffer struct {
	buf    uint32
	target Target
}

// NewBuffer creates a buffer object and leaves it bound to its target.
func NewBuffer(target Target) *Buffer {
	b := &Buffer{
		target: target,
	}
	gl.GenBuffers(1, &b.buf)
	runtime.AddCleanup(b, deleteBuffer, b.buf)
	b.Bind()
	return b
}

func deleteBuffer(buf uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteBuffers(1, &buf)
	})
}

func (b *Buffer) Bind() {
	gl.BindBuffer(uint32(b.target), b.buf)
}

// SetFloats binds the buffer and uploads vertex data.
func (b *Buffer) SetFloats(data []float32) {
	b.Bind()
	gl.BufferData(uint32(b.target), 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

// SetIndices binds the buffer and uploads element indices.
func (b *Buffer) SetIndices(data []uint32) {
	b.Bind()
	gl.BufferData(uint32(b.target), 4*len(data), gl.Ptr(data), gl.STATIC_DRAW)
}

type VertexArray struct {
	a uint32
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.a)
	runtime.AddCleanup(va, deleteVertexArray, va.a)
	return va
}

func deleteVertexArray(va uint32) {
	mainthread.CallNonBlock(func() {
		gl.DeleteVertexArrays(1, &va)
	})
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.a)
}
