// jglsl-demo compiles a pair of shaders that declare struct uniforms,
// links them, and prints every variable path together with its
// resolved GL location before drawing a spinning quad.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"

	"github.com/DimitrisVlachos/jglsl-shader/glh"
	"github.com/DimitrisVlachos/jglsl-shader/math/vec"
	"github.com/DimitrisVlachos/jglsl-shader/window"
	"github.com/veandco/go-sdl2/sdl"
)

// The struct and field names must not contain a fragment-matched type
// name: a struct called material_t would be taken for a builtin (mat)
// and never flattened.
const vertexSource = `
#version 120

struct surface_t {
	vec3 tint;
	float glow;
};
struct light_t {
	vec3 dir;
	surface_t surf;
};

attribute vec3 position;
uniform mat4 mvp;
uniform light_t light;

varying vec3 Color;

void main() {
	float shade = max(dot(normalize(light.dir), vec3(0.0, 0.0, 1.0)), 0.2);
	Color = light.surf.tint * shade + vec3(light.surf.glow);
	gl_Position = mvp * vec4(position, 1.0);
}
`

const fragmentSource = `
#version 120

uniform float intensity;

varying vec3 Color;

void main() {
	gl_FragColor = vec4(Color * intensity, 1.0);
}
`

var frames = flag.Int("frames", 0, "exit after this many frames (0: run until closed)")

type demo struct {
	shader *glh.Shader
	vao    *glh.VertexArray
	vbo    *glh.Buffer
	ebo    *glh.Buffer
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	mainthread.Run(run)
}

func run() {
	var d *demo
	var err error
	mainthread.Call(func() {
		d, err = setup()
	})
	if err != nil {
		log.Fatal(err)
	}
	defer mainthread.Call(window.Shutdown)

	printLocations(d.shader)

	angle := float32(0)
	for frame := 0; *frames == 0 || frame < *frames; frame++ {
		quit := false
		mainthread.Call(func() {
			quit = d.drawFrame(angle)
		})
		if quit {
			break
		}
		angle += 1
	}
}

func setup() (*demo, error) {
	if err := window.Create("jglsl-demo", 800, 600); err != nil {
		return nil, errors.Wrap(err, "create window")
	}

	d := &demo{shader: glh.NewShader()}
	if err := d.shader.Load(gl.VERTEX_SHADER, vertexSource); err != nil {
		return nil, errors.Wrap(err, "vertex stage")
	}
	if err := d.shader.Load(gl.FRAGMENT_SHADER, fragmentSource); err != nil {
		return nil, errors.Wrap(err, "fragment stage")
	}
	if err := d.shader.Finalize(); err != nil {
		return nil, err
	}

	vertices := []float32{
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
		0.5, 0.5, 0,
		-0.5, 0.5, 0,
	}
	elements := []uint32{0, 1, 2, 2, 3, 0}
	d.vao = glh.NewVertexArray()
	d.vao.Bind()
	d.vbo = glh.NewBuffer(glh.ArrayBuffer)
	d.vbo.SetFloats(vertices)
	d.ebo = glh.NewBuffer(glh.ElementArrayBuffer)
	d.ebo.SetIndices(elements)

	pos := d.shader.Attribute("position")
	gl.EnableVertexAttribArray(pos)
	gl.VertexAttribPointer(pos, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))

	d.shader.Bind()
	d.shader.SetVec3("light.dir", vec.Vec3{X: 0.3, Y: 0.2, Z: 1})
	d.shader.SetVec3("light.surf.tint", vec.Vec3{X: 0.9, Y: 0.4, Z: 0.1})
	d.shader.SetFloat("light.surf.glow", 0.05)
	d.shader.SetFloat("intensity", 1)
	return d, nil
}

func printLocations(shader *glh.Shader) {
	uniforms := shader.Uniforms()
	sort.Strings(uniforms)
	for _, path := range uniforms {
		fmt.Printf("uniform   %-20s -> %d\n", path, shader.Uniform(path))
	}
	attributes := shader.Attributes()
	sort.Strings(attributes)
	for _, path := range attributes {
		fmt.Printf("attribute %-20s -> %d\n", path, shader.Attribute(path))
	}
}

// drawFrame renders one frame and reports whether the window was
// closed.
func (d *demo) drawFrame(angle float32) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			return true
		}
	}

	gl.ClearColor(0.1, 0.1, 0.12, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	mvp := glh.Identity()
	mvp.RotateZ(angle)
	d.shader.Bind()
	d.shader.SetMat4("mvp", mvp)
	d.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, gl.PtrOffset(0))

	window.EndRendering()
	return false
}
