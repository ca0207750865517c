package raster

// CullMode selects which winding order of screen-space triangle is
// discarded by the assembly stage.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// drawCall is one recorded mesh draw: which mesh, which shaders, which
// slice of the frame's vertex scratch buffer it owns, and where its
// uniform snapshot lives in the frame arena.
type drawCall struct {
	mesh          *Mesh
	vs            VertexShaderFunc
	fs            FragmentShaderFunc
	cull          CullMode
	vertexOffset  int
	uniformOffset int
	uniformSize   int
	hasUniforms   bool
}

// drawQueue records a frame's draw calls in submission order. Grounded
// on object_pool.go's reset-length-keep-capacity lifecycle; growth
// beyond capacity is append's built-in amortized doubling.
type drawQueue struct {
	calls            []drawCall
	vertexScratchLen int
	maxTriangles     int

	curVS       VertexShaderFunc
	curFS       FragmentShaderFunc
	curCull     CullMode
	curUniforms []byte
	hasUniforms bool
}

func (q *drawQueue) reset() {
	q.calls = q.calls[:0]
	q.vertexScratchLen = 0
	q.maxTriangles = 0
	q.curUniforms = nil
	q.hasUniforms = false
}

func (q *drawQueue) setShaders(vs VertexShaderFunc, fs FragmentShaderFunc) {
	q.curVS = vs
	q.curFS = fs
}

func (q *drawQueue) setCullMode(m CullMode) {
	q.curCull = m
}

func (q *drawQueue) setUniformBytes(b []byte) {
	q.curUniforms = b
	q.hasUniforms = true
}

func (q *drawQueue) clearUniforms() {
	q.curUniforms = nil
	q.hasUniforms = false
}

// drawMesh records mesh as a draw call using the currently bound
// shaders, cull mode and uniform snapshot. It panics if mesh is nil,
// since that's a programmer error with no sane fallback; it silently
// does nothing if no shaders are bound, matching the original's
// "missing shader means skip this draw" behavior rather than crashing
// a frame over an incomplete setup sequence.
func (q *drawQueue) drawMesh(mesh *Mesh, arena *FrameArena) {
	if mesh == nil {
		usageErrorf("DrawMesh", "mesh is nil")
	}
	if q.curVS == nil || q.curFS == nil {
		return
	}

	dc := drawCall{
		mesh:         mesh,
		vs:           q.curVS,
		fs:           q.curFS,
		cull:         q.curCull,
		vertexOffset: q.vertexScratchLen,
	}
	if q.hasUniforms {
		offset := arena.write(q.curUniforms)
		dc.uniformOffset = offset
		dc.uniformSize = len(q.curUniforms)
		dc.hasUniforms = true
	}

	q.calls = append(q.calls, dc)
	q.vertexScratchLen += mesh.VertexCount()
	q.maxTriangles += mesh.TriangleCount()
}
