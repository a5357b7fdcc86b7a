package model

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name           string
	width, height  float32
	widthSegments  int
	heightSegments int
	vertices       []Vertex
	revision       uint64
}

// Mesh defines the interface for a procedural, height-mutable grid mesh.
//
// The vertex count and the planar (x, y) coordinates of every vertex are fixed
// at construction. Only heights (z) can change, either one vertex at a time
// through SetHeight or in bulk through UpdateHeights. Revision increases on
// every mutation so a renderer can detect stale vertex buffers.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Size returns the plane extent.
	//
	// Returns:
	//   - width: extent along x
	//   - height: extent along y
	Size() (width, height float32)

	// Segments returns the grid subdivision counts.
	//
	// Returns:
	//   - ws: segments along x
	//   - hs: segments along y
	Segments() (ws, hs int)

	// VertexCount returns the number of vertices.
	//
	// Returns:
	//   - int: (ws+1)*(hs+1)
	VertexCount() int

	// Vertex returns a copy of the vertex at index i.
	//
	// Parameters:
	//   - i: vertex index, must be in [0, VertexCount())
	//
	// Returns:
	//   - Vertex: the vertex
	Vertex(i int) Vertex

	// Vertices returns a copy of all vertices in row-major order.
	//
	// Returns:
	//   - []Vertex: the vertex snapshot
	Vertices() []Vertex

	// Planar returns the fixed planar coordinates of vertex i.
	Planar(i int) (x, y float32)

	// Height returns the current height of vertex i.
	Height(i int) float32

	// SetHeight sets the height of a single vertex.
	//
	// Parameters:
	//   - i: vertex index
	//   - z: the new height
	SetHeight(i int, z float32)

	// UpdateHeights recomputes every vertex height with fn and bumps the revision once.
	//
	// Parameters:
	//   - fn: function returning the new height for each vertex
	UpdateHeights(fn HeightFunc)

	// Indices returns triangle-list indices covering the grid, two triangles per cell.
	//
	// Returns:
	//   - []uint32: the index list
	Indices() []uint32

	// Revision returns the mutation counter.
	Revision() uint64
}

var _ Mesh = &mesh{}

// NewPlaneMesh creates a flat, subdivided plane centred on the origin.
//
// Vertices are laid out row by row: row iy runs from y = +height/2 down to
// -height/2 and each row runs from x = -width/2 to +width/2. All heights start at 0.
// Segment counts below 1 are raised to 1.
//
// Parameters:
//   - width: extent along x
//   - height: extent along y
//   - widthSegments: number of cells along x
//   - heightSegments: number of cells along y
//   - options: functional options for mesh configuration
//
// Returns:
//   - Mesh: the new plane mesh
func NewPlaneMesh(width, height float32, widthSegments, heightSegments int, options ...MeshBuilderOption) Mesh {
	if widthSegments < 1 {
		widthSegments = 1
	}
	if heightSegments < 1 {
		heightSegments = 1
	}

	m := &mesh{
		width:          width,
		height:         height,
		widthSegments:  widthSegments,
		heightSegments: heightSegments,
		vertices:       make([]Vertex, 0, (widthSegments+1)*(heightSegments+1)),
	}

	segW := width / float32(widthSegments)
	segH := height / float32(heightSegments)
	halfW := width / 2
	halfH := height / 2

	for iy := 0; iy <= heightSegments; iy++ {
		y := float32(iy)*segH - halfH
		for ix := 0; ix <= widthSegments; ix++ {
			x := float32(ix)*segW - halfW
			m.vertices = append(m.vertices, Vertex{X: x, Y: -y})
		}
	}

	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Size() (float32, float32) {
	return m.width, m.height
}

func (m *mesh) Segments() (int, int) {
	return m.widthSegments, m.heightSegments
}

func (m *mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *mesh) Vertex(i int) Vertex {
	return m.vertices[i]
}

func (m *mesh) Vertices() []Vertex {
	out := make([]Vertex, len(m.vertices))
	copy(out, m.vertices)
	return out
}

func (m *mesh) Planar(i int) (float32, float32) {
	v := m.vertices[i]
	return v.X, v.Y
}

func (m *mesh) Height(i int) float32 {
	return m.vertices[i].Z
}

func (m *mesh) SetHeight(i int, z float32) {
	m.vertices[i].Z = z
	m.revision++
}

func (m *mesh) UpdateHeights(fn HeightFunc) {
	for i := range m.vertices {
		v := &m.vertices[i]
		v.Z = fn(i, v.X, v.Y)
	}
	m.revision++
}

func (m *mesh) Indices() []uint32 {
	cols := uint32(m.widthSegments + 1)
	out := make([]uint32, 0, m.widthSegments*m.heightSegments*6)
	for iy := uint32(0); iy < uint32(m.heightSegments); iy++ {
		for ix := uint32(0); ix < uint32(m.widthSegments); ix++ {
			a := ix + cols*iy
			b := ix + cols*(iy+1)
			c := ix + 1 + cols*(iy+1)
			d := ix + 1 + cols*iy
			out = append(out, a, b, d, b, c, d)
		}
	}
	return out
}

func (m *mesh) Revision() uint64 {
	return m.revision
}
