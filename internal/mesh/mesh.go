// Package mesh merges independently generated part sets into one final
// mesh with shared, deduplicated vertex and index buffers.
package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"mc-skin-mesher/internal/geom"
)

// ErrConflictingGeometry is returned when two part sets declare the same
// part name with incompatible topologies. Caller configuration error:
// surfaced with the part and set names, never silently resolved.
var ErrConflictingGeometry = errors.New("conflicting geometry")

// Vertex is one entry of the shared vertex buffer. Bit-identical
// vertices are merged during organization.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// Mesh is the merged output geometry: the surviving parts in precedence
// order plus shared vertex/index buffers ready for a rendering backend.
// Every face references four consecutive logical corners resolved
// through Indices; six indices (two triangles) per face.
type Mesh struct {
	Parts    []geom.Part
	Vertices []Vertex
	Indices  []uint32
}

// FaceCount returns the number of retained faces.
func (m *Mesh) FaceCount() int {
	n := 0
	for i := range m.Parts {
		n += len(m.Parts[i].Faces)
	}
	return n
}

// TriangleCount returns the number of index-buffer triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Organize merges the ordered part sets into one mesh. The sets are
// consumed: their parts move into the mesh and the inputs must not be
// used afterwards.
//
// Name collisions resolve by precedence: a later set's part replaces an
// earlier set's part with the same name, keeping the earlier part's
// position in the overall order. Replacement requires the same face
// count; anything else is ErrConflictingGeometry.
func Organize(sets []*geom.PartSet) (*Mesh, error) {
	type owner struct {
		set  string
		slot int
	}

	m := &Mesh{}
	owners := make(map[string]owner)

	for _, set := range sets {
		for i := range set.Parts {
			part := set.Parts[i]
			key := part.Name.String()

			prev, seen := owners[key]
			if !seen {
				owners[key] = owner{set: set.Name, slot: len(m.Parts)}
				m.Parts = append(m.Parts, part)
				continue
			}

			if len(m.Parts[prev.slot].Faces) != len(part.Faces) {
				return nil, fmt.Errorf(
					"mesh: part %q: set %q (%d faces) vs set %q (%d faces): %w",
					key, prev.set, len(m.Parts[prev.slot].Faces),
					set.Name, len(part.Faces), ErrConflictingGeometry)
			}
			m.Parts[prev.slot] = part
			owners[key] = owner{set: set.Name, slot: prev.slot}
		}
		set.Parts = nil
	}

	m.buildBuffers()
	return m, nil
}

// buildBuffers flattens all retained faces into shared vertex and index
// buffers, deduplicating bit-identical vertices. Map access only looks
// up previously assigned slots, so buffer order is fully determined by
// part order.
func (m *Mesh) buildBuffers() {
	dedup := make(map[Vertex]uint32)

	push := func(v Vertex) uint32 {
		if idx, ok := dedup[v]; ok {
			return idx
		}
		idx := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, v)
		dedup[v] = idx
		return idx
	}

	for pi := range m.Parts {
		part := &m.Parts[pi]
		for fi := range part.Faces {
			f := &part.Faces[fi]
			var corner [4]uint32
			for c := 0; c < 4; c++ {
				corner[c] = push(Vertex{
					Position: f.Verts[c],
					Normal:   f.Normal,
					UV:       f.UV[c],
				})
			}
			// Quad → two triangles: TL,TR,BR and TL,BR,BL.
			m.Indices = append(m.Indices,
				corner[0], corner[1], corner[2],
				corner[0], corner[2], corner[3])
		}
	}
}
