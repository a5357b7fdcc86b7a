package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/game_object"
	"github.com/chewxy/math32"
)

var errNodeCycle = errors.New("node hierarchy contains a cycle")

// nodeTemplate is the immutable transform and hierarchy of one glTF node.
type nodeTemplate struct {
	name     string
	position [3]float32
	rotation [3]float32
	scale    [3]float32
	children []int
}

// assetTemplate is the parsed, immutable form of an asset. Every Load builds
// a fresh GameObject tree from it so placements of the same file never share nodes.
type assetTemplate struct {
	name   string
	roots  []int
	nodes  []nodeTemplate
	clips  []game_object.Clip
	meshes int
}

// instantiate builds a new GameObject tree rooted at a node named after the asset.
//
// Parameters:
//   - path: the asset path recorded on the root
//
// Returns:
//   - game_object.GameObject: the root node carrying the asset's clips
func (t *assetTemplate) instantiate(path string) game_object.GameObject {
	children := make([]game_object.GameObject, 0, len(t.roots))
	for _, idx := range t.roots {
		children = append(children, t.buildNode(idx))
	}
	return game_object.NewGameObject(
		game_object.WithName(t.name),
		game_object.WithAsset(path),
		game_object.WithClips(t.clips...),
		game_object.WithChildren(children...),
	)
}

func (t *assetTemplate) buildNode(idx int) game_object.GameObject {
	n := t.nodes[idx]
	children := make([]game_object.GameObject, 0, len(n.children))
	for _, c := range n.children {
		children = append(children, t.buildNode(c))
	}
	return game_object.NewGameObject(
		game_object.WithName(n.name),
		game_object.WithPosition(n.position[0], n.position[1], n.position[2]),
		game_object.WithRotation(n.rotation[0], n.rotation[1], n.rotation[2]),
		game_object.WithScale(n.scale[0], n.scale[1], n.scale[2]),
		game_object.WithChildren(children...),
	)
}

// gltfImporterImpl is the implementation of the gltfImporter interface.
type gltfImporterImpl struct{}

// gltfImporter turns parsed glTF documents into asset templates.
type gltfImporter interface {
	// Import parses the file at path and returns its template.
	Import(path string) (*assetTemplate, error)

	// ImportBytes parses in-memory glTF or GLB data named name.
	ImportBytes(name string, data []byte, isGLB bool) (*assetTemplate, error)
}

var _ gltfImporter = &gltfImporterImpl{}

func newGLTFImporter() gltfImporter {
	return &gltfImporterImpl{}
}

func (i *gltfImporterImpl) Import(path string) (*assetTemplate, error) {
	p := newGLTFParser()
	if err := p.Parse(path); err != nil {
		return nil, err
	}
	return buildTemplate(assetName(path), p)
}

func (i *gltfImporterImpl) ImportBytes(name string, data []byte, isGLB bool) (*assetTemplate, error) {
	p := newGLTFParser()
	if err := p.ParseBytes(data, isGLB, filepath.Dir(name)); err != nil {
		return nil, err
	}
	return buildTemplate(assetName(name), p)
}

// assetName strips the directory and extension from an asset path.
func assetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// buildTemplate extracts the node hierarchy of the default scene and the clip
// list from a parsed document.
func buildTemplate(name string, p gltfParser) (*assetTemplate, error) {
	doc := p.Document()
	t := &assetTemplate{
		name:   name,
		nodes:  make([]nodeTemplate, len(doc.Nodes)),
		meshes: len(doc.Meshes),
	}

	for idx, n := range doc.Nodes {
		nt := nodeTemplate{
			name:  n.Name,
			scale: [3]float32{1, 1, 1},
		}
		if nt.name == "" {
			nt.name = fmt.Sprintf("node_%d", idx)
		}
		if n.Mesh != nil {
			if *n.Mesh < 0 || *n.Mesh >= len(doc.Meshes) {
				return nil, fmt.Errorf("node %d: mesh index %d out of range", idx, *n.Mesh)
			}
		}
		for _, c := range n.Children {
			if c < 0 || c >= len(doc.Nodes) {
				return nil, fmt.Errorf("node %d: child index %d out of range", idx, c)
			}
		}
		nt.children = append([]int(nil), n.Children...)

		switch {
		case n.Matrix != nil:
			nt.position, nt.rotation, nt.scale = decomposeMatrix(*n.Matrix)
		default:
			if n.Translation != nil {
				nt.position = *n.Translation
			}
			if n.Rotation != nil {
				nt.rotation = common.QuatToEuler(*n.Rotation)
			}
			if n.Scale != nil {
				nt.scale = *n.Scale
			}
		}
		t.nodes[idx] = nt
	}

	roots, err := sceneRoots(doc)
	if err != nil {
		return nil, err
	}
	t.roots = roots
	if err := checkAcyclic(t); err != nil {
		return nil, err
	}

	clips, err := extractClips(doc, p)
	if err != nil {
		return nil, err
	}
	t.clips = clips

	return t, nil
}

// sceneRoots returns the root nodes of the default scene. Documents without
// scenes use every node that is nobody's child.
func sceneRoots(doc *gltfDocument) ([]int, error) {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil {
			idx = *doc.Scene
		}
		if idx < 0 || idx >= len(doc.Scenes) {
			return nil, fmt.Errorf("scene index %d out of range", idx)
		}
		for _, r := range doc.Scenes[idx].Nodes {
			if r < 0 || r >= len(doc.Nodes) {
				return nil, fmt.Errorf("scene %d: node index %d out of range", idx, r)
			}
		}
		return append([]int(nil), doc.Scenes[idx].Nodes...), nil
	}

	isChild := make([]bool, len(doc.Nodes))
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			isChild[c] = true
		}
	}
	var roots []int
	for i, child := range isChild {
		if !child {
			roots = append(roots, i)
		}
	}
	return roots, nil
}

func checkAcyclic(t *assetTemplate) error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(t.nodes))
	var visit func(int) error
	visit = func(i int) error {
		switch state[i] {
		case visiting:
			return fmt.Errorf("node %d: %w", i, errNodeCycle)
		case done:
			return nil
		}
		state[i] = visiting
		for _, c := range t.nodes[i].children {
			if err := visit(c); err != nil {
				return err
			}
		}
		state[i] = done
		return nil
	}
	for _, r := range t.roots {
		if err := visit(r); err != nil {
			return err
		}
	}
	return nil
}

// extractClips names every animation and measures its duration as the latest
// keyframe time across its samplers. The accessor max is used when present.
func extractClips(doc *gltfDocument, p gltfParser) ([]game_object.Clip, error) {
	clips := make([]game_object.Clip, 0, len(doc.Animations))
	for i, anim := range doc.Animations {
		clip := game_object.Clip{Name: anim.Name}
		if clip.Name == "" {
			clip.Name = fmt.Sprintf("animation_%d", i)
		}

		for _, s := range anim.Samplers {
			if s.Input < 0 || s.Input >= len(doc.Accessors) {
				return nil, fmt.Errorf("animation %d: input accessor %d out of range", i, s.Input)
			}
			acc := doc.Accessors[s.Input]
			if len(acc.Max) > 0 {
				clip.Duration = math32.Max(clip.Duration, acc.Max[0])
				continue
			}
			times, err := p.ReadScalarAccessor(s.Input)
			if err != nil {
				return nil, fmt.Errorf("animation %d: %w", i, err)
			}
			for _, v := range times {
				clip.Duration = math32.Max(clip.Duration, v)
			}
		}
		clips = append(clips, clip)
	}
	return clips, nil
}

// decomposeMatrix splits a column-major 4x4 TRS matrix into translation, XYZ
// Euler rotation and per-axis scale. A zero-length axis keeps that column out
// of the rotation.
func decomposeMatrix(m [16]float32) (position, rotation, scale [3]float32) {
	position = [3]float32{m[12], m[13], m[14]}
	scale = [3]float32{
		math32.Sqrt(m[0]*m[0] + m[1]*m[1] + m[2]*m[2]),
		math32.Sqrt(m[4]*m[4] + m[5]*m[5] + m[6]*m[6]),
		math32.Sqrt(m[8]*m[8] + m[9]*m[9] + m[10]*m[10]),
	}

	var r [3][3]float32
	for col := 0; col < 3; col++ {
		if scale[col] == 0 {
			r[col][col] = 1
			continue
		}
		for row := 0; row < 3; row++ {
			r[row][col] = m[col*4+row] / scale[col]
		}
	}
	return position, common.EulerFromMatrix(r), scale
}
