package scene

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine/game_object"
	"github.com/Carmen-Shannon/oxy-diorama/engine/light"
	"github.com/Carmen-Shannon/oxy-diorama/engine/model"
)

// Role names the part an object plays in the diorama. Animators look objects
// up by role; objects with RoleDecoration are never animated.
type Role string

const (
	RoleDecoration   Role = ""
	RoleRiver        Role = "river"
	RoleCar          Role = "car"
	RolePlane        Role = "plane"
	RoleCarousel     Role = "carousel"
	RoleStreetLight  Role = "street_light"
	RoleMainLight    Role = "main_light"
	RoleAmbientLight Role = "ambient_light"
)

// Known reports whether r is one of the roles defined above.
func (r Role) Known() bool {
	switch r {
	case RoleDecoration, RoleRiver, RoleCar, RolePlane, RoleCarousel,
		RoleStreetLight, RoleMainLight, RoleAmbientLight:
		return true
	}
	return false
}

// Scene defines the interface for the diorama's object registry.
//
// The Scene owns every node, mesh and light of the diorama. Animators never
// hold nodes directly; they look them up by role on every update and treat a
// missing entry as "not loaded yet". The background color, the main and
// ambient lights and the street light set are the attributes switched by the
// day/night toggle.
type Scene interface {
	// Name returns the scene name.
	//
	// Returns:
	//   - string: the name of the scene
	Name() string

	// Background returns the clear color of the scene.
	//
	// Returns:
	//   - common.Color: the background color
	Background() common.Color

	// SetBackground sets the clear color of the scene.
	//
	// Parameters:
	//   - c: the new background color
	SetBackground(c common.Color)

	// MainLight returns the directional key light.
	//
	// Returns:
	//   - light.Light: the main light
	//   - bool: false if no main light is set
	MainLight() (light.Light, bool)

	// SetMainLight installs the directional key light.
	SetMainLight(l light.Light)

	// AmbientLight returns the uniform fill light.
	//
	// Returns:
	//   - light.Light: the ambient light
	//   - bool: false if no ambient light is set
	AmbientLight() (light.Light, bool)

	// SetAmbientLight installs the uniform fill light.
	SetAmbientLight(l light.Light)

	// StreetLights returns the set of street lamp lights. Never nil.
	//
	// Returns:
	//   - *light.Set: the street light set
	StreetLights() *light.Set

	// Lights returns every light in the scene: main, ambient, then street lights.
	//
	// Returns:
	//   - []light.Light: all lights
	Lights() []light.Light

	// River returns the mesh of the object registered as RoleRiver.
	//
	// Returns:
	//   - model.Mesh: the river mesh
	//   - bool: false if no river object or it carries no mesh
	River() (model.Mesh, bool)

	// Register adds an object under the given role and assigns it an ID if it has none.
	// Registering a second object under an animated role replaces the lookup target;
	// both remain part of Objects.
	//
	// Parameters:
	//   - role: the role of the object
	//   - obj: the object to add (nil is ignored)
	Register(role Role, obj game_object.GameObject)

	// Object returns the most recently registered object for role.
	//
	// Parameters:
	//   - role: the role to look up
	//
	// Returns:
	//   - game_object.GameObject: the object
	//   - bool: false if no object is registered under role
	Object(role Role) (game_object.GameObject, bool)

	// ObjectsByRole returns every object registered under role in registration order.
	ObjectsByRole(role Role) []game_object.GameObject

	// Objects returns every registered object in registration order.
	//
	// Returns:
	//   - []game_object.GameObject: all objects
	Objects() []game_object.GameObject

	// Count returns the number of registered objects.
	Count() int
}

type scene struct {
	mu *sync.RWMutex

	name       string
	background common.Color

	mainLight    light.Light
	ambientLight light.Light
	streetLights *light.Set

	objects []game_object.GameObject
	byRole  map[Role][]game_object.GameObject
	nextID  uint64
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new, empty Scene.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:           &sync.RWMutex{},
		name:         name,
		streetLights: light.NewSet(),
		byRole:       make(map[Role][]game_object.GameObject),
		nextID:       1,
	}

	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) Background() common.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.background
}

func (s *scene) SetBackground(c common.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = c
}

func (s *scene) MainLight() (light.Light, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mainLight, s.mainLight != nil
}

func (s *scene) SetMainLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mainLight = l
}

func (s *scene) AmbientLight() (light.Light, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ambientLight, s.ambientLight != nil
}

func (s *scene) SetAmbientLight(l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ambientLight = l
}

func (s *scene) StreetLights() *light.Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.streetLights
}

func (s *scene) Lights() []light.Light {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]light.Light, 0, s.streetLights.Len()+2)
	if s.mainLight != nil {
		out = append(out, s.mainLight)
	}
	if s.ambientLight != nil {
		out = append(out, s.ambientLight)
	}
	return append(out, s.streetLights.Lights()...)
}

func (s *scene) River() (model.Mesh, bool) {
	obj, ok := s.Object(RoleRiver)
	if !ok || obj.Mesh() == nil {
		return nil, false
	}
	return obj.Mesh(), true
}

func (s *scene) Register(role Role, obj game_object.GameObject) {
	if obj == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if obj.ID() == 0 {
		obj.SetID(s.nextID)
		s.nextID++
	}
	s.objects = append(s.objects, obj)
	s.byRole[role] = append(s.byRole[role], obj)
}

func (s *scene) Object(role Role) (game_object.GameObject, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objs := s.byRole[role]
	if len(objs) == 0 {
		return nil, false
	}
	return objs[len(objs)-1], true
}

func (s *scene) ObjectsByRole(role Role) []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]game_object.GameObject, len(s.byRole[role]))
	copy(out, s.byRole[role])
	return out
}

func (s *scene) Objects() []game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]game_object.GameObject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
