package domain

// InteractionType is the code carried by interaction messages and interact packets.
// Values 0, 1, 4, 5 and 7 are reserved (look, grab and unset are no longer emitted).
type InteractionType int

const (
	InteractionRender      InteractionType = 2
	InteractionRenderEnd   InteractionType = 3
	InteractionSceneChange InteractionType = 6
	InteractionLock        InteractionType = 8
	InteractionLockEnd     InteractionType = 9
)

// EntityTypeObjects is the entity type whose sync payloads update session state.
const EntityTypeObjects = 3

// Message types that change session state. Any other type is relayed and
// recorded only.
const (
	MessageTypeInteraction = "interaction"
	MessageTypeSync        = "sync"
)

// Transition describes what an interaction does to an entity: Apply mutates
// an existing one, Defaults is used when the entity has never been seen.
type Transition struct {
	Apply    func(e *Entity)
	Defaults Entity
}

// Transitions maps each entity-level interaction to its state change.
// Scene changes are not entity transitions and are handled separately.
var Transitions = map[InteractionType]Transition{
	InteractionRender: {
		Apply:    func(e *Entity) { e.Render = true },
		Defaults: Entity{Render: true, Locked: false},
	},
	InteractionRenderEnd: {
		Apply:    func(e *Entity) { e.Render = false },
		Defaults: Entity{Render: false, Locked: false},
	},
	InteractionLock: {
		Apply:    func(e *Entity) { e.Locked = true },
		Defaults: Entity{Render: true, Locked: true},
	},
	InteractionLockEnd: {
		Apply:    func(e *Entity) { e.Locked = false },
		Defaults: Entity{Render: true, Locked: false},
	},
}

// ApplyInteraction applies an interaction to the session. It reports
// whether the interaction type is one that changes state.
func (s *Session) ApplyInteraction(target EntityID, interaction InteractionType) bool {
	if interaction == InteractionSceneChange {
		s.ChangeScene(target)
		return true
	}
	transition, ok := Transitions[interaction]
	if !ok {
		return false
	}
	if e, created := s.EnsureEntity(target, transition.Defaults); !created {
		transition.Apply(e)
	}
	return true
}

// ApplySync replaces the latest payload of an entity, creating a rendered,
// unlocked entity on first reference. It reports whether the entity was created.
func (s *Session) ApplySync(id EntityID, latest []byte) bool {
	e, created := s.EnsureEntity(id, Entity{Render: true, Locked: false, Latest: latest})
	if !created {
		e.Latest = latest
	}
	return created
}
