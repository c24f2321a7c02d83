package runtime_test

import (
	"encoding/json"
	"room-sync/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func interaction(target domain.EntityID, kind domain.InteractionType) string {
	data, _ := json.Marshal(domain.InteractionPayload{SourceEntityID: 1, TargetEntityID: target, InteractionType: kind})
	return string(data)
}

func Test_Engine_message_is_relayed_to_others_and_applied(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.join("c2", 12, 2)
	f.transport.reset()

	// When client 1 changes the scene twice
	msg := message(12, 1, domain.MessageTypeInteraction, interaction(7, domain.InteractionSceneChange))
	msg.Raw = json.RawMessage(`{"session_id":12,"client_id":1,"type":"interaction","message":"raw"}`)
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: msg})
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: msg})

	// Then the raw frame is relayed from c1 and the scene is set once
	relayed := f.transport.named("message")
	req.Len(relayed, 2)
	req.Equal(domain.ConnID("c1"), relayed[0].Conn)
	req.Equal(string(msg.Raw), relayed[0].Data)
	session := f.session(t, 12)
	req.NotNil(session.Scene)
	req.Equal(domain.EntityID(7), *session.Scene)
	req.Equal(0, session.EntityCount())
}

func Test_Engine_sync_creates_entity_once_and_replaces_latest(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)

	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "sync", `{"entityId":5,"entityType":3,"x":1}`)})
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "sync", `{"entityId":5,"entityType":3,"x":2}`)})

	session := f.session(t, 12)
	req.Equal(1, session.EntityCount())
	entity, ok := session.Entity(5)
	req.True(ok)
	req.JSONEq(`{"entityId":5,"entityType":3,"x":2}`, string(entity.Latest))
	req.True(entity.Render)
	req.False(entity.Locked)
}

func Test_Engine_sync_for_other_entity_types_is_relay_only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.transport.reset()

	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "sync", `{"entityId":5,"entityType":1}`)})

	req.Len(f.transport.named("message"), 1)
	req.Equal(0, f.session(t, 12).EntityCount())
}

func Test_Engine_message_payload_may_be_serialized_json(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)

	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "interaction", `"{\"targetEntity_id\":9,\"interactionType\":8}"`)})

	entity, ok := f.session(t, 12).Entity(9)
	req.True(ok)
	req.True(entity.Locked)
	req.True(entity.Render)
}

func Test_Engine_message_without_type_or_payload_is_dropped(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.transport.reset()

	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "", `{"a":1}`)})
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "chat", `null`)})
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "chat", ``)})

	req.Empty(f.transport.named("message"))
}

func Test_Engine_interaction_without_target_changes_nothing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)

	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "interaction", interaction(0, domain.InteractionRender))})

	req.Equal(0, f.session(t, 12).EntityCount())
	req.Len(f.transport.named("message"), 1)
}

func Test_Engine_rejects_connection_speaking_for_another_client(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.join("c2", 12, 2)
	f.transport.reset()

	// When c1 sends a message as client 2
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 2, "sync", `{"entityId":5}`)})

	// Then c1 is rejected and nothing is relayed or applied
	req.Len(f.transport.named("rejectUser"), 1)
	req.Equal([]sent{{Event: "disconnect", Conn: "c1"}}, f.transport.named("disconnect"))
	req.Empty(f.transport.named("message"))
	req.Equal(0, f.session(t, 12).EntityCount())
}

func Test_Engine_message_to_unknown_session_creates_it(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.transport.reset()

	// When c1, bound to session 12, writes to session 99
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(99, 1, "sync", `{"entityId":5}`)})

	// Then session 99 exists with the entity and an empty roster
	session := f.session(t, 99)
	req.Equal(1, session.EntityCount())
	req.Empty(session.Clients())
	req.Len(f.transport.named("message"), 1)
}

func Test_Engine_first_message_from_unbound_connection_waits_for_repair(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.transport.reset()

	// When a connection that never joined writes straight away
	f.engine.Handle(domain.MessageCommand{Origin: origin("c9"), Message: message(77, 4, "sync", `{"entityId":5}`)})

	// Then it is parked and nothing is created or relayed
	req.True(f.repair.Has("c9"))
	req.Empty(f.transport.named("message"))
	_, ok := f.engine.Sessions().Get(77)
	req.False(ok)
}

func Test_Engine_message_without_ids_disconnects(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(0, 1, "sync", `{"entityId":5}`)})

	req.Len(f.transport.named("connectionError"), 1)
	req.Len(f.transport.named("disconnect"), 1)
	req.Equal(0, f.engine.Sessions().Len())
}

func Test_Engine_update_relays_and_stores_object_entities(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.transport.reset()

	raw := json.RawMessage(`[1,12,1,5,3,0.1,0.2]`)
	f.engine.Handle(domain.UpdateCommand{Origin: origin("c1"), Packet: domain.UpdatePacket{
		SessionID: 12, ClientID: 1, EntityID: 5, EntityType: 3, Length: 7, Raw: raw,
	}})
	f.engine.Handle(domain.UpdateCommand{Origin: origin("c1"), Packet: domain.UpdatePacket{
		SessionID: 12, ClientID: 1, EntityID: 6, EntityType: 1, Length: 5, Raw: json.RawMessage(`[1,12,1,6,1]`),
	}})

	req.Equal([]sent{
		{Event: "relayUpdate", Conn: "c1", SessionID: 12, Data: string(raw)},
		{Event: "relayUpdate", Conn: "c1", SessionID: 12, Data: `[1,12,1,6,1]`},
	}, f.transport.named("relayUpdate"))
	session := f.session(t, 12)
	req.Equal(1, session.EntityCount())
	entity, _ := session.Entity(5)
	req.JSONEq(string(raw), string(entity.Latest))
}

func Test_Engine_update_from_client_outside_roster_is_ignored(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.join("c9", 13, 7)
	f.transport.reset()

	// When c9, bound to session 13, updates session 12 as client 7
	f.engine.Handle(domain.UpdateCommand{Origin: origin("c9"), Packet: domain.UpdatePacket{
		SessionID: 12, ClientID: 7, EntityID: 5, EntityType: 3, Length: 5, Raw: json.RawMessage(`[1,12,7,5,3]`),
	}})

	req.Empty(f.transport.named("relayUpdate"))
	req.Equal(0, f.session(t, 12).EntityCount())
}

func Test_Engine_interact_relays_and_applies_for_roster_clients(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.join("c9", 13, 7)
	f.transport.reset()

	f.engine.Handle(domain.InteractCommand{Origin: origin("c1"), Packet: domain.InteractPacket{
		SessionID: 12, ClientID: 1, SourceEntityID: 1, TargetEntityID: 9, InteractionType: domain.InteractionLock,
		Raw: json.RawMessage(`[0,12,1,1,9,8]`),
	}})
	f.engine.Handle(domain.InteractCommand{Origin: origin("c9"), Packet: domain.InteractPacket{
		SessionID: 12, ClientID: 7, SourceEntityID: 1, TargetEntityID: 10, InteractionType: domain.InteractionLock,
		Raw: json.RawMessage(`[0,12,7,1,10,8]`),
	}})

	req.Len(f.transport.named("interactionUpdate"), 2)
	session := f.session(t, 12)
	req.Equal(1, session.EntityCount())
	entity, ok := session.Entity(9)
	req.True(ok)
	req.True(entity.Locked)
}

func Test_Engine_draw_is_relayed_only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.join("c1", 12, 1)
	f.transport.reset()

	f.engine.Handle(domain.DrawCommand{Origin: origin("c1"), Packet: domain.DrawPacket{SessionID: 12, ClientID: 1, Raw: json.RawMessage(`[0,12,1,5]`)}})
	f.engine.Handle(domain.DrawCommand{Origin: origin("c1"), Packet: domain.DrawPacket{ClientID: 1, Raw: json.RawMessage(`[0,0,1]`)}})

	req.Equal([]sent{{Event: "draw", Conn: "c1", SessionID: 12, Data: `[0,12,1,5]`}}, f.transport.named("draw"))
	req.Equal(0, f.session(t, 12).EntityCount())
}
