package runtime_test

import (
	"encoding/json"
	stdErrors "errors"
	"room-sync/domain"
	"room-sync/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func prepareState(f *fixture) {
	f.join("c1", 12, 1)
	f.join("c2", 12, 2)
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "interaction", interaction(1, domain.InteractionRender))})
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "interaction", interaction(2, domain.InteractionSceneChange))})
	f.transport.reset()
}

func Test_Engine_state_v2_is_sent_to_requester_only(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	prepareState(f)

	f.engine.Handle(domain.StateCommand{Origin: origin("c2"), SessionID: 12, ClientID: 2, Version: 2})

	states := f.transport.named("state")
	req.Len(states, 1)
	req.Equal(domain.ConnID("c2"), states[0].Conn)
	data, err := json.Marshal(states[0].Data)
	req.NoError(err)
	req.JSONEq(`{"clients":[1,2],"entities":[{"id":1,"latest":{},"render":true,"locked":false}],"scene":2,"isRecording":false}`, string(data))
}

func Test_Engine_state_without_version_uses_legacy_format(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	prepareState(f)
	f.engine.Handle(domain.MessageCommand{Origin: origin("c1"), Message: message(12, 1, "interaction", interaction(1, domain.InteractionLock))})
	f.transport.reset()

	f.engine.Handle(domain.StateCommand{Origin: origin("c2"), SessionID: 12, ClientID: 2})

	states := f.transport.named("state")
	req.Len(states, 1)
	data, err := json.Marshal(states[0].Data)
	req.NoError(err)
	req.JSONEq(`{"clients":[1,2],"entities":[1],"locked":[1],"scene":2,"isRecording":false}`, string(data))
}

func Test_Engine_state_for_unknown_session_sends_nothing(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	f.engine.Handle(domain.StateCommand{Origin: origin("c1"), SessionID: 42, ClientID: 1, Version: 2})

	req.Empty(f.transport.named("state"))
	_, err := f.engine.Snapshot(42, 2)
	req.True(stdErrors.Is(err, errors.ErrSessionNotFound))
	req.Equal(0, f.engine.Sessions().Len())
}

func Test_Engine_state_does_not_mutate_session(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	prepareState(f)
	before, err := f.engine.Snapshot(12, 2)
	req.NoError(err)

	f.engine.Handle(domain.StateCommand{Origin: origin("c1"), SessionID: 12, ClientID: 1, Version: 2})
	f.engine.Handle(domain.StateCommand{Origin: origin("c1"), SessionID: 12, ClientID: 1, Version: 2})

	after, err := f.engine.Snapshot(12, 2)
	req.NoError(err)
	req.Equal(before, after)
}

func Test_Engine_session_info_summarizes_session(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	prepareState(f)

	f.engine.Handle(domain.SessionInfoCommand{Origin: origin("c1"), SessionID: 12})
	f.engine.Handle(domain.SessionInfoCommand{Origin: origin("c1"), SessionID: 13})

	infos := f.transport.named("sessionInfo")
	req.Len(infos, 1)
	info := infos[0].Data.(domain.SessionInfo)
	req.Equal([]domain.ClientID{1, 2}, info.Clients)
	req.Equal(2, info.Connections)
	req.Equal(1, info.Entities)
	req.Equal(epoch.UnixMilli(), info.CreatedAt)
}
