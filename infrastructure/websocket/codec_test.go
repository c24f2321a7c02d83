package websocket_test

import (
	"encoding/json"
	stdErrors "errors"
	"room-sync/domain"
	"room-sync/errors"
	rsws "room-sync/infrastructure/websocket"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Decode_join_defaults_to_bump(t *testing.T) {
	req := require.New(t)

	cmd, err := rsws.Decode("c1", []byte(`{"event":"join","data":[12,456]}`))
	req.NoError(err)

	join, ok := cmd.(domain.JoinCommand)
	req.True(ok)
	req.Equal(domain.ConnID("c1"), join.Connection())
	req.Equal(domain.SessionID(12), join.SessionID)
	req.Equal(domain.ClientID(456), join.ClientID)
	req.True(join.Bump)
}

func Test_Decode_join_accepts_string_ids_and_explicit_bump(t *testing.T) {
	req := require.New(t)

	cmd, err := rsws.Decode("c1", []byte(`{"event":"join","data":["12","456",false]}`))
	req.NoError(err)

	join := cmd.(domain.JoinCommand)
	req.Equal(domain.SessionID(12), join.SessionID)
	req.Equal(domain.ClientID(456), join.ClientID)
	req.False(join.Bump)
}

func Test_Decode_update_packed_array(t *testing.T) {
	req := require.New(t)
	data := `[1,12,456,7,3,0.5,1.5,2.5]`

	cmd, err := rsws.Decode("c1", []byte(`{"event":"update","data":`+data+`}`))
	req.NoError(err)

	update := cmd.(domain.UpdateCommand)
	req.Equal(domain.SessionID(12), update.Packet.SessionID)
	req.Equal(domain.ClientID(456), update.Packet.ClientID)
	req.Equal(domain.EntityID(7), update.Packet.EntityID)
	req.Equal(3, update.Packet.EntityType)
	req.Equal(8, update.Packet.Length)
	req.JSONEq(data, string(update.Packet.Raw))
}

func Test_Decode_short_update_is_rejected(t *testing.T) {
	req := require.New(t)

	_, err := rsws.Decode("c1", []byte(`{"event":"update","data":[1,12,456]}`))
	req.True(stdErrors.Is(err, errors.ErrInvalidPacket))
}

func Test_Decode_interact_packed_array(t *testing.T) {
	req := require.New(t)

	cmd, err := rsws.Decode("c1", []byte(`{"event":"interact","data":[0,12,456,3,9,1]}`))
	req.NoError(err)

	interact := cmd.(domain.InteractCommand)
	req.Equal(domain.SessionID(12), interact.Packet.SessionID)
	req.Equal(domain.EntityID(3), interact.Packet.SourceEntityID)
	req.Equal(domain.EntityID(9), interact.Packet.TargetEntityID)
	req.Equal(domain.InteractionType(1), interact.Packet.InteractionType)
}

func Test_Decode_message_keeps_raw_frame_data(t *testing.T) {
	req := require.New(t)
	data := `{"session_id":12,"client_id":456,"type":"sync","message":{"entityId":3,"entityType":3}}`

	cmd, err := rsws.Decode("c1", []byte(`{"event":"message","data":`+data+`}`))
	req.NoError(err)

	msg := cmd.(domain.MessageCommand).Message
	req.Equal(domain.SessionID(12), msg.SessionID)
	req.Equal(domain.ClientID(456), msg.ClientID)
	req.Equal("sync", msg.Type)
	req.JSONEq(data, string(msg.Raw))
}

func Test_Decode_state_and_playback_objects(t *testing.T) {
	req := require.New(t)

	cmd, err := rsws.Decode("c1", []byte(`{"event":"state","data":{"session_id":12,"client_id":456,"version":2}}`))
	req.NoError(err)
	req.Equal(domain.StateCommand{Origin: domain.Origin{Conn: "c1"}, SessionID: 12, ClientID: 456, Version: 2}, cmd)

	cmd, err = rsws.Decode("c1", []byte(`{"event":"playback","data":{"session_id":12,"client_id":456,"playback_id":"12_1700"}}`))
	req.NoError(err)
	req.Equal(domain.PlaybackCommand{Origin: domain.Origin{Conn: "c1"}, SessionID: 12, ClientID: 456, PlaybackID: "12_1700"}, cmd)
}

func Test_Decode_object_frames_accept_string_ids(t *testing.T) {
	req := require.New(t)

	cmd, err := rsws.Decode("c1", []byte(`{"event":"message","data":{"session_id":"12","client_id":"456","type":"chat","message":"hi"}}`))
	req.NoError(err)
	msg := cmd.(domain.MessageCommand).Message
	req.Equal(domain.SessionID(12), msg.SessionID)
	req.Equal(domain.ClientID(456), msg.ClientID)

	cmd, err = rsws.Decode("c1", []byte(`{"event":"state","data":{"session_id":"12","client_id":456,"version":2}}`))
	req.NoError(err)
	req.Equal(domain.StateCommand{Origin: domain.Origin{Conn: "c1"}, SessionID: 12, ClientID: 456, Version: 2}, cmd)

	cmd, err = rsws.Decode("c1", []byte(`{"event":"playback","data":{"session_id":"12","client_id":"456","playback_id":"12_1700"}}`))
	req.NoError(err)
	req.Equal(domain.PlaybackCommand{Origin: domain.Origin{Conn: "c1"}, SessionID: 12, ClientID: 456, PlaybackID: "12_1700"}, cmd)
}

func Test_Decode_fractional_ids_are_rejected(t *testing.T) {
	req := require.New(t)

	_, err := rsws.Decode("c1", []byte(`{"event":"sessionInfo","data":12.5}`))
	req.True(stdErrors.Is(err, errors.ErrInvalidPacket))

	_, err = rsws.Decode("c1", []byte(`{"event":"message","data":{"session_id":12.5,"client_id":1,"type":"chat","message":"hi"}}`))
	req.True(stdErrors.Is(err, errors.ErrInvalidPacket))

	// A fractional id in a packed array reads as missing
	cmd, err := rsws.Decode("c1", []byte(`{"event":"join","data":[12.5,456]}`))
	req.NoError(err)
	req.Equal(domain.SessionID(0), cmd.(domain.JoinCommand).SessionID)
}

func Test_Decode_recording_and_session_info_take_a_bare_id(t *testing.T) {
	req := require.New(t)

	cmd, err := rsws.Decode("c1", []byte(`{"event":"start_recording","data":12}`))
	req.NoError(err)
	req.Equal(domain.StartRecordingCommand{Origin: domain.Origin{Conn: "c1"}, SessionID: 12}, cmd)

	cmd, err = rsws.Decode("c1", []byte(`{"event":"end_recording","data":"12"}`))
	req.NoError(err)
	req.Equal(domain.EndRecordingCommand{Origin: domain.Origin{Conn: "c1"}, SessionID: 12}, cmd)

	cmd, err = rsws.Decode("c1", []byte(`{"event":"sessionInfo","data":12}`))
	req.NoError(err)
	req.Equal(domain.SessionInfoCommand{Origin: domain.Origin{Conn: "c1"}, SessionID: 12}, cmd)
}

func Test_Decode_unknown_event_and_garbage(t *testing.T) {
	req := require.New(t)

	_, err := rsws.Decode("c1", []byte(`{"event":"teleport","data":1}`))
	req.True(stdErrors.Is(err, errors.ErrUnknownEvent))

	_, err = rsws.Decode("c1", []byte(`not json`))
	req.True(stdErrors.Is(err, errors.ErrInvalidPacket))
}

func Test_Encode_wraps_event_and_data(t *testing.T) {
	req := require.New(t)

	msg, err := rsws.Encode(rsws.EventFailedToJoin, rsws.Failure{SessionID: 12, Reason: "closed"})
	req.NoError(err)
	req.JSONEq(`{"event":"failedToJoin","data":{"session_id":12,"reason":"closed"}}`, string(msg))

	msg, err = rsws.Encode(rsws.EventRelayUpdate, json.RawMessage(`[1,2,3]`))
	req.NoError(err)
	req.JSONEq(`{"event":"relayUpdate","data":[1,2,3]}`, string(msg))
}
