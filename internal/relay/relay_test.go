package relay

import (
	"context"
	"errors"
	"testing"

	"github.com/martige/matchbot/internal/dathost"
	"github.com/martige/matchbot/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const logTimestamp = `L 08/31/2026 - 21:04:12: "player<12><[U:1:12345]><TERRORIST>"`

func TestHandleLogLines(t *testing.T) {
	t.Run("tech pause forwards pause and resume hint", func(t *testing.T) {
		gameServer := dathost.NewMockClient()
		m := metrics.NewMock()
		r := New(gameServer, "srv-1", m)

		err := r.HandleLogLines(context.Background(), logTimestamp+` say "!tech"`)
		require.NoError(t, err)

		require.Len(t, gameServer.ConsoleCalls, 2)
		assert.Equal(t, "srv-1", gameServer.ConsoleCalls[0].ServerID)
		assert.Equal(t, "mp_pause_match", gameServer.ConsoleCalls[0].Line)
		assert.Contains(t, gameServer.ConsoleCalls[1].Line, "!unpause")
		assert.Equal(t, 1, m.RelayCommandsCount)
	})

	t.Run("unpause forwards a single command", func(t *testing.T) {
		gameServer := dathost.NewMockClient()
		m := metrics.NewMock()
		r := New(gameServer, "srv-1", m)

		err := r.HandleLogLines(context.Background(), logTimestamp+` say "!unpause"`)
		require.NoError(t, err)

		require.Len(t, gameServer.ConsoleCalls, 1)
		assert.Equal(t, "mp_unpause_match", gameServer.ConsoleCalls[0].Line)
		assert.Equal(t, 1, m.RelayCommandsCount)
	})

	t.Run("unrecognized chat is ignored", func(t *testing.T) {
		gameServer := dathost.NewMockClient()
		r := New(gameServer, "srv-1", metrics.NewMock())

		body := logTimestamp + ` say "nice round"` + "\n" +
			logTimestamp + ` say "!gg"` + "\n" +
			"not a chat line at all"
		require.NoError(t, r.HandleLogLines(context.Background(), body))
		assert.Empty(t, gameServer.ConsoleCalls)
	})

	t.Run("multiple commands across lines", func(t *testing.T) {
		gameServer := dathost.NewMockClient()
		m := metrics.NewMock()
		r := New(gameServer, "srv-1", m)

		body := logTimestamp + ` say "!tech"` + "\n" + logTimestamp + ` say "!unpause"`
		require.NoError(t, r.HandleLogLines(context.Background(), body))

		// pause, hint, unpause
		require.Len(t, gameServer.ConsoleCalls, 3)
		assert.Equal(t, "mp_pause_match", gameServer.ConsoleCalls[0].Line)
		assert.Equal(t, "mp_unpause_match", gameServer.ConsoleCalls[2].Line)
		assert.Equal(t, 2, m.RelayCommandsCount)
	})

	t.Run("forwarding failure aborts the scan", func(t *testing.T) {
		gameServer := dathost.NewMockClient()
		gameServer.SendConsoleCommandFunc = func(serverID, line string) error {
			return errors.New("console unavailable")
		}
		m := metrics.NewMock()
		r := New(gameServer, "srv-1", m)

		body := logTimestamp + ` say "!unpause"` + "\n" + logTimestamp + ` say "!tech"`
		err := r.HandleLogLines(context.Background(), body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "!unpause")

		require.Len(t, gameServer.ConsoleCalls, 1, "the second command is never attempted")
		assert.Equal(t, 0, m.RelayCommandsCount)
	})

	t.Run("hint failure does not fail the relay", func(t *testing.T) {
		gameServer := dathost.NewMockClient()
		gameServer.SendConsoleCommandFunc = func(serverID, line string) error {
			if line != "mp_pause_match" {
				return errors.New("console unavailable")
			}
			return nil
		}
		m := metrics.NewMock()
		r := New(gameServer, "srv-1", m)

		err := r.HandleLogLines(context.Background(), logTimestamp+` say "!tech"`)
		require.NoError(t, err)
		assert.Equal(t, 1, m.RelayCommandsCount)
	})
}
