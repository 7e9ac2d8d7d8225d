package reporting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	t.Parallel()

	t.Run("connection reset by peer", func(t *testing.T) {
		t.Parallel()

		err := `failed to send request: Get "http://saves.local/savegame.json": read tcp [dead:beef:feb1:d745::c001]:64079->[dead:beef::6811:112a]:443: read: connection reset by peer`
		want := `failed to send request: Get "http://saves.local/savegame.json": read tcp <host>-><host>: read: connection reset by peer`
		require.Equal(t, want, sanitizeError(err))
	})
	t.Run("connection refused ipv4", func(t *testing.T) {
		t.Parallel()

		err := `failed to send request: Get "http://192.168.1.20:8000/savegame.json": dial tcp 192.168.1.20:8000: connect: connection refused`
		want := `failed to send request: Get "http://<host>/savegame.json": dial tcp <host>: connect: connection refused`
		require.Equal(t, want, sanitizeError(err))
	})
	t.Run("context deadline", func(t *testing.T) {
		t.Parallel()

		err := `failed to send request: Get "https://saves.example.com/savegame.json": context deadline exceeded (Client.Timeout exceeded while awaiting headers)`
		require.Equal(t, err, sanitizeError(err))
	})
	t.Run("file paths", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			error string
			want  string
		}{
			{
				error: `failed to read save file: open /home/player/saves/savegame.json: permission denied`,
				want:  `failed to read save file: open <path>: permission denied`,
			},
			{
				error: `failed to read save file: read /srv/saves: is a directory`,
				want:  `failed to read save file: read <path>: is a directory`,
			},
			{
				error: `failed to read save file: open C:\Users\player\savegame.json: access is denied`,
				want:  `failed to read save file: open <path>: access is denied`,
			},
			{
				// Relative paths are not machine specific
				error: `failed to read save file: open ../saves/savegame.json: permission denied`,
				want:  `failed to read save file: open ../saves/savegame.json: permission denied`,
			},
		}
		for _, tc := range cases {
			t.Run(tc.error, func(t *testing.T) {
				t.Parallel()

				require.Equal(t, tc.want, sanitizeError(tc.error))
			})
		}
	})
	t.Run("misc ipv6", func(t *testing.T) {
		t.Parallel()

		ips := []string{
			`1:2:3:4:5:6:7:8`,
			`1::`,
			`1:2:3:4:5:6:7::`,
			`1::8`,
			`1:2:3:4:5:6::8`,
			`1::7:8`,
			`1:2:3:4:5::7:8`,
			`1::6:7:8`,
			`1:2:3:4::6:7:8`,
			`1::5:6:7:8`,
			`1:2:3::5:6:7:8`,
			`1::4:5:6:7:8`,
			`1:2::4:5:6:7:8`,
			`1::3:4:5:6:7:8`,
			`::2:3:4:5:6:7:8`,
			`::8`,
			`::`,
		}
		for _, ip := range ips {
			t.Run(ip, func(t *testing.T) {
				t.Parallel()

				require.Equal(t, "<host>", sanitizeError(fmt.Sprintf("[%s]:1234", ip)))
			})
		}
	})
}
