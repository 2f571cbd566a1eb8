package binuuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapay/albapay/internal/binuuid"
)

func TestEncode(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}

	tests := []testCase{
		{
			name:  "Canonical",
			input: "550e8400-e29b-41d4-a716-446655440000",
			want: []byte{
				0x55, 0x0e, 0x84, 0x00, 0xe2, 0x9b, 0x41, 0xd4,
				0xa7, 0x16, 0x44, 0x66, 0x55, 0x44, 0x00, 0x00,
			},
		},
		{
			name:    "NotHex",
			input:   "550e8400-e29b-41d4-a716-44665544zzzz",
			wantErr: true,
		},
		{
			name:    "TooShort",
			input:   "550e8400-e29b",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := binuuid.Encode(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, binuuid.ErrInvalidFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_WrongLength(t *testing.T) {
	_, err := binuuid.Decode([]byte{0x01, 0x02, 0x03})
	assert.ErrorIs(t, err, binuuid.ErrInvalidFormat)
}

func TestRoundTrip(t *testing.T) {
	ids := []string{
		"550e8400-e29b-41d4-a716-446655440000",
		"00000000-0000-0000-0000-000000000000",
		"ffffffff-ffff-ffff-ffff-ffffffffffff",
		"123e4567-e89b-12d3-a456-426614174000",
	}

	for _, id := range ids {
		bin, err := binuuid.Encode(id)
		require.NoError(t, err)
		require.Len(t, bin, binuuid.Size)

		back, err := binuuid.Decode(bin)
		require.NoError(t, err)
		assert.Equal(t, id, back)
	}
}

func TestRoundTrip_FromBinary(t *testing.T) {
	bin := []byte{
		0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33,
		0x44, 0x55, 0x66, 0x77, 0x88, 0x99, 0xaa, 0xbb,
	}

	s, err := binuuid.Decode(bin)
	require.NoError(t, err)

	back, err := binuuid.Encode(s)
	require.NoError(t, err)
	assert.Equal(t, bin, back)
}
