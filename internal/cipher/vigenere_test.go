package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVigenereStream_Encrypt(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  string
		want string
	}{
		{name: "punctuation preserved", text: "hello, world!", key: "key", want: "rijvs, ambpb!"},
		{name: "single letter key", text: "abc xyz", key: "b", want: "bcd yza"},
		{name: "wraps around z", text: "zzz", key: "b", want: "aaa"},
		{name: "cursor advances on non-letters", text: "a1b2c3", key: "abc", want: "a1d2d3"},
		{name: "spaces consume key letters", text: "attack at dawn", key: "lemon", want: "lxfopv mh oeib"},
		{name: "uppercase folded", text: "ABC", key: "b", want: "bcd"},
		{name: "uppercase key folded", text: "abc", key: "B", want: "bcd"},
		{name: "non-ascii untouched", text: "é—ü", key: "z", want: "é—ü"},
	}

	v := NewVigenereStream()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Encrypt(tt.text, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVigenereStream_DecryptInvertsEncrypt(t *testing.T) {
	v := NewVigenereStream()
	texts := []string{
		"",
		"hello, world!",
		"here is what you came for: enigma{d3crypt!_c0mp13t3_0123}",
		"wah, you've found your way here—impressive.\n",
		"{}[]()!?.,;:'\"0123456789 \t\n",
	}
	keys := []string{"a", "enigma", "cipher", "zzzz", "k3y-with-digits"}

	for _, key := range keys {
		for _, text := range texts {
			enc, err := v.Encrypt(text, key)
			require.NoError(t, err)
			dec, err := v.Decrypt(enc, key)
			require.NoError(t, err)
			assert.Equal(t, text, dec, "key %q", key)
		}
	}
}

func TestVigenereStream_FoldsUppercase(t *testing.T) {
	v := NewVigenereStream()

	enc, err := v.Encrypt("Attack At Dawn", "lemon")
	require.NoError(t, err)
	dec, err := v.Decrypt(enc, "lemon")
	require.NoError(t, err)
	assert.Equal(t, "attack at dawn", dec)

	dec, err = v.Decrypt("B", "b")
	require.NoError(t, err)
	assert.Equal(t, "a", dec)
}

func TestShiftOf(t *testing.T) {
	assert.Equal(t, 0, shiftOf('a'))
	assert.Equal(t, 25, shiftOf('z'))
	assert.Equal(t, mod('3'-'a', 26), shiftOf('3'))
	assert.GreaterOrEqual(t, shiftOf('-'), 0)
}

func TestVigenereStream_EmptyKey(t *testing.T) {
	v := NewVigenereStream()

	_, err := v.Encrypt("abc", "")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = v.Decrypt("abc", "")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
