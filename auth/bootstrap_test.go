package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLaunchAddress(t *testing.T) {
	req := require.New(t)
	address, err := NewLaunchAddress("https://chat.example.com/app?theme=dark&token=A")
	req.NoError(err)

	token, ok := address.Token()
	req.True(ok)
	req.Equal("A", token)

	// When the token is stripped
	address.Strip()

	// Then the rest of the address survives
	_, ok = address.Token()
	req.False(ok)
	req.Equal("https://chat.example.com/app?theme=dark", address.String())
}

func TestLaunchAddress_WithoutToken(t *testing.T) {
	req := require.New(t)
	address, err := NewLaunchAddress("")
	req.NoError(err)

	_, ok := address.Token()
	address.Strip()

	req.False(ok)
	req.Empty(address.String())
}
