package interop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/wippyai/ndarray/interop"
)

// Minimal wasm module: one memory of one page, exported as "mem".
var memOnlyModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic + version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 memory, min 1 page
	0x07, 0x07, 0x01, 0x03, 'm', 'e', 'm', 0x02, 0x00, // export "mem"
}

func TestAdoptGuestMemory(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, memOnlyModule)
	require.NoError(t, err)
	defer mod.Close(ctx)

	guest := mod.ExportedMemory("mem")
	require.NotNil(t, guest)

	require.True(t, guest.WriteFloat64Le(0, 1.5))
	require.True(t, guest.WriteFloat64Le(8, 2.5))

	released := 0
	s, err := interop.AdoptGuestMemory[float64](guest, 0, 2, func() { released++ })
	require.NoError(t, err)
	require.Equal(t, 2, s.Size())
	require.Equal(t, 1.5, *s.At(0))
	require.Equal(t, 2.5, *s.At(1))

	// Handle writes are visible to the guest.
	*s.At(1) = 4.25
	v, ok := guest.ReadFloat64Le(8)
	require.True(t, ok)
	require.Equal(t, 4.25, v)

	s.Release()
	require.Equal(t, 1, released)
}

func TestAdoptGuestMemoryOutOfBounds(t *testing.T) {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, memOnlyModule)
	require.NoError(t, err)
	defer mod.Close(ctx)

	guest := mod.ExportedMemory("mem")
	size := guest.Size()

	_, err = interop.AdoptGuestMemory[float64](guest, size-4, 2, nil)
	require.Error(t, err)
}
