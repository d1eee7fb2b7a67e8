package files

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func Test_Write_Then_Read(t *testing.T) {
    d := Dir(t.TempDir())
    require.NoError(t, d.WriteFile("a.txt", []byte("hello")))

    got, err := d.ReadFile("a.txt")
    require.NoError(t, err)
    assert.Equal(t, []byte("hello"), got)
}

func Test_Write_Truncates(t *testing.T) {
    d := Dir(t.TempDir())
    require.NoError(t, d.WriteFile("a.txt", []byte("a long first version")))
    require.NoError(t, d.WriteFile("a.txt", []byte("short")))

    got, err := d.ReadFile("a.txt")
    require.NoError(t, err)
    assert.Equal(t, "short", string(got))
}

func Test_Read_Missing(t *testing.T) {
    d := Dir(t.TempDir())
    _, err := d.ReadFile("missing.txt")
    require.ErrorIs(t, err, os.ErrNotExist)
}

func Test_Missing_Directory(t *testing.T) {
    d := Dir(filepath.Join(t.TempDir(), "nope"))
    _, err := d.ReadFile("a.txt")
    require.Error(t, err)
    require.Error(t, d.WriteFile("a.txt", []byte("x")))
}

func Test_Names_Cannot_Escape(t *testing.T) {
    parent := t.TempDir()
    require.NoError(t, os.WriteFile(filepath.Join(parent, "secret"), []byte("s"), 0644))
    base := filepath.Join(parent, "base")
    require.NoError(t, os.Mkdir(base, 0755))

    d := Dir(base)
    _, err := d.ReadFile("../secret")
    require.Error(t, err)
    require.Error(t, d.WriteFile("../escaped", []byte("x")))
    _, err = os.Stat(filepath.Join(parent, "escaped"))
    assert.True(t, os.IsNotExist(err))
}
