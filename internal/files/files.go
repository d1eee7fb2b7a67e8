// Package files reads and writes named files confined to a base directory.
package files

import (
    "io"
    "os"
)

// Dir is a base directory. Names are resolved inside it through os.Root,
// so a name cannot escape the directory.
type Dir string

// ReadFile returns the contents of name.
func (d Dir) ReadFile(name string) ([]byte, error) {
    root, err := os.OpenRoot(string(d))
    if err != nil {
        return nil, err
    }
    defer root.Close()

    f, err := root.OpenFile(name, os.O_RDONLY, 0)
    if err != nil {
        return nil, err
    }
    defer f.Close()
    return io.ReadAll(f)
}

// WriteFile creates or truncates name and writes data to it.
func (d Dir) WriteFile(name string, data []byte) error {
    root, err := os.OpenRoot(string(d))
    if err != nil {
        return err
    }
    defer root.Close()

    f, err := root.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
    if err != nil {
        return err
    }
    if _, err := f.Write(data); err != nil {
        f.Close()
        return err
    }
    return f.Close()
}
