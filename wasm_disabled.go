//go:build !(js && wasm)

package main

import (
	"os"
	"os/user"
	"path/filepath"
)

func getUsername() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}

// WriteFile creates the parent folder if necessary, so that recordings can go
// to a folder that doesn't exist yet.
func WriteFile(name string, data []byte) {
	MakeDir(filepath.Dir(name))
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

func MakeDir(name string) {
	err := os.MkdirAll(name, 0755)
	Check(err)
}
