package auth

import (
	"encoding/json"
	"fmt"
	"os"
)

// Credential is one admin entry from the credentials file.
type Credential struct {
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CredentialStore resolves the current set of admins keyed by email.
type CredentialStore interface {
	Snapshot() (map[string]Credential, error)
}

type credentialsFile struct {
	Teachers map[string]Credential `json:"teachers"`
}

// FileStore reads credentials from a JSON file shaped as
// {"teachers": {email: {password, name}}}. The file is re-read on every call,
// so an edit takes effect on the next request without a restart. A missing
// file degrades to an empty store rather than an error.
type FileStore struct {
	Path string
}

func (s FileStore) Snapshot() (map[string]Credential, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Credential{}, nil
		}
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	var f credentialsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse credentials: %w", err)
	}
	if f.Teachers == nil {
		f.Teachers = map[string]Credential{}
	}
	return f.Teachers, nil
}

// MemoryStore serves a fixed credential set. Used by tests.
type MemoryStore map[string]Credential

func (s MemoryStore) Snapshot() (map[string]Credential, error) {
	out := make(map[string]Credential, len(s))
	for email, cred := range s {
		out[email] = cred
	}
	return out, nil
}
