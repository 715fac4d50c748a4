package openapi

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	json "github.com/goccy/go-json"
)

// Encode renders spec as indented JSON.
func Encode(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// Handler encodes spec once and serves the bytes with a content-hash ETag.
// Requests carrying a matching If-None-Match get 304 Not Modified.
func Handler(spec *Spec) (http.HandlerFunc, error) {
	body, err := Encode(spec)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(sum[:8]) + `"`

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(body)
	}, nil
}
