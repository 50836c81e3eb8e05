package recorder

import (
	"fmt"
	"time"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/zerr"
)

// Save stores rec under key as base64 of its binary layout.
func Save(store ports.PreferenceStore, key string, rec *domain.Recording, log ports.Logger) error {
	if rec == nil {
		return zerr.With(zerr.Wrap(domain.ErrNoRecording, "save recording"), "key", key)
	}
	encoded, err := domain.EncodeRecording(rec)
	if err != nil {
		return zerr.With(err, "key", key)
	}
	if err := store.Put(key, encoded); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to persist recording"), "key", key)
	}
	log.Info(fmt.Sprintf("saved recording %016x: %d actions", rec.Fingerprint(), rec.Len()))
	return nil
}

// Load reads the recording stored under key. Missing or malformed entries
// are logged and yield nil.
func Load(store ports.PreferenceStore, key string, period time.Duration, log ports.Logger) *domain.Recording {
	raw, ok, err := store.Get(key)
	if err != nil {
		log.Error(zerr.With(zerr.Wrap(err, "failed to read recording"), "key", key))
		return nil
	}
	if !ok {
		log.Warn("no recording stored under " + key)
		return nil
	}

	rec, err := domain.DecodeRecording(raw, period)
	if err != nil {
		log.Error(zerr.With(err, "key", key))
		return nil
	}
	log.Info(fmt.Sprintf("loaded recording %016x: %d actions", rec.Fingerprint(), rec.Len()))
	return rec
}
