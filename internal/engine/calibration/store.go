package calibration

import (
	"encoding/json"

	"go.trai.ch/semi/internal/core/domain"
	"go.trai.ch/semi/internal/core/ports"
	"go.trai.ch/zerr"
)

// LoadModel reads the model stored under key. A missing, unreadable or
// malformed entry yields an empty model; failures are logged.
func LoadModel(store ports.PreferenceStore, key string, log ports.Logger) *domain.CoastDistance {
	raw, ok, err := store.Get(key)
	if err != nil {
		log.Error(zerr.With(zerr.Wrap(err, "failed to read coast model"), "key", key))
		return domain.NewCoastDistance()
	}
	if !ok {
		return domain.NewCoastDistance()
	}

	model, err := domain.ParseCoastDistance(raw)
	if err != nil {
		log.Error(zerr.With(err, "key", key))
		return domain.NewCoastDistance()
	}
	return model
}

// SaveModel writes model as JSON under key.
func SaveModel(store ports.PreferenceStore, key string, model *domain.CoastDistance) error {
	data, err := json.Marshal(model)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode coast model"), "key", key)
	}
	if err := store.Put(key, string(data)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to persist coast model"), "key", key)
	}
	return nil
}

// LoadModels reads both persisted models into a new holder.
func LoadModels(store ports.PreferenceStore, keys domain.PreferenceKeys, log ports.Logger) *Models {
	m := NewModels()
	m.Install(KindDrive, LoadModel(store, KindDrive.Key(keys), log))
	m.Install(KindRotate, LoadModel(store, KindRotate.Key(keys), log))
	return m
}
