package theme

import (
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/preference"
)

// Persister mirrors a mode into the preference store and the visual-mode marker.
type Persister struct {
	store  preference.Store
	marker Marker
	log    *logger.Logger
}

// NewPersister builds a Persister. store and marker may be nil.
func NewPersister(store preference.Store, marker Marker, log *logger.Logger) *Persister {
	return &Persister{store: store, marker: marker, log: log}
}

// ApplyAndPersist writes mode under StorageKey and sets the marker to match.
// Storage failures are logged and otherwise ignored: the in-memory mode stays authoritative.
func (p *Persister) ApplyAndPersist(mode Mode) {
	if !mode.Valid() {
		p.log.Warn(nil, "refusing to persist invalid theme mode "+string(mode))
		return
	}

	if p.marker != nil {
		p.marker.SetDark(mode.IsDark())
	}

	if p.store == nil {
		return
	}
	if err := p.store.Set(StorageKey, mode.String()); err != nil {
		p.log.Warn(err, "theme preference not saved")
		return
	}
	p.log.WithFields(map[string]any{"mode": mode.String()}).Debug("theme preference saved")
}
