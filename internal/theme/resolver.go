package theme

import (
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/preference"
)

// Marker toggles the visual-mode marker on the root presentation context.
type Marker interface {
	SetDark(dark bool)
}

// MarkerFunc adapts a function to Marker.
type MarkerFunc func(dark bool)

func (f MarkerFunc) SetDark(dark bool) { f(dark) }

// Source records which rule produced a resolved mode.
type Source string

const (
	SourceStored  Source = "stored"
	SourceAmbient Source = "ambient"
	SourceDefault Source = "default"
)

// Resolution is the outcome of startup resolution.
type Resolution struct {
	Mode     Mode
	Source   Source
	Detector string
}

// Resolver picks the initial mode for a session.
type Resolver struct {
	store    preference.Store
	detector Detector
	marker   Marker
	fallback Mode
	log      *logger.Logger
}

// ResolverOption customises a Resolver.
type ResolverOption func(*Resolver)

// WithFallback replaces the default mode used when nothing else matches.
// Invalid modes are ignored.
func WithFallback(mode Mode) ResolverOption {
	return func(r *Resolver) {
		if mode.Valid() {
			r.fallback = mode
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver builds a Resolver. store, detector and marker may each be nil.
func NewResolver(store preference.Store, detector Detector, marker Marker, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		store:    store,
		detector: detector,
		marker:   marker,
		fallback: DefaultMode,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveInitial returns the session's starting mode. It never fails.
func (r *Resolver) ResolveInitial() Mode {
	return r.Resolve().Mode
}

// Resolve applies the priority rules: stored value, ambient dark preference, fallback.
// When the ambient rule matches, the marker is applied immediately so the first frame is
// already dark.
func (r *Resolver) Resolve() Resolution {
	if mode, ok := r.stored(); ok {
		r.log.WithFields(map[string]any{"mode": mode.String(), "source": string(SourceStored)}).Debug("theme resolved")
		return Resolution{Mode: mode, Source: SourceStored}
	}

	if r.detector != nil {
		prefersDark, ok, name := detectWithSource(r.detector)
		if ok && prefersDark {
			if r.marker != nil {
				r.marker.SetDark(true)
			}
			r.log.WithFields(map[string]any{"mode": Dark.String(), "source": string(SourceAmbient), "detector": name}).Debug("theme resolved")
			return Resolution{Mode: Dark, Source: SourceAmbient, Detector: name}
		}
	}

	r.log.WithFields(map[string]any{"mode": r.fallback.String(), "source": string(SourceDefault)}).Debug("theme resolved")
	return Resolution{Mode: r.fallback, Source: SourceDefault}
}

func (r *Resolver) stored() (Mode, bool) {
	if r.store == nil {
		return "", false
	}

	raw, ok, err := r.store.Get(StorageKey)
	if err != nil {
		r.log.Warn(err, "stored theme unreadable, ignoring")
		return "", false
	}
	if !ok {
		return "", false
	}

	mode, err := Parse(raw)
	if err != nil {
		r.log.Warn(err, "stored theme invalid, ignoring")
		return "", false
	}
	return mode, true
}

func detectWithSource(d Detector) (bool, bool, string) {
	if chain, ok := d.(Chain); ok {
		return chain.DetectWithSource()
	}
	prefersDark, ok := d.Detect()
	return prefersDark, ok, d.Name()
}
