package suppression

import "time"

// View is an immutable per-pass snapshot of the suppression maps. The engine
// consults it synchronously; it never reaches back into the store.
type View struct {
	Acknowledged map[string]time.Time // key → when it was acknowledged
	SnoozedUntil map[string]time.Time // key → expiry instant
}

// EmptyView returns a view that suppresses nothing. Store read failures
// degrade to this rather than failing the computation.
func EmptyView() View {
	return View{
		Acknowledged: map[string]time.Time{},
		SnoozedUntil: map[string]time.Time{},
	}
}

// Suppressed reports whether an alert key is filtered at the given instant.
// Acknowledgments never expire; snoozes expire once now passes the stored
// timestamp.
func (v View) Suppressed(key string, now time.Time) bool {
	if _, ok := v.Acknowledged[key]; ok {
		return true
	}
	if until, ok := v.SnoozedUntil[key]; ok && now.Before(until) {
		return true
	}
	return false
}
