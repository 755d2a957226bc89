// Package trace captures construction traces as replayable recordings.
//
// A Recorder implements euclid.Tracer and receives every point, line
// and circle the moment it is first constructed on a plane. Because
// memoized constructions are only traced on a cache miss, the recorded
// sequence is exactly the deduplicated construction order: each figure
// appears once, after everything it was built from.
//
// Use Finish to obtain an immutable Recording, which can be replayed
// to any Backend implementation:
//
//	rec := trace.NewRecorder()
//	pl := euclid.NewPlane(euclid.WithTracer(rec))
//	n, _ := pl.Int(42)
//	_ = n
//
//	recording := rec.Finish()
//	backend := trace.MustBackend("script")
//	_ = recording.Playback(backend)
//
// Backends are registered by name following the database/sql driver
// pattern: a backend package registers itself in init(), and callers
// import it for side effects and construct it via NewBackend.
package trace
