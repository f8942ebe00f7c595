// SPDX-License-Identifier: Unlicense OR MIT

package reactive

// flusher is implemented by every reactive source that can defer its
// notification to the end of a batch scope.
type flusher interface {
	flushBatch(meta Metadata)
}

// batch collects the sources touched during a Batch call so that each
// fires exactly once, after the batch closes, in the order its source
// was first touched (§5: "within a batch, each binding fires once with
// the batch's animation metadata, and all fires occur after the batch
// closes").
type batch struct {
	anim    Animation
	order   []flusher
	touched map[flusher]bool
}

func (b *batch) touch(f flusher) {
	if b.touched == nil {
		b.touched = make(map[flusher]bool)
	}
	if b.touched[f] {
		return
	}
	b.touched[f] = true
	b.order = append(b.order, f)
}

// activeBatch is the single in-flight batch, if any. Like scopeStack,
// this relies on the single-UI-thread contract: batches do not nest
// (the spec does not define nested-batch semantics), so entering
// Batch while one is already active simply reuses the outer one.
var activeBatch *batch

// Batch wraps a scope in which every Set on a batch-aware binding
// (see Binding.Set) is deferred: watchers observe at most one
// notification per binding, carrying anim as its metadata, once every
// mutation inside fn has completed.
func Batch(anim Animation, fn func()) {
	if activeBatch != nil {
		// Already inside a batch; just run fn under the same batch so
		// the enclosing Batch call performs the single flush.
		WithAnimation(anim, fn)
		return
	}
	b := &batch{anim: anim}
	activeBatch = b
	WithAnimation(anim, fn)
	activeBatch = nil

	for _, f := range b.order {
		f.flushBatch(Metadata{Animation: anim})
	}
}
