// Package collection implements four ownership disciplines for holding a
// named sequence of [models.Album], plus the shared renderer they all feed.
//
// The realizations differ only in how the underlying data is acquired,
// shared, and released:
//  1. [Owned] : holds the only copy; constructing one transfers the data in
//  2. [Borrowed] : shares the provider's backing storage, read-only
//  3. [Cloned] : holds a deep, independent copy of the source
//  4. [Transparent] : a named slice type, indistinguishable from the
//     underlying sequence for reads but able to carry its own behavior
//
// All four satisfy [Collection], the read-only sequence capability that
// [Render] is written against, so the renderer composes with any of them
// without change.
//
// A [User] is the owning side: it decides, per accessor, which realization a
// caller gets. IntoCollection transfers the albums out and spends the user;
// BorrowCollection and CloneCollection leave the user intact and may be
// called any number of times.
//
// Go is garbage collected, so a Borrowed value keeps its backing storage
// alive and the use-after-free hazard of borrowing does not exist here. What
// remains of move semantics is enforced at runtime: a spent user answers
// every later accessor call with [shared.ErrCollectionMoved].
package collection
