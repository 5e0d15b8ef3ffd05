/*
Package arraylist implements a resizable, index addressable sequence container.

An ArrayList stores element handles of a comparable type T in a contiguous buffer.
Handles are compared with ==, which means identity for pointer handles:
two distinct pointers to equal payloads are different elements.
The list never dereferences, copies or frees what a handle points to.

# Growth

The buffer grows only when an append or insert would exceed the capacity,
and it never shrinks on its own.
By default the capacity grows by a fixed increment (DefaultGrowthIncrement),
and bulk operations grow the buffer once for the whole batch:

	newCapacity = max(required, capacity+GrowthIncrement, capacity*GrowthFactor)

Setting a GrowthFactor above 1 switches to multiplicative growth.

# Views

SubList returns a view: an ArrayList that aliases a range of its owner instead of owning a buffer.
A view resolves its range against the owner's current buffer on every access,
so it survives the owner's buffer reallocation.
Structural changes made through the view are applied to the owner,
and Set calls are visible in both directions.

A structural change made to the owner (or to a sibling view) behind the view's back leaves the view stale.
Every operation on a stale view panics with ErrStaleView.
Releasing the owner makes its views stale as well.

# Errors

Out of range indexes and invalid arguments are programmer errors.
They are reported with a panic carrying an error value that matches
ErrIndexOutOfRange, ErrStaleView, ErrConcurrentModification or ErrInvalidArgument with errors.Is.
The checks happen before any mutation.
Try converts these panics into error values.
Not finding an element is not an error: Remove reports false and IndexOf returns NotFound.

An ArrayList is not safe for concurrent use.
A list, and the views over it, must be owned by a single goroutine at a time.
*/
package arraylist
