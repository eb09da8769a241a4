/*
Package fastiter provides a data-parallel iterator engine: it takes an
indexable or streamable collection, splits it into contiguous chunks,
processes each chunk with a user-supplied pipeline of element
transformations and filters, and recombines the per-chunk partial
results into a single value or sequence.

It targets CPU-bound bulk-data computations where the work per element
is non-trivial and the collection is large enough that shared-memory
parallelism amortises scheduling overhead. The design is influenced by
Rust's Rayon and, more distantly, by Cilk and Java's java.util.stream.

fastiter provides the following subpackages:

fastiter/producer defines the splittable data sources (Producer for
known-length collections, UnindexedProducer for streams of unknown
length) that feed the engine.

fastiter/consumer defines the fold-and-combine operators (Sum, Count,
Min, Max, Any, All, Reduce, Collect, ForEach, Fold) and the Map/Filter
adapters that stack on top of them.

fastiter/bridge implements the recursive split/spawn/combine engine
that pairs a producer with a consumer and drives it to a result.

fastiter/pool holds the process-wide worker pool and its configuration
(thread count, minimum split size, maximum split depth).

The root package exposes the convenience surface over these pieces:
FromRange, FromSlice, Concat, and FromIterable construct an Iter[T];
Map, Filter, Fold, Sum, Count, Min, Max, MinKey, MaxKey, Any, All,
Reduce, Collect, ForEach, ForEachOrdered, and GroupBy operate on it.
Sort and SortFunc run the same worker pool over an in-memory slice
without going through the producer/consumer/bridge machinery, since a
comparison sort has no partial result to combine.
*/
package fastiter
