/*
Package ports defines the driven ports (interfaces) around decision tree traversal.

These interfaces decouple session handling and transports from concrete
backends, so the same trees can be served from memory or Redis.

# Key Interfaces

  - TreeSource: resolves registered trees by name or slug.
  - StateStore: persists and loads traversal State per session.
  - DistributedLocker: serializes access to a session across replicas.
*/
package ports
