/*
Package session runs decision tree traversals whose state is persisted.

Each call loads the session state, restores it onto a fresh copy of the
registered tree, applies one step and saves the result. Calls for the same
session are serialized in process, and across replicas when a
DistributedLocker is configured.
*/
package session
