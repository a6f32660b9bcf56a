// Package events provides list change notifications.
//
// Observable collections emit a ListChangedEvent after every committed mutation.
// Dependent views register an EventHandler and recompute themselves synchronously,
// so by the time a mutating call returns every registered view reflects it.
//
// The primary components are:
// - ListChangedEvent: Describes a committed change to a list
// - EventHandler: Interface for components that react to changes
// - EventEmitter: Interface for components that publish changes
package events
