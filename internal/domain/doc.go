// Package domain contains the core business entities, value objects, and
// domain logic of the application: people, their job applications, tags, and
// the validated scalar values they are built from. It is independent of any
// collection, storage, or delivery mechanism and imports nothing internal.
//
// Entities carry two equality relations. Identity relations (IsSamePerson,
// IsSameApplication) compare the business key; Equal compares every data field.
// Collections decide which relation to apply to which operation.
package domain
