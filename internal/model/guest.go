package model

// Guest represents a registered hotel guest. Guests are created once
// per unique national ID and are never deleted; their IDs are assigned
// sequentially starting at 1 and never reused.
//
// Fields:
//  ID         – sequential identifier, immutable after creation.
//  Name       – guest name.
//  NationalID – unique natural key used for lookups.
//  Phone      – contact phone number.
//  History    – append-only reservation IDs, one per reservation of
//               this guest that reached a terminal status, in
//               resolution order.
type Guest struct {
	ID         int64   // sequential guest ID
	Name       string  // guest name
	NationalID string  // unique national ID
	Phone      string  // contact phone
	History    []int64 // resolved reservation IDs in resolution order
}
