// Package strz carries values through their human-readable text
// representation: anything that can render itself as text (fmt.Stringer)
// and be parsed back from it can be serialized and deserialized as a single
// string scalar, without implementing any marshalling interface itself.
//
// The package exposes the bridge at two levels:
//
//   - serde constructors (New, NewOpt, NewEmp), which plug the capability
//     pair into the generic serde contract of the `serde` package;
//
//   - field wrappers (Str, Opt, Emp), which plug it into struct marshalling
//     for JSON, YAML and MessagePack, so a field like an IP address is carried
//     as "127.0.0.1" rather than as a structured encoding.
//
// The Opt and Emp variants additionally treat absent, null or empty-string
// input as "no value".
package strz
