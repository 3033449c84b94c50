// Package profile defines environment threshold profiles and resolves which
// profile applies to a boot attempt.
//
// A profile is a named set of temperature thresholds applicable to one
// hardware/power-delivery class. Profiles are immutable and statically
// defined; resolution selects, never computes. The enhanced profile exists
// because mainboard v2.1 strengthened power delivery, which legitimately
// widens the safe elevated band, but every profile's critical threshold is
// capped at the absolute safety ceiling regardless of configuration.
//
// An unrecognized capability descriptor resolves to the standard profile:
// defaulting to stricter thresholds is always safe.
package profile
